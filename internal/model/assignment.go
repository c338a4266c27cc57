package model

// AssignmentRole роль, на которую назначается человек в рамках богослужения
type AssignmentRole string

const (
	AssignmentRoleIntro        AssignmentRole = "intro"
	AssignmentRoleTeaching     AssignmentRole = "teaching"
	AssignmentRoleFinalization AssignmentRole = "finalization"
	AssignmentRoleTestimonies  AssignmentRole = "testimonies"
)

// Valid проверяет что роль известна
func (r AssignmentRole) Valid() bool {
	switch r {
	case AssignmentRoleIntro, AssignmentRoleTeaching, AssignmentRoleFinalization, AssignmentRoleTestimonies:
		return true
	}
	return false
}
