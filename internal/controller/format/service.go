package format

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
)

// FormatServiceLine форматирует одну строку списка богослужений
func FormatServiceLine(svc *model.Service) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) %s",
		FormatDate(svc.Date),
		GetWeekdayShortName(int(svc.Date.Weekday())),
		FormatClock(svc.StartHour, svc.StartMinute))

	if svc.ServiceType != nil {
		fmt.Fprintf(&b, " — %s", svc.ServiceType.Name)
	}

	if svc.HolidayAdjusted {
		b.WriteString(" ⏰") // начало сдвинуто из-за праздничного буднего дня
	}

	return b.String()
}

// FormatAssignmentRoles перечисляет роли человека на богослужении
func FormatAssignmentRoles(svc *model.Service, personID int64) string {
	var roles []string

	if svc.IntroPersonID != nil && *svc.IntroPersonID == personID {
		roles = append(roles, "вступительное чтение")
	}
	if svc.TeachingPersonID != nil && *svc.TeachingPersonID == personID {
		roles = append(roles, "проповедь")
	}
	if svc.FinalPersonID != nil && *svc.FinalPersonID == personID {
		roles = append(roles, "заключительное чтение")
	}
	if svc.TestimoniesPersonID != nil && *svc.TestimoniesPersonID == personID {
		roles = append(roles, "свидетельства")
	}

	return strings.Join(roles, ", ")
}

// FormatPlaylist форматирует музыкальный план: блок гимнов, затем припевов
func FormatPlaylist(entries []*model.PlaylistEntry) string {
	if len(entries) == 0 {
		return "План пуст."
	}

	var b strings.Builder
	currentCategory := model.SongCategory("")

	for _, entry := range entries {
		if entry.Category != currentCategory {
			currentCategory = entry.Category
			if currentCategory == model.SongCategoryHymn {
				b.WriteString("🎼 Гимны:\n")
			} else {
				b.WriteString("🎵 Припевы:\n")
			}
		}
		fmt.Fprintf(&b, "  %d. №%d\n", entry.Position, entry.ItemID)
	}

	return b.String()
}
