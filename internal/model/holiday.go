package model

import "time"

type HolidayKind string

const (
	// HolidayKindWorkday праздничный будний день — единственный вид,
	// который сдвигает время начала богослужения
	HolidayKindWorkday HolidayKind = "workday"
	// HolidayKindObservance памятная дата без влияния на расписание
	HolidayKindObservance HolidayKind = "observance"
)

// Holiday представляет праздничную дату в календаре
type Holiday struct {
	ID        int64       `json:"id"`
	Date      time.Time   `json:"date"` // только дата, время игнорируется
	Kind      HolidayKind `json:"kind"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
}
