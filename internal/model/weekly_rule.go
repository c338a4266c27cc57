package model

import "time"

// WeeklyRule представляет правило недельного расписания:
// день недели -> тип богослужения и время начала по умолчанию
type WeeklyRule struct {
	ID                int64     `json:"id"`
	Weekday           int       `json:"weekday"` // 0 = Sunday, 6 = Saturday
	ServiceTypeID     int64     `json:"service_type_id"`
	StartHour         int       `json:"start_hour"`   // 0-23
	StartMinute       int       `json:"start_minute"` // 0-59
	HolidayAdjustable bool      `json:"holiday_adjustable"` // сдвигать ли время в праздничные будни
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
