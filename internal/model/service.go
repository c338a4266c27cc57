package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service представляет одно богослужение в конкретную дату
type Service struct {
	ID              int64      `json:"id"`
	GenerationID    *uuid.UUID `json:"generation_id"` // идентификатор запуска генерации, nil для созданных вручную
	Date            time.Time  `json:"date"`
	StartHour       int        `json:"start_hour"`   // 0-23
	StartMinute     int        `json:"start_minute"` // 0-59
	EndHour         *int       `json:"end_hour"`
	EndMinute       *int       `json:"end_minute"`
	ServiceTypeID   int64      `json:"service_type_id"`
	HolidayAdjusted bool       `json:"holiday_adjusted"` // время сдвинуто из-за праздничного буднего дня

	// Назначения на роли (указатели - роль может быть не назначена)
	IntroPersonID       *int64 `json:"intro_person_id"`
	TeachingPersonID    *int64 `json:"teaching_person_id"`
	FinalPersonID       *int64 `json:"final_person_id"`
	TestimoniesPersonID *int64 `json:"testimonies_person_id"`

	// Метаданные богослужения
	Observations *string `json:"observations"`
	EarlyStart   *bool   `json:"early_start"` // ручной признак раннего начала

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Дополнительные поля для удобства (не из БД)
	ServiceType *ServiceType `json:"service_type,omitempty"`
}

// ServiceMetadata редактируемые метаданные богослужения
type ServiceMetadata struct {
	Observations *string `json:"observations,omitempty"`
	EarlyStart   *bool   `json:"early_start,omitempty"`
}

// StartClock возвращает время начала в формате ЧЧ:ММ
func (s *Service) StartClock() string {
	return clockString(s.StartHour, s.StartMinute)
}

func clockString(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
