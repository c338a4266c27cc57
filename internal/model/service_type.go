package model

import "time"

// ServiceType описывает тип богослужения и его возможности
type ServiceType struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"` // hex-цвет для отображения, например "#2e7d32"
	HasTeaching    bool      `json:"has_teaching"`
	HasTestimonies bool      `json:"has_testimonies"`
	HasIntroRead   bool      `json:"has_intro_reading"`
	HasFinalRead   bool      `json:"has_final_reading"`
	HasMusic       bool      `json:"has_music"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
