package model

import "time"

// Person представляет члена общины, которого можно назначать на роли
type Person struct {
	ID         int64     `json:"id"`
	TelegramID *int64    `json:"telegram_id"` // nil, если человек не пользуется ботом
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName возвращает полное имя
func (p *Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
