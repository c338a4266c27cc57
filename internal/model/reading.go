package model

import (
	"fmt"
	"time"
)

type ReadingRole string

const (
	ReadingRoleIntro ReadingRole = "intro"
	ReadingRoleFinal ReadingRole = "final"
)

// Reading представляет библейское чтение, закреплённое за богослужением.
// На пару (service_id, role) существует не больше одной записи:
// повторное сохранение заменяет предыдущее.
type Reading struct {
	ID                int64       `json:"id"`
	ServiceID         int64       `json:"service_id"`
	Role              ReadingRole `json:"role"`
	Book              string      `json:"book"`
	ChapterStart      int         `json:"chapter_start"`
	VerseStart        int         `json:"verse_start"`
	ChapterEnd        int         `json:"chapter_end"`
	VerseEnd          int         `json:"verse_end"`
	ReaderID          *int64      `json:"reader_id"`
	IsRepeat          bool        `json:"is_repeat"`           // чтение уже звучало раньше
	OriginalReadingID *int64      `json:"original_reading_id"` // ссылка на первое чтение этого отрывка
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	// Дополнительные поля для удобства (не из БД)
	ServiceDate *time.Time `json:"service_date,omitempty"`
}

// Reference возвращает ссылку на отрывок в человекочитаемом виде
func (r *Reading) Reference() string {
	if r.ChapterStart == r.ChapterEnd && r.VerseStart == r.VerseEnd {
		return fmt.Sprintf("%s %d:%d", r.Book, r.ChapterStart, r.VerseStart)
	}
	if r.ChapterStart == r.ChapterEnd {
		return fmt.Sprintf("%s %d:%d-%d", r.Book, r.ChapterStart, r.VerseStart, r.VerseEnd)
	}
	return fmt.Sprintf("%s %d:%d-%d:%d", r.Book, r.ChapterStart, r.VerseStart, r.ChapterEnd, r.VerseEnd)
}
