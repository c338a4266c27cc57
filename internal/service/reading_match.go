package service

import (
	"strings"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
)

// readingReference нормализованная ссылка на отрывок
type readingReference struct {
	Book         string
	ChapterStart int
	VerseStart   int
	ChapterEnd   int
	VerseEnd     int
}

// normalizeReference приводит ссылку к каноничному виду: пустой конец
// диапазона означает одиночный стих (конец = начало)
func normalizeReference(book string, chapterStart, verseStart, chapterEnd, verseEnd int) (readingReference, error) {
	book = strings.TrimSpace(book)

	if chapterEnd == 0 && verseEnd == 0 {
		chapterEnd = chapterStart
		verseEnd = verseStart
	}

	if book == "" || chapterStart < 1 || verseStart < 1 || chapterEnd < 1 || verseEnd < 1 {
		return readingReference{}, ErrInvalidReference
	}
	if chapterEnd < chapterStart || (chapterEnd == chapterStart && verseEnd < verseStart) {
		return readingReference{}, ErrInvalidReference
	}

	return readingReference{
		Book:         book,
		ChapterStart: chapterStart,
		VerseStart:   verseStart,
		ChapterEnd:   chapterEnd,
		VerseEnd:     verseEnd,
	}, nil
}

// findDuplicate ищет в истории чтение того же отрывка. Запись на том же
// богослужении и в той же роли не считается дубликатом: сохранение
// заменяет её, а не повторяет.
func findDuplicate(history []*model.Reading, serviceID int64, role model.ReadingRole) *model.Reading {
	for _, reading := range history {
		if reading.ServiceID == serviceID && reading.Role == role {
			continue
		}
		return reading
	}
	return nil
}
