package service

import (
	"testing"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReferenceSingleVerse(t *testing.T) {
	// Пустой конец диапазона означает одиночный стих
	ref, err := normalizeReference("Псалтирь", 22, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "Псалтирь", ref.Book)
	require.Equal(t, 22, ref.ChapterEnd)
	require.Equal(t, 1, ref.VerseEnd)
}

func TestNormalizeReferenceRange(t *testing.T) {
	ref, err := normalizeReference("  Иоанна ", 3, 16, 3, 18)
	require.NoError(t, err)
	require.Equal(t, "Иоанна", ref.Book)
	require.Equal(t, 3, ref.ChapterStart)
	require.Equal(t, 16, ref.VerseStart)
	require.Equal(t, 3, ref.ChapterEnd)
	require.Equal(t, 18, ref.VerseEnd)
}

func TestNormalizeReferenceInvalid(t *testing.T) {
	cases := []struct {
		name                                           string
		book                                           string
		chapterStart, verseStart, chapterEnd, verseEnd int
	}{
		{"empty book", "", 1, 1, 1, 1},
		{"blank book", "   ", 1, 1, 1, 1},
		{"zero chapter", "Иоанна", 0, 1, 0, 0},
		{"zero verse", "Иоанна", 3, 0, 0, 0},
		{"end chapter before start", "Иоанна", 3, 16, 2, 1},
		{"end verse before start in same chapter", "Иоанна", 3, 16, 3, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalizeReference(tc.book, tc.chapterStart, tc.verseStart, tc.chapterEnd, tc.verseEnd)
			require.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestFindDuplicate(t *testing.T) {
	history := []*model.Reading{
		{ID: 5, ServiceID: 100, Role: model.ReadingRoleIntro},
		{ID: 9, ServiceID: 200, Role: model.ReadingRoleFinal},
	}

	dup := findDuplicate(history, 300, model.ReadingRoleIntro)
	require.NotNil(t, dup)
	require.Equal(t, int64(5), dup.ID)
}

func TestFindDuplicateSkipsOwnSlot(t *testing.T) {
	// Повторное сохранение того же слота заменяет запись,
	// а не считается дубликатом
	history := []*model.Reading{
		{ID: 5, ServiceID: 100, Role: model.ReadingRoleIntro},
	}

	dup := findDuplicate(history, 100, model.ReadingRoleIntro)
	require.Nil(t, dup)

	// Та же служба, другая роль — уже дубликат
	dup = findDuplicate(history, 100, model.ReadingRoleFinal)
	require.NotNil(t, dup)
}

func TestFindDuplicateEmptyHistory(t *testing.T) {
	require.Nil(t, findDuplicate(nil, 100, model.ReadingRoleIntro))
}

func TestReadingReference(t *testing.T) {
	single := &model.Reading{Book: "Иоанна", ChapterStart: 3, VerseStart: 16, ChapterEnd: 3, VerseEnd: 16}
	require.Equal(t, "Иоанна 3:16", single.Reference())

	sameChapter := &model.Reading{Book: "Иоанна", ChapterStart: 3, VerseStart: 16, ChapterEnd: 3, VerseEnd: 18}
	require.Equal(t, "Иоанна 3:16-18", sameChapter.Reference())

	crossChapter := &model.Reading{Book: "Псалтирь", ChapterStart: 22, VerseStart: 1, ChapterEnd: 23, VerseEnd: 6}
	require.Equal(t, "Псалтирь 22:1-23:6", crossChapter.Reference())
}
