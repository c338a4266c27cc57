package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPlaylistService(limit int) *PlaylistService {
	return NewPlaylistService(repository.NewMemoryPlaylistRepository(), limit, zap.NewNop())
}

func TestAddEntryAppendsWithinCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	first, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)
	require.Equal(t, 1, first.Position)

	second, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 102)
	require.NoError(t, err)
	require.Equal(t, 2, second.Position)

	// Припевы нумеруются независимо от гимнов
	chorus, err := svc.AddEntry(ctx, 1, model.SongCategoryChorus, 55)
	require.NoError(t, err)
	require.Equal(t, 1, chorus.Position)
}

func TestAddEntryRejectsInvalidCategory(t *testing.T) {
	svc := newTestPlaylistService(3)

	_, err := svc.AddEntry(context.Background(), 1, model.SongCategory("march"), 101)
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAddEntryRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	_, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)

	_, err = svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.ErrorIs(t, err, ErrDuplicateEntry)

	// Тот же номер в другой категории — не дубликат
	_, err = svc.AddEntry(ctx, 1, model.SongCategoryChorus, 101)
	require.NoError(t, err)
}

func TestAddEntryCapacityReached(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	for _, itemID := range []int64{101, 102, 103} {
		_, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, itemID)
		require.NoError(t, err)
	}

	_, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 104)
	require.ErrorIs(t, err, ErrCapacityReached)

	// Существующие записи не затронуты
	entries, err := svc.ListForService(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		require.Equal(t, i+1, entry.Position)
	}

	// Лимит действует на категорию, а не на весь план
	_, err = svc.AddEntry(ctx, 1, model.SongCategoryChorus, 55)
	require.NoError(t, err)
}

func TestListForServiceHymnsBeforeChoruses(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	// Добавляем вперемешку
	_, err := svc.AddEntry(ctx, 1, model.SongCategoryChorus, 55)
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, 1, model.SongCategoryChorus, 56)
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, 1, model.SongCategoryHymn, 102)
	require.NoError(t, err)

	entries, err := svc.ListForService(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	require.Equal(t, model.SongCategoryHymn, entries[0].Category)
	require.Equal(t, model.SongCategoryHymn, entries[1].Category)
	require.Equal(t, model.SongCategoryChorus, entries[2].Category)
	require.Equal(t, model.SongCategoryChorus, entries[3].Category)

	require.Equal(t, int64(101), entries[0].ItemID)
	require.Equal(t, int64(102), entries[1].ItemID)
	require.Equal(t, int64(55), entries[2].ItemID)
	require.Equal(t, int64(56), entries[3].ItemID)
}

func TestRemoveEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	entry, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveEntry(ctx, entry.ID))

	entries, err := svc.ListForService(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, entries)

	require.ErrorIs(t, svc.RemoveEntry(ctx, entry.ID), ErrEntryNotFound)
}

func TestReorderRenumbersPerCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	hymn1, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)
	hymn2, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 102)
	require.NoError(t, err)
	chorus1, err := svc.AddEntry(ctx, 1, model.SongCategoryChorus, 55)
	require.NoError(t, err)
	chorus2, err := svc.AddEntry(ctx, 1, model.SongCategoryChorus, 56)
	require.NoError(t, err)

	// Меняем гимны местами; припевы тоже, категории в любом порядке
	err = svc.Reorder(ctx, 1, []int64{chorus2.ID, hymn2.ID, hymn1.ID, chorus1.ID})
	require.NoError(t, err)

	entries, err := svc.ListForService(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Гимны: 102 первым, 101 вторым; припевы: 56 первым, 55 вторым
	require.Equal(t, int64(102), entries[0].ItemID)
	require.Equal(t, 1, entries[0].Position)
	require.Equal(t, int64(101), entries[1].ItemID)
	require.Equal(t, 2, entries[1].Position)
	require.Equal(t, int64(56), entries[2].ItemID)
	require.Equal(t, 1, entries[2].Position)
	require.Equal(t, int64(55), entries[3].ItemID)
	require.Equal(t, 2, entries[3].Position)
}

func TestReorderMismatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(3)

	hymn1, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 101)
	require.NoError(t, err)
	hymn2, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 102)
	require.NoError(t, err)

	// Неполный список
	require.ErrorIs(t, svc.Reorder(ctx, 1, []int64{hymn1.ID}), ErrOrderingMismatch)

	// Чужой id
	require.ErrorIs(t, svc.Reorder(ctx, 1, []int64{hymn1.ID, 999}), ErrOrderingMismatch)

	// Повтор id
	require.ErrorIs(t, svc.Reorder(ctx, 1, []int64{hymn1.ID, hymn1.ID}), ErrOrderingMismatch)

	// Позиции не изменились
	entries, err := svc.ListForService(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, entries[0].Position)
	require.Equal(t, hymn1.ID, entries[0].ID)
	require.Equal(t, 2, entries[1].Position)
	require.Equal(t, hymn2.ID, entries[1].ID)
}

func TestPlannerModeDraft(t *testing.T) {
	// Режим прикидки: хранилище в памяти, расширенный лимит,
	// ключ сессии вместо id богослужения
	ctx := context.Background()
	svc := newTestPlaylistService(PlannerCategoryLimit)

	var sessionID int64 = 777
	for itemID := int64(101); itemID <= 100+int64(PlannerCategoryLimit); itemID++ {
		_, err := svc.AddEntry(ctx, sessionID, model.SongCategoryHymn, itemID)
		require.NoError(t, err)
	}

	// Четвёртый гимн помещается — лимит черновика шире обычного
	require.Greater(t, PlannerCategoryLimit, DefaultCategoryLimit)

	_, err := svc.AddEntry(ctx, sessionID, model.SongCategoryHymn, 200)
	require.ErrorIs(t, err, ErrCapacityReached)

	// Черновики разных сессий не пересекаются
	other, err := svc.AddEntry(ctx, 778, model.SongCategoryHymn, 101)
	require.NoError(t, err)
	require.Equal(t, 1, other.Position)

	entries, err := svc.ListForService(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, entries, PlannerCategoryLimit)
}

func TestDefaultCategoryLimit(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(0)

	for _, itemID := range []int64{101, 102, 103} {
		_, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, itemID)
		require.NoError(t, err)
	}

	_, err := svc.AddEntry(ctx, 1, model.SongCategoryHymn, 104)
	require.ErrorIs(t, err, ErrCapacityReached)
}
