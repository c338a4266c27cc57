package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"go.uber.org/zap"
)

// DefaultCategoryLimit лимит номеров в категории по умолчанию
const DefaultCategoryLimit = 3

// PlannerCategoryLimit лимит для режима прикидки плана: черновик не
// привязан к богослужению, поэтому в категорию помещается больше номеров
const PlannerCategoryLimit = 6

// PlaylistStore хранилище музыкального плана. Основная реализация —
// repository.PlaylistRepository поверх Postgres; для режима прикидки
// плана без привязки к богослужению используется
// repository.MemoryPlaylistRepository с тем же контрактом.
type PlaylistStore interface {
	ListByService(ctx context.Context, serviceID int64) ([]*model.PlaylistEntry, error)
	Create(ctx context.Context, entry *model.PlaylistEntry) error
	Delete(ctx context.Context, entryID int64) (bool, error)
	UpdatePositions(ctx context.Context, positions map[int64]int) error
}

// PlaylistService управляет музыкальным планом богослужения: лимиты по
// категориям и строгий порядок (гимны, затем припевы)
type PlaylistService struct {
	store  PlaylistStore
	limit  int
	logger *zap.Logger
}

// NewPlaylistService создаёт новый сервис музыкального плана.
// limit <= 0 означает лимит по умолчанию.
func NewPlaylistService(store PlaylistStore, limit int, logger *zap.Logger) *PlaylistService {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}

	return &PlaylistService{
		store:  store,
		limit:  limit,
		logger: logger,
	}
}

// AddEntry добавляет номер в конец своей категории. Дубликат номера в
// категории и переполнение лимита отклоняются, существующие записи при
// этом не меняются.
func (s *PlaylistService) AddEntry(ctx context.Context, serviceID int64, category model.SongCategory, itemID int64) (*model.PlaylistEntry, error) {
	if category != model.SongCategoryHymn && category != model.SongCategoryChorus {
		return nil, ErrInvalidCategory
	}

	entries, err := s.store.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list playlist: %w", err)
	}

	for _, entry := range entries {
		if entry.Category == category && entry.ItemID == itemID {
			return nil, ErrDuplicateEntry
		}
	}

	if countCategory(entries, category) >= s.limit {
		return nil, ErrCapacityReached
	}

	entry := &model.PlaylistEntry{
		ServiceID: serviceID,
		Category:  category,
		ItemID:    itemID,
		Position:  nextPosition(entries, category),
	}

	err = s.store.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add playlist entry: %w", err)
	}

	s.logger.Info("Playlist entry added",
		zap.Int64("entry_id", entry.ID),
		zap.Int64("service_id", serviceID),
		zap.String("category", string(category)),
		zap.Int64("item_id", itemID),
		zap.Int("position", entry.Position))

	return entry, nil
}

// RemoveEntry удаляет номер из плана
func (s *PlaylistService) RemoveEntry(ctx context.Context, entryID int64) error {
	found, err := s.store.Delete(ctx, entryID)
	if err != nil {
		return fmt.Errorf("remove playlist entry: %w", err)
	}
	if !found {
		return ErrEntryNotFound
	}

	s.logger.Info("Playlist entry removed", zap.Int64("entry_id", entryID))

	return nil
}

// Reorder принимает полный желаемый порядок id и пересчитывает позиции
// каждой записи как её место внутри категории. Все позиции записываются
// атомарно: частично применённый порядок не виден читателям.
func (s *PlaylistService) Reorder(ctx context.Context, serviceID int64, orderedEntryIDs []int64) error {
	entries, err := s.store.ListByService(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("list playlist: %w", err)
	}

	positions, err := renumberEntries(entries, orderedEntryIDs)
	if err != nil {
		return err
	}

	err = s.store.UpdatePositions(ctx, positions)
	if err != nil {
		return fmt.Errorf("reorder playlist: %w", err)
	}

	s.logger.Info("Playlist reordered",
		zap.Int64("service_id", serviceID),
		zap.Int("entries", len(orderedEntryIDs)))

	return nil
}

// ListForService получает план богослужения: сначала все гимны по
// позиции, затем все припевы по позиции
func (s *PlaylistService) ListForService(ctx context.Context, serviceID int64) ([]*model.PlaylistEntry, error) {
	entries, err := s.store.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list playlist: %w", err)
	}

	return entries, nil
}
