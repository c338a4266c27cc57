package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
)

// MemoryPlaylistRepository хранит музыкальный план в памяти процесса.
// Используется режимом прикидки плана, не привязанным к богослужению,
// и тестами: контракт тот же, что у PlaylistRepository, но данные живут
// только в рамках сессии.
type MemoryPlaylistRepository struct {
	mu      sync.Mutex
	entries map[int64]*model.PlaylistEntry
	nextID  int64
}

// NewMemoryPlaylistRepository создаёт новое хранилище в памяти
func NewMemoryPlaylistRepository() *MemoryPlaylistRepository {
	return &MemoryPlaylistRepository{
		entries: make(map[int64]*model.PlaylistEntry),
		nextID:  1,
	}
}

// ListByService получает план: сначала гимны по позиции, затем припевы
func (r *MemoryPlaylistRepository) ListByService(ctx context.Context, serviceID int64) ([]*model.PlaylistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []*model.PlaylistEntry
	for _, entry := range r.entries {
		if entry.ServiceID == serviceID {
			copied := *entry
			entries = append(entries, &copied)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category == model.SongCategoryHymn
		}
		return entries[i].Position < entries[j].Position
	})

	return entries, nil
}

// GetByID получает запись по ID
func (r *MemoryPlaylistRepository) GetByID(ctx context.Context, id int64) (*model.PlaylistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}

	copied := *entry
	return &copied, nil
}

// Create добавляет запись
func (r *MemoryPlaylistRepository) Create(ctx context.Context, entry *model.PlaylistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt

	copied := *entry
	r.entries[entry.ID] = &copied

	return nil
}

// Delete удаляет запись. Возвращает false, если запись не найдена.
func (r *MemoryPlaylistRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false, nil
	}

	delete(r.entries, id)
	return true, nil
}

// UpdatePositions записывает новые позиции всех записей атомарно
// (под одной блокировкой)
func (r *MemoryPlaylistRepository) UpdatePositions(ctx context.Context, positions map[int64]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, position := range positions {
		if entry, ok := r.entries[id]; ok {
			entry.Position = position
			entry.UpdatedAt = time.Now()
		}
	}

	return nil
}
