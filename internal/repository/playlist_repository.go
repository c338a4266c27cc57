package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PlaylistRepository управляет музыкальным планом богослужений в базе данных
type PlaylistRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPlaylistRepository создаёт новый репозиторий
func NewPlaylistRepository(pool *pgxpool.Pool, logger *zap.Logger) *PlaylistRepository {
	return &PlaylistRepository{
		pool:   pool,
		logger: logger,
	}
}

// ListByService получает музыкальный план богослужения: сначала все гимны
// по позиции, затем все припевы по позиции
func (r *PlaylistRepository) ListByService(ctx context.Context, serviceID int64) ([]*model.PlaylistEntry, error) {
	query := `
		SELECT id, service_id, category, item_id, position, created_at, updated_at
		FROM playlist_entries
		WHERE service_id = $1
		ORDER BY CASE category WHEN 'hymn' THEN 0 ELSE 1 END, position
	`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list playlist entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.PlaylistEntry
	for rows.Next() {
		entry := &model.PlaylistEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.ServiceID,
			&entry.Category,
			&entry.ItemID,
			&entry.Position,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan playlist entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetByID получает запись плана по ID
func (r *PlaylistRepository) GetByID(ctx context.Context, id int64) (*model.PlaylistEntry, error) {
	query := `
		SELECT id, service_id, category, item_id, position, created_at, updated_at
		FROM playlist_entries
		WHERE id = $1
	`

	entry := &model.PlaylistEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.ServiceID,
		&entry.Category,
		&entry.ItemID,
		&entry.Position,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get playlist entry by id: %w", err)
	}

	return entry, nil
}

// Create добавляет запись в план
func (r *PlaylistRepository) Create(ctx context.Context, entry *model.PlaylistEntry) error {
	query := `
		INSERT INTO playlist_entries (service_id, category, item_id, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		entry.ServiceID,
		entry.Category,
		entry.ItemID,
		entry.Position,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create playlist entry: %w", err)
	}

	return nil
}

// Delete удаляет запись плана. Возвращает false, если запись не найдена.
func (r *PlaylistRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM playlist_entries WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete playlist entry: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdatePositions записывает новые позиции всех записей одной транзакцией.
// Частично применённый порядок не должен быть виден читателям, поэтому
// обновления уходят одним батчем внутри транзакции.
func (r *PlaylistRepository) UpdatePositions(ctx context.Context, positions map[int64]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE playlist_entries SET position = $2, updated_at = now() WHERE id = $1`

	batch := &pgx.Batch{}
	for id, position := range positions {
		batch.Queue(query, id, position)
	}

	results := tx.SendBatch(ctx, batch)
	for range positions {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("update playlist position: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
