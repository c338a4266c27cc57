package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// HolidayRepository управляет праздничными датами в базе данных
type HolidayRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewHolidayRepository создаёт новый репозиторий
func NewHolidayRepository(pool *pgxpool.Pool, logger *zap.Logger) *HolidayRepository {
	return &HolidayRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create создаёт новую праздничную дату
func (r *HolidayRepository) Create(ctx context.Context, holiday *model.Holiday) error {
	query := `
		INSERT INTO holidays (date, kind, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		holiday.Date,
		holiday.Kind,
		holiday.Name,
	).Scan(&holiday.ID, &holiday.CreatedAt)

	if err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}

	return nil
}

// GetByKindInRange получает праздники указанного вида в диапазоне дат
// (границы включительно)
func (r *HolidayRepository) GetByKindInRange(ctx context.Context, kind model.HolidayKind, from, to time.Time) ([]*model.Holiday, error) {
	query := `
		SELECT id, date, kind, name, created_at
		FROM holidays
		WHERE kind = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query, kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("get holidays in range: %w", err)
	}
	defer rows.Close()

	var holidays []*model.Holiday
	for rows.Next() {
		holiday := &model.Holiday{}
		err := rows.Scan(
			&holiday.ID,
			&holiday.Date,
			&holiday.Kind,
			&holiday.Name,
			&holiday.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, nil
}

// GetAll получает все праздничные даты
func (r *HolidayRepository) GetAll(ctx context.Context) ([]*model.Holiday, error) {
	query := `
		SELECT id, date, kind, name, created_at
		FROM holidays
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*model.Holiday
	for rows.Next() {
		holiday := &model.Holiday{}
		err := rows.Scan(
			&holiday.ID,
			&holiday.Date,
			&holiday.Kind,
			&holiday.Name,
			&holiday.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, nil
}

// Delete удаляет праздничную дату
func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM holidays WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	return nil
}
