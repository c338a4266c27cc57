package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// WeeklyRuleRepository управляет правилами недельного расписания в базе данных
type WeeklyRuleRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewWeeklyRuleRepository создаёт новый репозиторий
func NewWeeklyRuleRepository(pool *pgxpool.Pool, logger *zap.Logger) *WeeklyRuleRepository {
	return &WeeklyRuleRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create создаёт новое правило. На каждый день недели допускается только
// одно активное правило — конфликт отдаётся вызывающему через
// base.IsUniqueViolation.
func (r *WeeklyRuleRepository) Create(ctx context.Context, rule *model.WeeklyRule) error {
	query := `
		INSERT INTO weekly_rules (weekday, service_type_id, start_hour, start_minute, holiday_adjustable, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		rule.Weekday,
		rule.ServiceTypeID,
		rule.StartHour,
		rule.StartMinute,
		rule.HolidayAdjustable,
		rule.IsActive,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create weekly rule: %w", err)
	}

	return nil
}

// GetByID получает правило по ID
func (r *WeeklyRuleRepository) GetByID(ctx context.Context, id int64) (*model.WeeklyRule, error) {
	query := `
		SELECT id, weekday, service_type_id, start_hour, start_minute, holiday_adjustable, is_active, created_at, updated_at
		FROM weekly_rules
		WHERE id = $1
	`

	rule := &model.WeeklyRule{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rule.ID,
		&rule.Weekday,
		&rule.ServiceTypeID,
		&rule.StartHour,
		&rule.StartMinute,
		&rule.HolidayAdjustable,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weekly rule by id: %w", err)
	}

	return rule, nil
}

// GetAllActive получает все активные правила, отсортированные по дню недели
func (r *WeeklyRuleRepository) GetAllActive(ctx context.Context) ([]*model.WeeklyRule, error) {
	query := `
		SELECT id, weekday, service_type_id, start_hour, start_minute, holiday_adjustable, is_active, created_at, updated_at
		FROM weekly_rules
		WHERE is_active = true
		ORDER BY weekday
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all active weekly rules: %w", err)
	}
	defer rows.Close()

	var rules []*model.WeeklyRule
	for rows.Next() {
		rule := &model.WeeklyRule{}
		err := rows.Scan(
			&rule.ID,
			&rule.Weekday,
			&rule.ServiceTypeID,
			&rule.StartHour,
			&rule.StartMinute,
			&rule.HolidayAdjustable,
			&rule.IsActive,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan weekly rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// Update обновляет правило
func (r *WeeklyRuleRepository) Update(ctx context.Context, rule *model.WeeklyRule) error {
	query := `
		UPDATE weekly_rules
		SET weekday = $2, service_type_id = $3, start_hour = $4, start_minute = $5, holiday_adjustable = $6, is_active = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		rule.ID,
		rule.Weekday,
		rule.ServiceTypeID,
		rule.StartHour,
		rule.StartMinute,
		rule.HolidayAdjustable,
		rule.IsActive,
	).Scan(&rule.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update weekly rule: %w", err)
	}

	return nil
}

// Deactivate деактивирует правило
func (r *WeeklyRuleRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE weekly_rules SET is_active = false, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate weekly rule: %w", err)
	}

	return nil
}

// Delete удаляет правило
func (r *WeeklyRuleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM weekly_rules WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete weekly rule: %w", err)
	}

	return nil
}
