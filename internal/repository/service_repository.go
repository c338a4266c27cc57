package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const serviceColumns = `id, generation_id, date, start_hour, start_minute, end_hour, end_minute, service_type_id, holiday_adjusted, intro_person_id, teaching_person_id, final_person_id, testimonies_person_id, observations, early_start, created_at, updated_at`

// ServiceRepository управляет богослужениями в базе данных
type ServiceRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewServiceRepository создаёт новый репозиторий
func NewServiceRepository(pool *pgxpool.Pool, logger *zap.Logger) *ServiceRepository {
	return &ServiceRepository{
		pool:   pool,
		logger: logger,
	}
}

func scanService(row pgx.Row) (*model.Service, error) {
	svc := &model.Service{}
	err := row.Scan(
		&svc.ID,
		&svc.GenerationID,
		&svc.Date,
		&svc.StartHour,
		&svc.StartMinute,
		&svc.EndHour,
		&svc.EndMinute,
		&svc.ServiceTypeID,
		&svc.HolidayAdjusted,
		&svc.IntroPersonID,
		&svc.TeachingPersonID,
		&svc.FinalPersonID,
		&svc.TestimoniesPersonID,
		&svc.Observations,
		&svc.EarlyStart,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Create создаёт одно богослужение (ручное создание)
func (r *ServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	query := `
		INSERT INTO services (generation_id, date, start_hour, start_minute, end_hour, end_minute, service_type_id, holiday_adjusted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		svc.GenerationID,
		svc.Date,
		svc.StartHour,
		svc.StartMinute,
		svc.EndHour,
		svc.EndMinute,
		svc.ServiceTypeID,
		svc.HolidayAdjusted,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	return nil
}

// CreateBatch вставляет все богослужения одним батчем внутри переданной
// транзакции. Частичной записи месяца не бывает: ошибка любой вставки
// откатывает транзакцию целиком на стороне вызывающего.
func (r *ServiceRepository) CreateBatch(ctx context.Context, q base.Querier, services []*model.Service) error {
	query := `
		INSERT INTO services (generation_id, date, start_hour, start_minute, end_hour, end_minute, service_type_id, holiday_adjusted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	batch := &pgx.Batch{}
	for _, svc := range services {
		batch.Queue(
			query,
			svc.GenerationID,
			svc.Date,
			svc.StartHour,
			svc.StartMinute,
			svc.EndHour,
			svc.EndMinute,
			svc.ServiceTypeID,
			svc.HolidayAdjusted,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, svc := range services {
		err := results.QueryRow().Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert service batch row: %w", err)
		}
	}

	return nil
}

// CountByDateRange считает богослужения с датой в [from, to)
func (r *ServiceRepository) CountByDateRange(ctx context.Context, q base.Querier, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM services WHERE date >= $1 AND date < $2`

	var count int64
	err := q.QueryRow(ctx, query, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count services by date range: %w", err)
	}

	return count, nil
}

// GetByID получает богослужение по ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	svc, err := scanService(r.pool.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service by id: %w", err)
	}

	return svc, nil
}

// GetByDateRange получает богослужения с датой в [from, to),
// отсортированные по дате и времени начала
func (r *ServiceRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*model.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE date >= $1 AND date < $2
		ORDER BY date, start_hour, start_minute
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get services by date range: %w", err)
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, svc)
	}

	return services, nil
}

// GetByPersonInRange получает богослужения в [from, to] (границы
// включительно), где человек занимает любую из четырёх ролей
func (r *ServiceRepository) GetByPersonInRange(ctx context.Context, personID int64, from, to time.Time) ([]*model.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE date >= $2 AND date <= $3
		  AND (intro_person_id = $1 OR teaching_person_id = $1 OR final_person_id = $1 OR testimonies_person_id = $1)
		ORDER BY date, start_hour, start_minute
	`

	rows, err := r.pool.Query(ctx, query, personID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get services by person: %w", err)
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, svc)
	}

	return services, nil
}

// UpdateRole записывает назначение на роль. personID = nil снимает
// назначение. Возвращает false, если богослужение не найдено.
func (r *ServiceRepository) UpdateRole(ctx context.Context, serviceID int64, role model.AssignmentRole, personID *int64) (bool, error) {
	var column string
	switch role {
	case model.AssignmentRoleIntro:
		column = "intro_person_id"
	case model.AssignmentRoleTeaching:
		column = "teaching_person_id"
	case model.AssignmentRoleFinalization:
		column = "final_person_id"
	case model.AssignmentRoleTestimonies:
		column = "testimonies_person_id"
	default:
		return false, fmt.Errorf("unknown assignment role: %q", role)
	}

	query := fmt.Sprintf(`UPDATE services SET %s = $2, updated_at = now() WHERE id = $1`, column)

	tag, err := r.pool.Exec(ctx, query, serviceID, personID)
	if err != nil {
		return false, fmt.Errorf("update service role: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateMetadata обновляет метаданные богослужения (наблюдения и признак
// раннего начала). Возвращает false, если богослужение не найдено.
func (r *ServiceRepository) UpdateMetadata(ctx context.Context, serviceID int64, meta model.ServiceMetadata) (bool, error) {
	query := `
		UPDATE services
		SET observations = $2, early_start = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, serviceID, meta.Observations, meta.EarlyStart)
	if err != nil {
		return false, fmt.Errorf("update service metadata: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
