package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ServiceTypeRepository управляет типами богослужений в базе данных
type ServiceTypeRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewServiceTypeRepository создаёт новый репозиторий
func NewServiceTypeRepository(pool *pgxpool.Pool, logger *zap.Logger) *ServiceTypeRepository {
	return &ServiceTypeRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create создаёт новый тип богослужения
func (r *ServiceTypeRepository) Create(ctx context.Context, st *model.ServiceType) error {
	query := `
		INSERT INTO service_types (name, color, has_teaching, has_testimonies, has_intro_reading, has_final_reading, has_music)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		st.Name,
		st.Color,
		st.HasTeaching,
		st.HasTestimonies,
		st.HasIntroRead,
		st.HasFinalRead,
		st.HasMusic,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create service type: %w", err)
	}

	return nil
}

// GetByID получает тип богослужения по ID
func (r *ServiceTypeRepository) GetByID(ctx context.Context, id int64) (*model.ServiceType, error) {
	query := `
		SELECT id, name, color, has_teaching, has_testimonies, has_intro_reading, has_final_reading, has_music, created_at, updated_at
		FROM service_types
		WHERE id = $1
	`

	st := &model.ServiceType{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.Color,
		&st.HasTeaching,
		&st.HasTestimonies,
		&st.HasIntroRead,
		&st.HasFinalRead,
		&st.HasMusic,
		&st.CreatedAt,
		&st.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service type by id: %w", err)
	}

	return st, nil
}

// GetAll получает все типы богослужений
func (r *ServiceTypeRepository) GetAll(ctx context.Context) ([]*model.ServiceType, error) {
	query := `
		SELECT id, name, color, has_teaching, has_testimonies, has_intro_reading, has_final_reading, has_music, created_at, updated_at
		FROM service_types
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all service types: %w", err)
	}
	defer rows.Close()

	var types []*model.ServiceType
	for rows.Next() {
		st := &model.ServiceType{}
		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Color,
			&st.HasTeaching,
			&st.HasTestimonies,
			&st.HasIntroRead,
			&st.HasFinalRead,
			&st.HasMusic,
			&st.CreatedAt,
			&st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service type: %w", err)
		}
		types = append(types, st)
	}

	return types, nil
}

// Update обновляет тип богослужения
func (r *ServiceTypeRepository) Update(ctx context.Context, st *model.ServiceType) error {
	query := `
		UPDATE service_types
		SET name = $2, color = $3, has_teaching = $4, has_testimonies = $5, has_intro_reading = $6, has_final_reading = $7, has_music = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		st.ID,
		st.Name,
		st.Color,
		st.HasTeaching,
		st.HasTestimonies,
		st.HasIntroRead,
		st.HasFinalRead,
		st.HasMusic,
	).Scan(&st.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update service type: %w", err)
	}

	return nil
}

// Delete удаляет тип богослужения
func (r *ServiceTypeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM service_types WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete service type: %w", err)
	}

	return nil
}
