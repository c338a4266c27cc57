package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PersonRepository управляет членами общины в базе данных
type PersonRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPersonRepository создаёт новый репозиторий
func NewPersonRepository(pool *pgxpool.Pool, logger *zap.Logger) *PersonRepository {
	return &PersonRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create создаёт нового человека
func (r *PersonRepository) Create(ctx context.Context, person *model.Person) error {
	query := `
		INSERT INTO people (telegram_id, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		person.TelegramID,
		person.FirstName,
		person.LastName,
		person.IsActive,
	).Scan(&person.ID, &person.CreatedAt)

	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}

	return nil
}

// GetByID получает человека по ID
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	query := `
		SELECT id, telegram_id, first_name, last_name, is_active, created_at
		FROM people
		WHERE id = $1
	`

	person := &model.Person{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&person.ID,
		&person.TelegramID,
		&person.FirstName,
		&person.LastName,
		&person.IsActive,
		&person.CreatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person by id: %w", err)
	}

	return person, nil
}

// GetByTelegramID получает человека по telegram ID
func (r *PersonRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Person, error) {
	query := `
		SELECT id, telegram_id, first_name, last_name, is_active, created_at
		FROM people
		WHERE telegram_id = $1
	`

	person := &model.Person{}
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&person.ID,
		&person.TelegramID,
		&person.FirstName,
		&person.LastName,
		&person.IsActive,
		&person.CreatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person by telegram id: %w", err)
	}

	return person, nil
}

// GetAllActive получает всех активных членов общины
func (r *PersonRepository) GetAllActive(ctx context.Context) ([]*model.Person, error) {
	query := `
		SELECT id, telegram_id, first_name, last_name, is_active, created_at
		FROM people
		WHERE is_active = true
		ORDER BY first_name, last_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all active people: %w", err)
	}
	defer rows.Close()

	var people []*model.Person
	for rows.Next() {
		person := &model.Person{}
		err := rows.Scan(
			&person.ID,
			&person.TelegramID,
			&person.FirstName,
			&person.LastName,
			&person.IsActive,
			&person.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, person)
	}

	return people, nil
}
