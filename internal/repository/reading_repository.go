package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ReadingRepository управляет библейскими чтениями в базе данных
type ReadingRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewReadingRepository создаёт новый репозиторий
func NewReadingRepository(pool *pgxpool.Pool, logger *zap.Logger) *ReadingRepository {
	return &ReadingRepository{
		pool:   pool,
		logger: logger,
	}
}

// Upsert сохраняет чтение для пары (service_id, role): вставляет новую
// запись либо заменяет существующую
func (r *ReadingRepository) Upsert(ctx context.Context, reading *model.Reading) error {
	query := `
		INSERT INTO readings (service_id, role, book, chapter_start, verse_start, chapter_end, verse_end, reader_id, is_repeat, original_reading_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (service_id, role) DO UPDATE
		SET book = EXCLUDED.book,
		    chapter_start = EXCLUDED.chapter_start,
		    verse_start = EXCLUDED.verse_start,
		    chapter_end = EXCLUDED.chapter_end,
		    verse_end = EXCLUDED.verse_end,
		    reader_id = EXCLUDED.reader_id,
		    is_repeat = EXCLUDED.is_repeat,
		    original_reading_id = EXCLUDED.original_reading_id,
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx,
		query,
		reading.ServiceID,
		reading.Role,
		reading.Book,
		reading.ChapterStart,
		reading.VerseStart,
		reading.ChapterEnd,
		reading.VerseEnd,
		reading.ReaderID,
		reading.IsRepeat,
		reading.OriginalReadingID,
	).Scan(&reading.ID, &reading.CreatedAt, &reading.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert reading: %w", err)
	}

	return nil
}

// FindByReference ищет по всей истории чтения с точно совпадающим
// отрывком. Дата богослужения подтягивается для ответа о повторе.
func (r *ReadingRepository) FindByReference(ctx context.Context, book string, chapterStart, verseStart, chapterEnd, verseEnd int) ([]*model.Reading, error) {
	query := `
		SELECT r.id, r.service_id, r.role, r.book, r.chapter_start, r.verse_start, r.chapter_end, r.verse_end, r.reader_id, r.is_repeat, r.original_reading_id, r.created_at, r.updated_at, s.date
		FROM readings r
		JOIN services s ON s.id = r.service_id
		WHERE lower(r.book) = lower($1)
		  AND r.chapter_start = $2 AND r.verse_start = $3
		  AND r.chapter_end = $4 AND r.verse_end = $5
		ORDER BY s.date, r.id
	`

	rows, err := r.pool.Query(ctx, query, book, chapterStart, verseStart, chapterEnd, verseEnd)
	if err != nil {
		return nil, fmt.Errorf("find readings by reference: %w", err)
	}
	defer rows.Close()

	var readings []*model.Reading
	for rows.Next() {
		reading := &model.Reading{}
		err := rows.Scan(
			&reading.ID,
			&reading.ServiceID,
			&reading.Role,
			&reading.Book,
			&reading.ChapterStart,
			&reading.VerseStart,
			&reading.ChapterEnd,
			&reading.VerseEnd,
			&reading.ReaderID,
			&reading.IsRepeat,
			&reading.OriginalReadingID,
			&reading.CreatedAt,
			&reading.UpdatedAt,
			&reading.ServiceDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// GetByID получает чтение по ID
func (r *ReadingRepository) GetByID(ctx context.Context, id int64) (*model.Reading, error) {
	query := `
		SELECT id, service_id, role, book, chapter_start, verse_start, chapter_end, verse_end, reader_id, is_repeat, original_reading_id, created_at, updated_at
		FROM readings
		WHERE id = $1
	`

	reading := &model.Reading{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&reading.ID,
		&reading.ServiceID,
		&reading.Role,
		&reading.Book,
		&reading.ChapterStart,
		&reading.VerseStart,
		&reading.ChapterEnd,
		&reading.VerseEnd,
		&reading.ReaderID,
		&reading.IsRepeat,
		&reading.OriginalReadingID,
		&reading.CreatedAt,
		&reading.UpdatedAt,
	)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reading by id: %w", err)
	}

	return reading, nil
}

// GetByService получает чтения богослужения (вступительное, затем
// заключительное)
func (r *ReadingRepository) GetByService(ctx context.Context, serviceID int64) ([]*model.Reading, error) {
	query := `
		SELECT id, service_id, role, book, chapter_start, verse_start, chapter_end, verse_end, reader_id, is_repeat, original_reading_id, created_at, updated_at
		FROM readings
		WHERE service_id = $1
		ORDER BY CASE role WHEN 'intro' THEN 0 ELSE 1 END
	`

	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get readings by service: %w", err)
	}
	defer rows.Close()

	var readings []*model.Reading
	for rows.Next() {
		reading := &model.Reading{}
		err := rows.Scan(
			&reading.ID,
			&reading.ServiceID,
			&reading.Role,
			&reading.Book,
			&reading.ChapterStart,
			&reading.VerseStart,
			&reading.ChapterEnd,
			&reading.VerseEnd,
			&reading.ReaderID,
			&reading.IsRepeat,
			&reading.OriginalReadingID,
			&reading.CreatedAt,
			&reading.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// Delete удаляет чтение, проверяя принадлежность богослужению.
// Возвращает false, если запись не найдена.
func (r *ReadingRepository) Delete(ctx context.Context, id, serviceID int64) (bool, error) {
	query := `DELETE FROM readings WHERE id = $1 AND service_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, serviceID)
	if err != nil {
		return false, fmt.Errorf("delete reading: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
