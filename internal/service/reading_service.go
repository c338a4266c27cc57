package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"go.uber.org/zap"
)

// ReadingService управляет библейскими чтениями и следит за повторами
// отрывков по всей истории богослужений
type ReadingService struct {
	readingRepo *repository.ReadingRepository
	serviceRepo *repository.ServiceRepository
	logger      *zap.Logger
}

// NewReadingService создаёт новый сервис чтений
func NewReadingService(
	readingRepo *repository.ReadingRepository,
	serviceRepo *repository.ServiceRepository,
	logger *zap.Logger,
) *ReadingService {
	return &ReadingService{
		readingRepo: readingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// SaveReadingInput данные для сохранения чтения
type SaveReadingInput struct {
	ServiceID    int64
	Role         model.ReadingRole
	Book         string
	ChapterStart int
	VerseStart   int
	ChapterEnd   int
	VerseEnd     int
	ReaderID     *int64
}

// SaveReadingResult результат сохранения. RequiresConfirmation — не
// ошибка, а ветка протокола: отрывок уже звучал, и для записи повтора
// нужен явный второй вызов ConfirmRepeat.
type SaveReadingResult struct {
	Reading              *model.Reading `json:"reading,omitempty"`
	RequiresConfirmation bool           `json:"requires_confirmation"`
	Original             *model.Reading `json:"original,omitempty"`
}

// SaveReading сохраняет чтение для пары (богослужение, роль). Если тот же
// отрывок уже записан на любом другом богослужении, сохранение не
// выполняется: вызывающему возвращается найденный оригинал с датой.
func (s *ReadingService) SaveReading(ctx context.Context, input SaveReadingInput) (*SaveReadingResult, error) {
	if input.Role != model.ReadingRoleIntro && input.Role != model.ReadingRoleFinal {
		return nil, ErrInvalidRole
	}

	ref, err := normalizeReference(input.Book, input.ChapterStart, input.VerseStart, input.ChapterEnd, input.VerseEnd)
	if err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	history, err := s.readingRepo.FindByReference(ctx, ref.Book, ref.ChapterStart, ref.VerseStart, ref.ChapterEnd, ref.VerseEnd)
	if err != nil {
		return nil, fmt.Errorf("search reading history: %w", err)
	}

	if original := findDuplicate(history, input.ServiceID, input.Role); original != nil {
		s.logger.Info("Reading repeat detected",
			zap.Int64("service_id", input.ServiceID),
			zap.String("role", string(input.Role)),
			zap.String("reference", original.Reference()),
			zap.Int64("original_reading_id", original.ID))

		return &SaveReadingResult{
			RequiresConfirmation: true,
			Original:             original,
		}, nil
	}

	reading := s.buildReading(input, ref, false, nil)
	err = s.readingRepo.Upsert(ctx, reading)
	if err != nil {
		return nil, fmt.Errorf("save reading: %w", err)
	}

	s.logger.Info("Reading saved",
		zap.Int64("reading_id", reading.ID),
		zap.Int64("service_id", input.ServiceID),
		zap.String("role", string(input.Role)),
		zap.String("reference", reading.Reference()))

	return &SaveReadingResult{Reading: reading}, nil
}

// ConfirmRepeat сохраняет чтение как осознанный повтор: запись помечается
// is_repeat и ссылается на оригинал
func (s *ReadingService) ConfirmRepeat(ctx context.Context, input SaveReadingInput, originalReadingID int64) (*model.Reading, error) {
	if input.Role != model.ReadingRoleIntro && input.Role != model.ReadingRoleFinal {
		return nil, ErrInvalidRole
	}

	ref, err := normalizeReference(input.Book, input.ChapterStart, input.VerseStart, input.ChapterEnd, input.VerseEnd)
	if err != nil {
		return nil, err
	}

	original, err := s.readingRepo.GetByID(ctx, originalReadingID)
	if err != nil {
		return nil, fmt.Errorf("get original reading: %w", err)
	}
	if original == nil {
		return nil, ErrReadingNotFound
	}

	reading := s.buildReading(input, ref, true, &originalReadingID)
	err = s.readingRepo.Upsert(ctx, reading)
	if err != nil {
		return nil, fmt.Errorf("save repeat reading: %w", err)
	}

	s.logger.Info("Repeat reading confirmed",
		zap.Int64("reading_id", reading.ID),
		zap.Int64("service_id", input.ServiceID),
		zap.Int64("original_reading_id", originalReadingID))

	return reading, nil
}

// DeleteReading удаляет чтение богослужения
func (s *ReadingService) DeleteReading(ctx context.Context, readingID, serviceID int64) error {
	found, err := s.readingRepo.Delete(ctx, readingID, serviceID)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	if !found {
		return ErrReadingNotFound
	}

	s.logger.Info("Reading deleted",
		zap.Int64("reading_id", readingID),
		zap.Int64("service_id", serviceID))

	return nil
}

// ListReadingsForService получает чтения богослужения
func (s *ReadingService) ListReadingsForService(ctx context.Context, serviceID int64) ([]*model.Reading, error) {
	readings, err := s.readingRepo.GetByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	return readings, nil
}

func (s *ReadingService) buildReading(input SaveReadingInput, ref readingReference, isRepeat bool, originalID *int64) *model.Reading {
	return &model.Reading{
		ServiceID:         input.ServiceID,
		Role:              input.Role,
		Book:              ref.Book,
		ChapterStart:      ref.ChapterStart,
		VerseStart:        ref.VerseStart,
		ChapterEnd:        ref.ChapterEnd,
		VerseEnd:          ref.VerseEnd,
		ReaderID:          input.ReaderID,
		IsRepeat:          isRepeat,
		OriginalReadingID: originalID,
	}
}
