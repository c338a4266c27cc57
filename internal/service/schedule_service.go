package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ScheduleService отвечает за генерацию календаря богослужений
type ScheduleService struct {
	pool        *pgxpool.Pool
	serviceRepo *repository.ServiceRepository
	ruleRepo    *repository.WeeklyRuleRepository
	holidayRepo *repository.HolidayRepository
	typeRepo    *repository.ServiceTypeRepository
	location    *time.Location
	logger      *zap.Logger
}

// NewScheduleService создаёт новый сервис генерации расписания
func NewScheduleService(
	pool *pgxpool.Pool,
	serviceRepo *repository.ServiceRepository,
	ruleRepo *repository.WeeklyRuleRepository,
	holidayRepo *repository.HolidayRepository,
	typeRepo *repository.ServiceTypeRepository,
	location *time.Location,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		pool:        pool,
		serviceRepo: serviceRepo,
		ruleRepo:    ruleRepo,
		holidayRepo: holidayRepo,
		typeRepo:    typeRepo,
		location:    location,
		logger:      logger,
	}
}

// GenerationResult результат генерации одного месяца
type GenerationResult struct {
	Created      int       `json:"created"`
	GenerationID uuid.UUID `json:"generation_id"`
}

// YearResult результат генерации года: количество созданных богослужений
// и ошибки по месяцам, не прервавшие весь запуск
type YearResult struct {
	Created     int                  `json:"created"`
	MonthErrors map[time.Month]error `json:"-"`
}

// GenerateMonth разворачивает недельные правила в богослужения месяца.
// Проверка на уже существующие богослужения и вставка идут в одной
// транзакции: два одновременных запуска не смогут оба пройти проверку
// и задвоить месяц.
func (s *ScheduleService) GenerateMonth(ctx context.Context, year int, month time.Month) (*GenerationResult, error) {
	from, to := monthBounds(year, month, s.location)

	rules, err := s.ruleRepo.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get weekly rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, ErrNoWeeklyRules
	}

	ruleByWeekday := make(map[int]*model.WeeklyRule, len(rules))
	for _, rule := range rules {
		ruleByWeekday[rule.Weekday] = rule
	}

	holidays, err := s.holidayRepo.GetByKindInRange(ctx, model.HolidayKindWorkday, from, to.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("get holidays: %w", err)
	}

	workdayHolidays := make(map[string]bool, len(holidays))
	for _, holiday := range holidays {
		workdayHolidays[dateKey(holiday.Date)] = true
	}

	generationID := uuid.New()
	services := planMonth(from, to, ruleByWeekday, workdayHolidays, generationID)

	// Начинаем транзакцию
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	existing, err := s.serviceRepo.CountByDateRange(ctx, tx, from, to)
	if err != nil {
		return nil, fmt.Errorf("count existing services: %w", err)
	}
	if err := ensureMonthFree(existing); err != nil {
		return nil, err
	}

	if len(services) > 0 {
		err = s.serviceRepo.CreateBatch(ctx, tx, services)
		if err != nil {
			return nil, fmt.Errorf("insert services: %w", err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Month generated",
		zap.Int("year", year),
		zap.Stringer("month", month),
		zap.Int("created", len(services)),
		zap.String("generation_id", generationID.String()))

	return &GenerationResult{
		Created:      len(services),
		GenerationID: generationID,
	}, nil
}

// GenerateYear генерирует все двенадцать месяцев года. Ошибка одного
// месяца (в том числе "месяц уже сгенерирован") не прерывает остальные —
// она собирается в результат.
func (s *ScheduleService) GenerateYear(ctx context.Context, year int) (*YearResult, error) {
	result := &YearResult{
		MonthErrors: make(map[time.Month]error),
	}

	for month := time.January; month <= time.December; month++ {
		monthResult, err := s.GenerateMonth(ctx, year, month)
		if err != nil {
			result.MonthErrors[month] = err
			continue
		}
		result.Created += monthResult.Created
	}

	s.logger.Info("Year generated",
		zap.Int("year", year),
		zap.Int("created", result.Created),
		zap.Int("failed_months", len(result.MonthErrors)))

	return result, nil
}

// CreateManualService создаёт одно богослужение вручную, вне генерации
func (s *ScheduleService) CreateManualService(ctx context.Context, date time.Time, startHour, startMinute int, serviceTypeID int64) (*model.Service, error) {
	if startHour < 0 || startHour > 23 || startMinute < 0 || startMinute > 59 {
		return nil, ErrInvalidStartTime
	}

	serviceType, err := s.typeRepo.GetByID(ctx, serviceTypeID)
	if err != nil {
		return nil, fmt.Errorf("get service type: %w", err)
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	svc := &model.Service{
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location),
		StartHour:     startHour,
		StartMinute:   startMinute,
		ServiceTypeID: serviceTypeID,
	}

	err = s.serviceRepo.Create(ctx, svc)
	if base.IsUniqueViolation(err) {
		return nil, ErrServiceAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.logger.Info("Manual service created",
		zap.Int64("service_id", svc.ID),
		zap.Time("date", svc.Date),
		zap.Int64("service_type_id", serviceTypeID))

	return svc, nil
}

// ListServicesForMonth получает богослужения месяца с подтянутыми типами
func (s *ScheduleService) ListServicesForMonth(ctx context.Context, year int, month time.Month) ([]*model.Service, error) {
	from, to := monthBounds(year, month, s.location)

	services, err := s.serviceRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get services for month: %w", err)
	}

	types, err := s.typeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get service types: %w", err)
	}

	typeByID := make(map[int64]*model.ServiceType, len(types))
	for _, serviceType := range types {
		typeByID[serviceType.ID] = serviceType
	}

	for _, svc := range services {
		svc.ServiceType = typeByID[svc.ServiceTypeID]
	}

	return services, nil
}

// UpdateServiceMetadata обновляет наблюдения и признак раннего начала
func (s *ScheduleService) UpdateServiceMetadata(ctx context.Context, serviceID int64, meta model.ServiceMetadata) error {
	found, err := s.serviceRepo.UpdateMetadata(ctx, serviceID, meta)
	if err != nil {
		return fmt.Errorf("update metadata: %w", err)
	}
	if !found {
		return ErrServiceNotFound
	}

	s.logger.Info("Service metadata updated", zap.Int64("service_id", serviceID))

	return nil
}
