package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"go.uber.org/zap"
)

// AssignmentService управляет назначениями на роли богослужений
type AssignmentService struct {
	serviceRepo *repository.ServiceRepository
	logger      *zap.Logger
}

// NewAssignmentService создаёт новый сервис назначений
func NewAssignmentService(serviceRepo *repository.ServiceRepository, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// SetRole назначает человека на роль богослужения. personID = nil снимает
// назначение. Сервис сознательно не сверяет роль с возможностями типа
// богослужения: скрывать неподдерживаемые роли — задача вызывающего.
func (s *AssignmentService) SetRole(ctx context.Context, serviceID int64, role model.AssignmentRole, personID *int64) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	found, err := s.serviceRepo.UpdateRole(ctx, serviceID, role, personID)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if !found {
		return ErrServiceNotFound
	}

	s.logger.Info("Role assignment updated",
		zap.Int64("service_id", serviceID),
		zap.String("role", string(role)),
		zap.Int64p("person_id", personID))

	return nil
}

// ListAssignmentsForPerson возвращает богослужения в диапазоне дат
// (границы включительно), где человек занимает любую из ролей,
// по возрастанию даты
func (s *AssignmentService) ListAssignmentsForPerson(ctx context.Context, personID int64, from, to time.Time) ([]*model.Service, error) {
	services, err := s.serviceRepo.GetByPersonInRange(ctx, personID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	return services, nil
}
