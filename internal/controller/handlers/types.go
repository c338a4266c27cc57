package handlers

import (
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"github.com/Freeeeeet/congregation_scheduler/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	scheduleService   *service.ScheduleService
	assignmentService *service.AssignmentService
	readingService    *service.ReadingService
	playlistService   *service.PlaylistService
	plannerService    *service.PlaylistService
	personRepo        *repository.PersonRepository
	location          *time.Location
	logger            *zap.Logger
}

// NewHandlers создаёт обработчики команд
func NewHandlers(
	scheduleService *service.ScheduleService,
	assignmentService *service.AssignmentService,
	readingService *service.ReadingService,
	playlistService *service.PlaylistService,
	plannerService *service.PlaylistService,
	personRepo *repository.PersonRepository,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		scheduleService:   scheduleService,
		assignmentService: assignmentService,
		readingService:    readingService,
		playlistService:   playlistService,
		plannerService:    plannerService,
		personRepo:        personRepo,
		location:          location,
		logger:            logger,
	}
}
