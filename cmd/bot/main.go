package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/app"
	"github.com/Freeeeeet/congregation_scheduler/internal/config"
	"github.com/Freeeeeet/congregation_scheduler/internal/controller"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"github.com/Freeeeeet/congregation_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// Ждём доступности базы с backoff
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if pingErr := pool.Ping(ctx); pingErr != nil {
			logger.Warn("Database not ready, retrying", zap.Error(pingErr))
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		logger.Fatal("Database is not reachable", zap.Error(err))
	}

	// Применяем миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории
	serviceRepo := repository.NewServiceRepository(pool, logger)
	ruleRepo := repository.NewWeeklyRuleRepository(pool, logger)
	holidayRepo := repository.NewHolidayRepository(pool, logger)
	typeRepo := repository.NewServiceTypeRepository(pool, logger)
	readingRepo := repository.NewReadingRepository(pool, logger)
	playlistRepo := repository.NewPlaylistRepository(pool, logger)
	personRepo := repository.NewPersonRepository(pool, logger)

	// Сервисы
	scheduleService := service.NewScheduleService(pool, serviceRepo, ruleRepo, holidayRepo, typeRepo, loc, logger)
	assignmentService := service.NewAssignmentService(serviceRepo, logger)
	readingService := service.NewReadingService(readingRepo, serviceRepo, logger)
	playlistService := service.NewPlaylistService(playlistRepo, service.DefaultCategoryLimit, logger)

	// Черновик плана живёт в памяти процесса с расширенным лимитом
	plannerService := service.NewPlaylistService(repository.NewMemoryPlaylistRepository(), service.PlannerCategoryLimit, logger)

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required but not set")
	}

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		scheduleService,
		assignmentService,
		readingService,
		playlistService,
		plannerService,
		personRepo,
		loc,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	logger.Sugar().Infow("Starting congregation scheduler bot",
		"environment", cfg.Environment,
		"timezone", cfg.Timezone)

	botController.Start(ctx)
}
