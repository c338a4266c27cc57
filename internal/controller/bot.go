package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/controller/handlers"
	"github.com/Freeeeeet/congregation_scheduler/internal/repository"
	"github.com/Freeeeeet/congregation_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	scheduleService *service.ScheduleService,
	assignmentService *service.AssignmentService,
	readingService *service.ReadingService,
	playlistService *service.PlaylistService,
	plannerService *service.PlaylistService,
	personRepo *repository.PersonRepository,
	location *time.Location,
	logger *zap.Logger,
) *BotController {
	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		scheduleService,
		assignmentService,
		readingService,
		playlistService,
		plannerService,
		personRepo,
		location,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/services", bot.MatchTypeExact, c.handlers.HandleServices)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myduties", bot.MatchTypeExact, c.handlers.HandleMyDuties)

	// Команды с аргументами
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/generate", bot.MatchTypePrefix, c.handlers.HandleGenerate)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/plan", bot.MatchTypePrefix, c.handlers.HandlePlan)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/readings", bot.MatchTypePrefix, c.handlers.HandleReadings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/calendar", bot.MatchTypePrefix, c.handlers.HandleCalendar)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/draft", bot.MatchTypePrefix, c.handlers.HandleDraft)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "services", Description: "📅 Богослужения этого месяца"},
		{Command: "myduties", Description: "🙏 Мои назначения"},
		{Command: "calendar", Description: "🗓 Календарь месяца картинкой"},
		{Command: "generate", Description: "⚙️ Сгенерировать расписание (служители)"},
		{Command: "plan", Description: "🎵 Музыкальный план (служители)"},
		{Command: "draft", Description: "📝 Черновик музыкального плана"},
		{Command: "readings", Description: "📖 Чтения богослужения (служители)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
