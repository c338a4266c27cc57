package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/controller/format"
	"github.com/Freeeeeet/congregation_scheduler/internal/controller/render"
	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	person, err := h.personRepo.GetByTelegramID(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to look up person", zap.Error(err))
		h.reply(ctx, b, update, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}

	// Регистрируем нового члена общины
	if person == nil {
		telegramID := user.ID
		person = &model.Person{
			TelegramID: &telegramID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			IsActive:   true,
		}

		err = h.personRepo.Create(ctx, person)
		if err != nil {
			h.logger.Error("Failed to register person", zap.Error(err))
			h.reply(ctx, b, update, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
			return
		}
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Это бот расписания богослужений общины.\n\n"+
			"Доступные команды:\n"+
			"/services - Богослужения этого месяца\n"+
			"/myduties - Мои назначения\n"+
			"/calendar - Календарь месяца картинкой\n"+
			"/help - Справка\n\n"+
			"Для служителей:\n"+
			"/generate - Сгенерировать расписание\n"+
			"/plan - Музыкальный план богослужения\n"+
			"/readings - Чтения богослужения",
		person.FirstName,
	)

	h.reply(ctx, b, update, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📖 Справка по командам:\n\n" +
		"/services - Список богослужений текущего месяца\n" +
		"/myduties - Мои назначения на ближайшие два месяца\n" +
		"/calendar [год месяц] - Календарь месяца картинкой\n\n" +
		"Для служителей:\n" +
		"/generate <год> <месяц> - Сгенерировать месяц по недельным правилам\n" +
		"/generate <год> - Сгенерировать весь год\n" +
		"/plan <id богослужения> - Музыкальный план\n" +
		"/draft - Черновик музыкального плана (не привязан к богослужению)\n" +
		"/readings <id богослужения> - Чтения"

	h.reply(ctx, b, update, helpText)
}

// HandleServices обрабатывает команду /services - богослужения текущего месяца
func (h *Handlers) HandleServices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	now := time.Now().In(h.location)
	services, err := h.scheduleService.ListServicesForMonth(ctx, now.Year(), now.Month())
	if err != nil {
		h.logger.Error("Failed to list services", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить расписание. Попробуйте позже.")
		return
	}

	if len(services) == 0 {
		h.reply(ctx, b, update, "📭 В этом месяце богослужений пока нет.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 %s %d — %d %s:\n\n",
		format.GetMonthName(now.Month()), now.Year(), len(services), format.PluralizeServices(len(services)))

	for _, svc := range services {
		sb.WriteString(format.FormatServiceLine(svc))
		sb.WriteString("\n")
	}

	h.reply(ctx, b, update, sb.String())
}

// HandleMyDuties обрабатывает команду /myduties - назначения пользователя
func (h *Handlers) HandleMyDuties(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	person, err := h.personRepo.GetByTelegramID(ctx, update.Message.From.ID)
	if err != nil {
		h.logger.Error("Failed to look up person", zap.Error(err))
		h.reply(ctx, b, update, "❌ Произошла ошибка. Попробуйте позже.")
		return
	}
	if person == nil {
		h.reply(ctx, b, update, "Сначала зарегистрируйтесь через /start.")
		return
	}

	from := time.Now().In(h.location)
	to := from.AddDate(0, 2, 0)

	services, err := h.assignmentService.ListAssignmentsForPerson(ctx, person.ID, from, to)
	if err != nil {
		h.logger.Error("Failed to list assignments", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить назначения. Попробуйте позже.")
		return
	}

	if len(services) == 0 {
		h.reply(ctx, b, update, "📭 Назначений на ближайшие два месяца нет.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🙏 Ваши назначения:\n\n")
	for _, svc := range services {
		fmt.Fprintf(&sb, "%s — %s\n", format.FormatServiceLine(svc), format.FormatAssignmentRoles(svc, person.ID))
	}

	h.reply(ctx, b, update, sb.String())
}

// HandleGenerate обрабатывает команду /generate - генерация месяца или года
func (h *Handlers) HandleGenerate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	args := strings.Fields(update.Message.Text)[1:]

	switch len(args) {
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			h.reply(ctx, b, update, "Использование: /generate <год> [месяц]")
			return
		}
		h.generateYear(ctx, b, update, year)
	case 2:
		year, err1 := strconv.Atoi(args[0])
		monthNum, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil || monthNum < 1 || monthNum > 12 {
			h.reply(ctx, b, update, "Использование: /generate <год> <месяц 1-12>")
			return
		}
		h.generateMonth(ctx, b, update, year, time.Month(monthNum))
	default:
		h.reply(ctx, b, update, "Использование: /generate <год> [месяц]")
	}
}

func (h *Handlers) generateMonth(ctx context.Context, b *bot.Bot, update *models.Update, year int, month time.Month) {
	result, err := h.scheduleService.GenerateMonth(ctx, year, month)

	switch {
	case errors.Is(err, service.ErrMonthAlreadyGenerated):
		h.reply(ctx, b, update, fmt.Sprintf("⚠️ %s %d уже сгенерирован — повторная генерация запрещена.", format.GetMonthName(month), year))
	case errors.Is(err, service.ErrNoWeeklyRules):
		h.reply(ctx, b, update, "⚠️ Не настроено ни одного недельного правила.")
	case err != nil:
		h.logger.Error("Failed to generate month", zap.Error(err))
		h.reply(ctx, b, update, "❌ Генерация не удалась. Попробуйте позже.")
	default:
		h.reply(ctx, b, update, fmt.Sprintf("✅ %s %d: создано %d %s.",
			format.GetMonthName(month), year, result.Created, format.PluralizeServices(result.Created)))
	}
}

func (h *Handlers) generateYear(ctx context.Context, b *bot.Bot, update *models.Update, year int) {
	result, err := h.scheduleService.GenerateYear(ctx, year)
	if err != nil {
		h.logger.Error("Failed to generate year", zap.Error(err))
		h.reply(ctx, b, update, "❌ Генерация не удалась. Попробуйте позже.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Год %d: создано %d %s.\n",
		year, result.Created, format.PluralizeServices(result.Created))

	for month := time.January; month <= time.December; month++ {
		if monthErr, ok := result.MonthErrors[month]; ok {
			if errors.Is(monthErr, service.ErrMonthAlreadyGenerated) {
				fmt.Fprintf(&sb, "• %s: уже был сгенерирован\n", format.GetMonthName(month))
			} else {
				fmt.Fprintf(&sb, "• %s: ошибка\n", format.GetMonthName(month))
			}
		}
	}

	h.reply(ctx, b, update, sb.String())
}

// HandlePlan обрабатывает команду /plan - музыкальный план богослужения
func (h *Handlers) HandlePlan(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	serviceID, ok := h.parseIDArg(ctx, b, update, "/plan <id богослужения>")
	if !ok {
		return
	}

	entries, err := h.playlistService.ListForService(ctx, serviceID)
	if err != nil {
		h.logger.Error("Failed to list playlist", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить план. Попробуйте позже.")
		return
	}

	h.reply(ctx, b, update, format.FormatPlaylist(entries))
}

// HandleReadings обрабатывает команду /readings - чтения богослужения
func (h *Handlers) HandleReadings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	serviceID, ok := h.parseIDArg(ctx, b, update, "/readings <id богослужения>")
	if !ok {
		return
	}

	readings, err := h.readingService.ListReadingsForService(ctx, serviceID)
	if err != nil {
		h.logger.Error("Failed to list readings", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить чтения. Попробуйте позже.")
		return
	}

	if len(readings) == 0 {
		h.reply(ctx, b, update, "📭 Чтения ещё не назначены.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📖 Чтения:\n\n")
	for _, reading := range readings {
		role := "Вступительное"
		if reading.Role == model.ReadingRoleFinal {
			role = "Заключительное"
		}
		fmt.Fprintf(&sb, "%s: %s", role, reading.Reference())
		if reading.IsRepeat {
			sb.WriteString(" (повтор)")
		}
		sb.WriteString("\n")
	}

	h.reply(ctx, b, update, sb.String())
}

// HandleCalendar обрабатывает команду /calendar - календарь месяца картинкой
func (h *Handlers) HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	now := time.Now().In(h.location)
	year, month := now.Year(), now.Month()

	args := strings.Fields(update.Message.Text)[1:]
	if len(args) == 2 {
		y, err1 := strconv.Atoi(args[0])
		m, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil || m < 1 || m > 12 {
			h.reply(ctx, b, update, "Использование: /calendar [год месяц]")
			return
		}
		year, month = y, time.Month(m)
	}

	services, err := h.scheduleService.ListServicesForMonth(ctx, year, month)
	if err != nil {
		h.logger.Error("Failed to list services for calendar", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить расписание. Попробуйте позже.")
		return
	}

	image, err := render.NewMonthImage(year, month, services).Render()
	if err != nil {
		h.logger.Error("Failed to render month image", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось нарисовать календарь.")
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: update.Message.Chat.ID,
		Photo: &models.InputFileUpload{
			Filename: fmt.Sprintf("calendar_%d_%02d.png", year, month),
			Data:     bytes.NewReader(image),
		},
		Caption: fmt.Sprintf("%s %d", format.GetMonthName(month), year),
	})
	if err != nil {
		h.logger.Error("Failed to send calendar photo", zap.Error(err))
	}
}

func (h *Handlers) parseIDArg(ctx context.Context, b *bot.Bot, update *models.Update, usage string) (int64, bool) {
	args := strings.Fields(update.Message.Text)[1:]
	if len(args) != 1 {
		h.reply(ctx, b, update, "Использование: "+usage)
		return 0, false
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		h.reply(ctx, b, update, "Использование: "+usage)
		return 0, false
	}

	return id, true
}

func (h *Handlers) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message", zap.Error(err))
	}
}
