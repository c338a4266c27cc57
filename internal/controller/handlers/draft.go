package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/congregation_scheduler/internal/controller/format"
	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/Freeeeeet/congregation_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const draftUsage = "Использование:\n" +
	"/draft - показать черновик\n" +
	"/draft add <гимн|припев> <номер> - добавить\n" +
	"/draft del <id> - убрать\n" +
	"/draft clear - очистить черновик"

// HandleDraft обрабатывает команду /draft - черновик музыкального плана.
// Черновик не привязан к богослужению: он живёт в памяти на время сессии
// чата, с расширенным лимитом категорий.
func (h *Handlers) HandleDraft(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	// Ключ сессии черновика — чат
	sessionID := update.Message.Chat.ID
	args := strings.Fields(update.Message.Text)[1:]

	if len(args) == 0 {
		h.showDraft(ctx, b, update, sessionID)
		return
	}

	switch args[0] {
	case "add":
		h.draftAdd(ctx, b, update, sessionID, args[1:])
	case "del":
		h.draftRemove(ctx, b, update, args[1:])
	case "clear":
		h.draftClear(ctx, b, update, sessionID)
	default:
		h.reply(ctx, b, update, draftUsage)
	}
}

func (h *Handlers) showDraft(ctx context.Context, b *bot.Bot, update *models.Update, sessionID int64) {
	entries, err := h.plannerService.ListForService(ctx, sessionID)
	if err != nil {
		h.logger.Error("Failed to list draft", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось получить черновик.")
		return
	}

	if len(entries) == 0 {
		h.reply(ctx, b, update, "📝 Черновик пуст.\n\n"+draftUsage)
		return
	}

	h.reply(ctx, b, update, "📝 Черновик плана:\n\n"+format.FormatPlaylist(entries))
}

func (h *Handlers) draftAdd(ctx context.Context, b *bot.Bot, update *models.Update, sessionID int64, args []string) {
	if len(args) != 2 {
		h.reply(ctx, b, update, draftUsage)
		return
	}

	var category model.SongCategory
	switch strings.ToLower(args[0]) {
	case "гимн":
		category = model.SongCategoryHymn
	case "припев":
		category = model.SongCategoryChorus
	default:
		h.reply(ctx, b, update, draftUsage)
		return
	}

	itemID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		h.reply(ctx, b, update, draftUsage)
		return
	}

	entry, err := h.plannerService.AddEntry(ctx, sessionID, category, itemID)
	switch {
	case errors.Is(err, service.ErrDuplicateEntry):
		h.reply(ctx, b, update, "⚠️ Этот номер уже есть в черновике.")
	case errors.Is(err, service.ErrCapacityReached):
		h.reply(ctx, b, update, fmt.Sprintf("⚠️ В категории уже %d номеров — больше не поместится.", service.PlannerCategoryLimit))
	case err != nil:
		h.logger.Error("Failed to add draft entry", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось добавить номер.")
	default:
		h.reply(ctx, b, update, fmt.Sprintf("✅ №%d добавлен (позиция %d, id %d).", itemID, entry.Position, entry.ID))
	}
}

func (h *Handlers) draftRemove(ctx context.Context, b *bot.Bot, update *models.Update, args []string) {
	if len(args) != 1 {
		h.reply(ctx, b, update, draftUsage)
		return
	}

	entryID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		h.reply(ctx, b, update, draftUsage)
		return
	}

	err = h.plannerService.RemoveEntry(ctx, entryID)
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		h.reply(ctx, b, update, "⚠️ Такой записи в черновике нет.")
	case err != nil:
		h.logger.Error("Failed to remove draft entry", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось убрать номер.")
	default:
		h.reply(ctx, b, update, "✅ Номер убран из черновика.")
	}
}

func (h *Handlers) draftClear(ctx context.Context, b *bot.Bot, update *models.Update, sessionID int64) {
	entries, err := h.plannerService.ListForService(ctx, sessionID)
	if err != nil {
		h.logger.Error("Failed to list draft", zap.Error(err))
		h.reply(ctx, b, update, "❌ Не удалось очистить черновик.")
		return
	}

	for _, entry := range entries {
		if err := h.plannerService.RemoveEntry(ctx, entry.ID); err != nil {
			h.logger.Error("Failed to clear draft entry", zap.Error(err), zap.Int64("entry_id", entry.ID))
			h.reply(ctx, b, update, "❌ Не удалось очистить черновик.")
			return
		}
	}

	h.reply(ctx, b, update, "🗑 Черновик очищен.")
}
