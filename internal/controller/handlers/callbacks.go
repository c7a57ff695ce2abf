package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/padel_booking_bot/internal/controller/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCallbackQuery обрабатывает нажатия на inline кнопки
func (h *Handlers) HandleCallbackQuery(ctx context.Context, s Sender, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	// убираем "часики" на кнопке сразу
	if _, err := s.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: query.ID}); err != nil {
		h.logger.Debug("Failed to answer callback", zap.Error(err))
	}

	if query.Message.Message == nil {
		return
	}
	chatID := query.Message.Message.Chat.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, keyboard.PrefixDay):
		date, err := parseDate(strings.TrimPrefix(data, keyboard.PrefixDay), h.clock.Now().Location())
		if err != nil {
			h.fail(ctx, s, chatID, "calendar day", err)
			return
		}
		h.showAvailability(ctx, s, chatID, date)
	case strings.HasPrefix(data, keyboard.PrefixCancelBooking):
		h.cancelBooking(ctx, s, chatID, strings.TrimPrefix(data, keyboard.PrefixCancelBooking))
	case strings.HasPrefix(data, keyboard.PrefixCancelRequest):
		h.cancelRequest(ctx, s, chatID, strings.TrimPrefix(data, keyboard.PrefixCancelRequest))
	default:
		h.logger.Warn("Unknown callback data", zap.Int64("chat_id", chatID), zap.String("data", data))
	}
}
