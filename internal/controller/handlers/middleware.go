package handlers

import (
	"context"

	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireUser проверяет что в чате выполнен вход
// Возвращает workspace, user и true если OK
func (h *Handlers) requireUser(ctx context.Context, s Sender, chatID int64) (*state.Workspace, *model.User, bool) {
	ws := h.stateManager.Workspace(ctx, chatID)

	user, err := ws.Auth.User()
	if err != nil {
		// сессия есть, но API не ответил при восстановлении
		if restoreErr := ws.RestoreError(); restoreErr != nil && ws.Session.Authenticated() {
			err = restoreErr
		}
		h.sendError(ctx, s, chatID, ErrorMessage(err))
		return nil, nil, false
	}

	return ws, user, true
}

// fail логирует err и отвечает текстом для пользователя
func (h *Handlers) fail(ctx context.Context, s Sender, chatID int64, action string, err error) {
	h.logger.Warn("Command failed",
		zap.Int64("chat_id", chatID),
		zap.String("action", action),
		zap.Error(err),
	)
	h.sendError(ctx, s, chatID, ErrorMessage(err))
}

// sendError отправляет сообщение об ошибке и логирует если не удалось
func (h *Handlers) sendError(ctx context.Context, s Sender, chatID int64, text string) {
	_, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send error message",
			zap.Int64("chat_id", chatID),
			zap.String("text", text),
			zap.Error(err),
		)
	}
}

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, s Sender, chatID int64, text string) {
	h.sendWithKeyboard(ctx, s, chatID, text, nil)
}

func (h *Handlers) sendWithKeyboard(ctx context.Context, s Sender, chatID int64, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}

	if _, err := s.SendMessage(ctx, params); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// deleteMessage убирает из чата сообщения с паролем
func (h *Handlers) deleteMessage(ctx context.Context, s Sender, msg *models.Message) {
	_, err := s.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})
	if err != nil {
		h.logger.Debug("Failed to delete message", zap.Int("message_id", msg.ID), zap.Error(err))
	}
}

// SendSessionExpired отправляется, когда сервер отклонил токен чата
func (h *Handlers) SendSessionExpired(ctx context.Context, s Sender, chatID int64) {
	h.sendMessage(ctx, s, chatID, "🔒 La teva sessió ha caducat. Torna a iniciar sessió.\n\n"+usageLogin)
}
