package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/padel_booking_bot/internal/validation"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleLogin: "/login email password" входит сразу, голый "/login" начинает диалог
func (h *Handlers) handleLogin(ctx context.Context, s Sender, msg *models.Message, args []string) {
	chatID := msg.Chat.ID

	// всё после email может быть паролем, он не должен оставаться в истории чата
	if len(args) >= 2 {
		h.deleteMessage(ctx, s, msg)
	}

	switch len(args) {
	case 0:
		h.stateManager.SetState(chatID, state.StateLoginEmail)
		h.sendMessage(ctx, s, chatID, "📧 Introdueix el teu email:")
	case 2:
		h.login(ctx, s, chatID, args[0], args[1])
	default:
		h.sendError(ctx, s, chatID, usageLogin)
	}
}

func (h *Handlers) handleLoginEmailStep(ctx context.Context, s Sender, msg *models.Message) {
	chatID := msg.Chat.ID
	email := strings.TrimSpace(msg.Text)

	if !validation.ValidEmail(email) {
		h.sendError(ctx, s, chatID, ErrorMessage(validation.ErrInvalidEmail)+"\n\nTorna-ho a provar:")
		return
	}

	h.stateManager.SetData(chatID, state.DataEmail, email)
	h.stateManager.SetState(chatID, state.StateLoginPassword)
	h.sendMessage(ctx, s, chatID, "🔑 Introdueix la contrasenya:")
}

func (h *Handlers) handleLoginPasswordStep(ctx context.Context, s Sender, msg *models.Message) {
	chatID := msg.Chat.ID
	h.deleteMessage(ctx, s, msg)

	email, ok := h.stateManager.GetData(chatID, state.DataEmail)
	h.stateManager.ClearState(chatID)
	if !ok {
		h.sendError(ctx, s, chatID, usageLogin)
		return
	}

	h.login(ctx, s, chatID, email, msg.Text)
}

func (h *Handlers) login(ctx context.Context, s Sender, chatID int64, email, password string) {
	ws := h.stateManager.Workspace(ctx, chatID)

	user, err := ws.Auth.Login(ctx, email, password)
	if err != nil {
		h.fail(ctx, s, chatID, "login", err)
		return
	}

	h.logger.Info("Chat logged in", zap.Int64("chat_id", chatID), zap.String("user_id", user.ID))
	h.sendDashboard(ctx, s, ws, user.Name, user.ID)
}

func (h *Handlers) handleLogout(ctx context.Context, s Sender, chatID int64) {
	ws := h.stateManager.Workspace(ctx, chatID)

	if err := ws.Auth.Logout(ctx); err != nil {
		h.logger.Error("Failed to clear session", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	h.stateManager.Reset(chatID)

	h.sendMessage(ctx, s, chatID, "👋 Sessió tancada.\n\n"+usageLogin)
}
