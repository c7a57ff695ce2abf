package handlers

import (
	"context"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Sender часть Telegram бота, нужная обработчикам; *bot.Bot ему подходит
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	DeleteMessage(ctx context.Context, params *bot.DeleteMessageParams) (bool, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	stateManager *state.Manager
	clock        calendar.Clock
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(stateManager *state.Manager, clock calendar.Clock, logger *zap.Logger) *Handlers {
	return &Handlers{
		stateManager: stateManager,
		clock:        clock,
		logger:       logger,
	}
}
