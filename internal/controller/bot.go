package controller

import (
	"context"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/handlers"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
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
	stateManager *state.Manager,
	clock calendar.Clock,
	logger *zap.Logger,
) *BotController {
	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(stateManager, clock, logger)

	// 401 на любом запросе возвращает чат к логину
	stateManager.OnExpired(func(ctx context.Context, chatID int64) {
		logger.Info("Session expired", zap.Int64("chat_id", chatID))
		cmdHandlers.SendSessionExpired(ctx, botInstance, chatID)
	})

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// adapt передаёт *bot.Bot обработчикам как Sender
func adapt(fn func(ctx context.Context, s handlers.Sender, update *models.Update)) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		fn(ctx, b, update)
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Команды и шаги диалогов разбираются в одном месте
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, adapt(c.handlers.HandleTextMessage))

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, adapt(c.handlers.HandleCallbackQuery))

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Inici i resum"},
		{Command: "help", Description: "❓ Ajuda"},
		{Command: "login", Description: "🔑 Iniciar sessió"},
		{Command: "logout", Description: "👋 Tancar sessió"},
		{Command: "me", Description: "👤 El meu perfil"},
		{Command: "calendar", Description: "📅 Calendari"},
		{Command: "availability", Description: "🕒 Pistes lliures d'un dia"},
		{Command: "book", Description: "🎾 Reserva directa"},
		{Command: "request", Description: "🎲 Sol·licitud per al sorteig"},
		{Command: "bookings", Description: "📋 Les meves reserves"},
		{Command: "requests", Description: "📝 Les meves sol·licituds"},
		{Command: "history", Description: "🗂 Historial"},
		{Command: "players", Description: "👥 Jugadors del club"},
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

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
