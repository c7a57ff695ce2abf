package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/app"
	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/config"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller"
	"github.com/Freeeeeet/padel_booking_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

const serviceName = "padel-booking-bot"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg, serviceName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting padel booking bot",
		zap.String("api", cfg.APIBaseURL),
		zap.String("session_store", cfg.SessionStore),
		zap.String("timezone", cfg.Timezone),
	)

	shutdownTracer, err := app.InitTracer(ctx, serviceName, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	clock := calendar.SystemClock{Location: cfg.Location()}

	manager := state.NewDefaultManager(state.Deps{
		Store:   store,
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Clock:   clock,
		Logger:  logger,
	})

	b, err := bot.New(cfg.TelegramToken,
		bot.WithErrorsHandler(func(err error) {
			logger.Warn("Telegram error", zap.Error(err))
		}),
	)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, manager, clock, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// меню команд не критично для работы
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		return err
	}

	logger.Info("👋 Bot stopped")
	return nil
}
