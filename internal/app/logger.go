package app

import (
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает zap логгер: JSON в production, цветной консольный вывод в разработке
func NewLogger(cfg *config.Config, service string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.InitialFields = map[string]any{
		"service": service,
		"env":     cfg.Environment,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
