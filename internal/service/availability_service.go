package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"go.uber.org/zap"
)

type AvailabilityGateway interface {
	Availability(ctx context.Context, date string) (*model.DayAvailability, error)
}

// AvailabilityService хранит снимок только выбранного дня.
// Между датами ничего не кешируется, другой день всегда запрашивается заново.
type AvailabilityService struct {
	machine
	gateway AvailabilityGateway
	day     *model.DayAvailability
	logger  *zap.Logger
}

func NewAvailabilityService(gateway AvailabilityGateway, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{gateway: gateway, logger: logger}
}

// Fetch загружает день и делает его текущим снимком
func (s *AvailabilityService) Fetch(ctx context.Context, date string) (*model.DayAvailability, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	day, err := s.gateway.Availability(ctx, date)
	if err != nil {
		s.fail(err)
		s.logger.Warn("Failed to fetch availability", zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("fetch availability: %w", err)
	}

	s.mu.Lock()
	s.day = day
	s.status = StatusReady
	s.mu.Unlock()

	return day, nil
}

// GetAvailability возвращает данные сервера без изменения состояния
func (s *AvailabilityService) GetAvailability(ctx context.Context, date string) (*model.DayAvailability, error) {
	day, err := s.gateway.Availability(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	return day, nil
}

// Current последний загруженный день, nil до первого успеха
func (s *AvailabilityService) Current() *model.DayAvailability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day
}
