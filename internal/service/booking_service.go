package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"go.uber.org/zap"
)

// BookingGateway часть API клиента, нужная BookingService
type BookingGateway interface {
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)
	CreateBooking(ctx context.Context, in model.NewBooking) (*model.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// BookingService держит список бронирований пользователя
type BookingService struct {
	gateway  BookingGateway
	bookings *Collection[model.Booking]
	logger   *zap.Logger
}

func NewBookingService(gateway BookingGateway, logger *zap.Logger) *BookingService {
	return &BookingService{
		gateway:  gateway,
		bookings: NewCollection(func(b model.Booking) string { return b.ID }),
		logger:   logger,
	}
}

// Fetch заменяет коллекцию списком с сервера
func (s *BookingService) Fetch(ctx context.Context, userID string) ([]model.Booking, error) {
	if err := s.bookings.begin(); err != nil {
		return nil, err
	}

	bookings, err := s.gateway.ListBookings(ctx, userID)
	if err != nil {
		s.bookings.fail(err)
		s.logger.Warn("Failed to fetch bookings", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	s.bookings.replace(bookings)
	s.logger.Debug("Bookings fetched", zap.String("user_id", userID), zap.Int("count", len(bookings)))

	return s.bookings.Items(), nil
}

// Create отправляет прямую бронь и добавляет её только после подтверждения сервером
func (s *BookingService) Create(ctx context.Context, in model.NewBooking) (*model.Booking, error) {
	if err := s.bookings.begin(); err != nil {
		return nil, err
	}

	booking, err := s.gateway.CreateBooking(ctx, in)
	if err != nil {
		s.bookings.fail(err)
		s.logger.Warn("Failed to create booking",
			zap.String("user_id", in.UserID),
			zap.String("date", in.Date),
			zap.String("time_slot", in.TimeSlot),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.bookings.add(*booking)
	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("court_id", booking.CourtID),
		zap.String("date", booking.Date),
		zap.String("time_slot", booking.TimeSlot),
	)

	return booking, nil
}

// Cancel убирает бронь после подтверждения сервера
func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	if err := s.bookings.begin(); err != nil {
		return err
	}

	if err := s.gateway.CancelBooking(ctx, bookingID); err != nil {
		s.bookings.fail(err)
		s.logger.Warn("Failed to cancel booking", zap.String("booking_id", bookingID), zap.Error(err))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.bookings.remove(bookingID)
	s.logger.Info("Booking cancelled", zap.String("booking_id", bookingID))

	return nil
}

func (s *BookingService) Bookings() []model.Booking {
	return s.bookings.Items()
}

// Booking ищет бронь в загруженном списке
func (s *BookingService) Booking(id string) (model.Booking, bool) {
	return s.bookings.Get(id)
}

func (s *BookingService) Status() Status {
	return s.bookings.Status()
}

func (s *BookingService) LastError() error {
	return s.bookings.LastError()
}
