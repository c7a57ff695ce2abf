package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"go.uber.org/zap"
)

type RequestGateway interface {
	ListRequests(ctx context.Context, userID string) ([]model.BookingRequest, error)
	CreateRequest(ctx context.Context, in model.NewBookingRequest) (*model.BookingRequest, error)
	CancelRequest(ctx context.Context, requestID string) error
}

// RequestService держит заявки на розыгрыш
type RequestService struct {
	gateway  RequestGateway
	requests *Collection[model.BookingRequest]
	logger   *zap.Logger
}

func NewRequestService(gateway RequestGateway, logger *zap.Logger) *RequestService {
	return &RequestService{
		gateway:  gateway,
		requests: NewCollection(func(r model.BookingRequest) string { return r.ID }),
		logger:   logger,
	}
}

func (s *RequestService) Fetch(ctx context.Context, userID string) ([]model.BookingRequest, error) {
	if err := s.requests.begin(); err != nil {
		return nil, err
	}

	requests, err := s.gateway.ListRequests(ctx, userID)
	if err != nil {
		s.requests.fail(err)
		s.logger.Warn("Failed to fetch requests", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("fetch requests: %w", err)
	}

	s.requests.replace(requests)
	return s.requests.Items(), nil
}

// Create записывает на розыгрыш слота, заявка добавляется после ответа сервера
func (s *RequestService) Create(ctx context.Context, in model.NewBookingRequest) (*model.BookingRequest, error) {
	if err := s.requests.begin(); err != nil {
		return nil, err
	}

	request, err := s.gateway.CreateRequest(ctx, in)
	if err != nil {
		s.requests.fail(err)
		s.logger.Warn("Failed to create request",
			zap.String("user_id", in.UserID),
			zap.String("date", in.Date),
			zap.String("time_slot", in.TimeSlot),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.requests.add(*request)
	s.logger.Info("Booking request created",
		zap.String("request_id", request.ID),
		zap.String("date", request.Date),
		zap.String("time_slot", request.TimeSlot),
	)

	return request, nil
}

func (s *RequestService) Cancel(ctx context.Context, requestID string) error {
	if err := s.requests.begin(); err != nil {
		return err
	}

	if err := s.gateway.CancelRequest(ctx, requestID); err != nil {
		s.requests.fail(err)
		s.logger.Warn("Failed to cancel request", zap.String("request_id", requestID), zap.Error(err))
		return fmt.Errorf("cancel request: %w", err)
	}

	s.requests.remove(requestID)
	s.logger.Info("Booking request cancelled", zap.String("request_id", requestID))

	return nil
}

func (s *RequestService) Requests() []model.BookingRequest {
	return s.requests.Items()
}

func (s *RequestService) Request(id string) (model.BookingRequest, bool) {
	return s.requests.Get(id)
}

func (s *RequestService) Status() Status {
	return s.requests.Status()
}

func (s *RequestService) LastError() error {
	return s.requests.LastError()
}
