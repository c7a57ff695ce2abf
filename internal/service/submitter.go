package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/Freeeeeet/padel_booking_bot/internal/validation"
)

// Ошибки проверки свободного корта перед прямой бронью
var (
	ErrSlotUnavailable  = errors.New("time slot is not available")
	ErrCourtUnavailable = errors.New("court is not free at this time slot")
)

// Result итог отправки, заполнено ровно одно поле
type Result struct {
	Booking *model.Booking
	Request *model.BookingRequest
}

// Submitter проверяет заявку и отправляет её в нужный сервис.
// Отклонённые заявки до сети не доходят.
type Submitter struct {
	bookings     *BookingService
	requests     *RequestService
	availability *AvailabilityService
	clock        calendar.Clock
}

func NewSubmitter(bookings *BookingService, requests *RequestService, availability *AvailabilityService, clock calendar.Clock) *Submitter {
	return &Submitter{bookings: bookings, requests: requests, availability: availability, clock: clock}
}

func (s *Submitter) Submit(ctx context.Context, sub validation.Submission) (*Result, error) {
	payload, err := validation.Validate(sub, s.clock.Now())
	if err != nil {
		return nil, err
	}

	switch payload.Mode {
	case validation.ModeDirect:
		court, err := s.freeCourt(ctx, payload.Booking)
		if err != nil {
			return nil, err
		}

		booking, err := s.bookings.Create(ctx, *payload.Booking)
		if err != nil {
			return nil, err
		}
		if booking.Court == nil {
			booking.Court = court
		}
		return &Result{Booking: booking}, nil
	case validation.ModeRequest:
		request, err := s.requests.Create(ctx, *payload.Request)
		if err != nil {
			return nil, err
		}
		return &Result{Request: request}, nil
	default:
		return nil, fmt.Errorf("submit: %w", validation.ErrUnknownMode)
	}
}

// freeCourt ищет корт среди свободных на этот слот.
// Снимок выбранного дня переиспользуется, другой день запрашивается без смены снимка.
func (s *Submitter) freeCourt(ctx context.Context, in *model.NewBooking) (*model.Court, error) {
	day := s.availability.Current()
	if day == nil || day.Date != in.Date {
		var err error
		day, err = s.availability.GetAvailability(ctx, in.Date)
		if err != nil {
			return nil, err
		}
	}

	slot := day.Slot(in.TimeSlot)
	if slot == nil || !slot.IsAvailable {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, in.Date, in.TimeSlot)
	}

	court := slot.Court(in.CourtID)
	if court == nil {
		return nil, fmt.Errorf("%w: %s", ErrCourtUnavailable, in.CourtID)
	}

	found := *court
	return &found, nil
}
