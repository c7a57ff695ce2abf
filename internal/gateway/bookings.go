package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

// ListBookings получает все бронирования пользователя
func (c *Client) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	var env envelope[[]model.Booking]
	if err := c.get(ctx, "/bookings/user/"+url.PathEscape(userID), &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}

// CreateBooking отправляет прямую бронь
func (c *Client) CreateBooking(ctx context.Context, in model.NewBooking) (*model.Booking, error) {
	var env envelope[*model.Booking]
	if err := c.create(ctx, "/bookings", in, &env); err != nil {
		return nil, err
	}
	booking, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, unexpectedError(errors.New("create booking: empty data"))
	}
	return booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	var env envelope[json.RawMessage]
	if err := c.delete(ctx, "/bookings/"+url.PathEscape(bookingID), &env); err != nil {
		return err
	}
	_, err := unwrap(&env)
	return err
}

// Availability свободные корты по слотам за один день
func (c *Client) Availability(ctx context.Context, date string) (*model.DayAvailability, error) {
	var env envelope[*model.DayAvailability]
	if err := c.get(ctx, "/bookings/availability/"+url.PathEscape(date), &env); err != nil {
		return nil, err
	}
	day, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, unexpectedError(errors.New("availability: empty data"))
	}
	return day, nil
}
