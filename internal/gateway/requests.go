package gateway

import (
	"context"
	"errors"
	"net/url"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

func (c *Client) ListRequests(ctx context.Context, userID string) ([]model.BookingRequest, error) {
	var env envelope[[]model.BookingRequest]
	if err := c.get(ctx, "/requests/user/"+url.PathEscape(userID), &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}

// CreateRequest отправляет заявку, которую потом разыграет лотерея
func (c *Client) CreateRequest(ctx context.Context, in model.NewBookingRequest) (*model.BookingRequest, error) {
	var env envelope[*model.BookingRequest]
	if err := c.create(ctx, "/requests", in, &env); err != nil {
		return nil, err
	}
	request, err := unwrap(&env)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, unexpectedError(errors.New("create request: empty data"))
	}
	return request, nil
}

// CancelRequest: сервер отвечает пустым телом
func (c *Client) CancelRequest(ctx context.Context, requestID string) error {
	return c.delete(ctx, "/requests/"+url.PathEscape(requestID), nil)
}
