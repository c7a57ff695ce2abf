package gateway

import (
	"context"
	"net/url"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var env envelope[[]model.User]
	if err := c.get(ctx, "/users", &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var env envelope[*model.User]
	if err := c.get(ctx, "/users/"+url.PathEscape(userID), &env); err != nil {
		return nil, err
	}
	return unwrap(&env)
}
