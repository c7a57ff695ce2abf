package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/Freeeeeet/padel_booking_bot/internal/model"
)

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login единственный запрос без токена
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginBody{Email: email, Password: password}, &resp, false); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, unexpectedError(errors.New("login response without token"))
	}
	return &resp, nil
}

// Logout просит сервер отозвать токен, ошибка вызывающему не критична.
func (c *Client) Logout(ctx context.Context) error {
	return c.create(ctx, "/auth/logout", nil, nil)
}

// CurrentUser владелец токена
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
