package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"github.com/Freeeeeet/padel_booking_bot/internal/validation"
	"go.uber.org/zap"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*gateway.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
}

// Credentials контекст сессии глазами AuthService
type Credentials interface {
	Initialize(ctx context.Context) error
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Authenticated() bool
}

// AuthService ведёт вход и выход пользователя одного чата
type AuthService struct {
	mu      sync.RWMutex
	gateway AuthGateway
	creds   Credentials
	user    *model.User
	logger  *zap.Logger
}

func NewAuthService(gateway AuthGateway, creds Credentials, logger *zap.Logger) *AuthService {
	return &AuthService{gateway: gateway, creds: creds, logger: logger}
}

// Login проверяет форму локально, затем меняет логин и пароль на токен
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := validation.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	resp, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.creds.Set(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	user := resp.User
	s.setUser(&user)

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return &user, nil
}

// Logout сообщает серверу, пока токен ещё прикреплён.
// Запрос к серверу best-effort, локальная очистка выполняется всегда.
func (s *AuthService) Logout(ctx context.Context) error {
	// пользователь забывается до запроса: 401 на выходе не считается истёкшей сессией
	s.setUser(nil)

	if s.creds.Authenticated() {
		if err := s.gateway.Logout(ctx); err != nil {
			s.logger.Warn("Server logout failed, purging locally", zap.Error(err))
		}
	}

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Restore поднимает сохранённый токен и проверяет его через /auth/me.
// Токен удаляется только на 401, при недоступном API он остаётся до следующей попытки.
func (s *AuthService) Restore(ctx context.Context) (*model.User, error) {
	if err := s.creds.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	if !s.creds.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.setUser(nil)
		if !errors.Is(err, gateway.ErrUnauthorized) {
			s.logger.Warn("Session not restored, token kept", zap.Error(err))
			return nil, fmt.Errorf("restore session: %w", err)
		}

		s.logger.Info("Stored session rejected", zap.Error(err))
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.logger.Error("Failed to purge session", zap.Error(clearErr))
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}

	s.setUser(user)
	return user, nil
}

// User текущий пользователь или ErrNotAuthenticated
func (s *AuthService) User() (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil || !s.creds.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	u := *s.user
	return &u, nil
}

// HasUser был ли загружен пользователь, даже если токен уже удалён
func (s *AuthService) HasUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthService) setUser(u *model.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}
