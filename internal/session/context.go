package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrEmptyToken = errors.New("empty token")

// Context владеет токеном одной клиентской сессии.
// Пустой токен значит "не авторизован", источник правды сервер.
type Context struct {
	mu     sync.RWMutex
	store  Store
	key    string
	token  string
	clock  calendar.Clock
	logger *zap.Logger
}

// NewContext создаёт контекст сессии поверх хранилища
func NewContext(store Store, key string, clock calendar.Clock, logger *zap.Logger) *Context {
	return &Context{
		store:  store,
		key:    key,
		clock:  clock,
		logger: logger,
	}
}

// Initialize поднимает сохранённый токен, если он есть.
// JWT с истёкшим exp удаляется, а не используется.
func (c *Context) Initialize(ctx context.Context) error {
	token, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}

	if !ok || token == "" {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return nil
	}

	if c.expired(token) {
		c.logger.Info("Stored token expired, purging", zap.String("key", c.key))
		return c.Clear(ctx)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return nil
}

// Set сохраняет токен после успешного логина
func (c *Context) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := c.store.Set(ctx, c.key, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return nil
}

// Clear удаляет токен локально и в хранилище. Повторный вызов ничего не делает.
func (c *Context) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := c.store.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Token текущий токен, пустой без авторизации
func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Context) Authenticated() bool {
	return c.Token() != ""
}

// expired читает exp без проверки подписи, подпись проверяет сервер.
// Токены не в формате JWT истёкшими не считаются.
func (c *Context) expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !c.clock.Now().Before(claims.ExpiresAt.Time)
}
