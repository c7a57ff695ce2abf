package state

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/service"
	"github.com/Freeeeeet/padel_booking_bot/internal/session"
	"go.uber.org/zap"
)

// Deps общие для всех workspace
type Deps struct {
	Store      session.Store
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Clock      calendar.Clock
	Logger     *zap.Logger
}

// Workspace всё, через что один чат работает с API бронирования.
// У каждого чата своя сессия и свои экземпляры сервисов.
type Workspace struct {
	ChatID       int64
	Session      *session.Context
	Gateway      *gateway.Client
	Auth         *service.AuthService
	Bookings     *service.BookingService
	Requests     *service.RequestService
	Availability *service.AvailabilityService
	Users        *service.UserService
	Submitter    *service.Submitter

	restoreMu  sync.Mutex
	restored   bool
	restoreErr error
}

// NewWorkspace собирает один чат. onUnauthorized вызывается после того, как gateway удалил токен.
func NewWorkspace(chatID int64, deps Deps, onUnauthorized func(ctx context.Context)) *Workspace {
	logger := deps.Logger.With(zap.Int64("chat_id", chatID))

	sc := session.NewContext(deps.Store, session.TokenKey(chatID), deps.Clock, logger)
	client := gateway.New(gateway.Options{
		BaseURL:        deps.BaseURL,
		Timeout:        deps.Timeout,
		Session:        sc,
		OnUnauthorized: onUnauthorized,
		HTTPClient:     deps.HTTPClient,
		Logger:         logger,
	})

	bookings := service.NewBookingService(client, logger)
	requests := service.NewRequestService(client, logger)
	availability := service.NewAvailabilityService(client, logger)

	return &Workspace{
		ChatID:       chatID,
		Session:      sc,
		Gateway:      client,
		Auth:         service.NewAuthService(client, sc, logger),
		Bookings:     bookings,
		Requests:     requests,
		Availability: availability,
		Users:        service.NewUserService(client, logger),
		Submitter:    service.NewSubmitter(bookings, requests, availability, deps.Clock),
	}
}

// Restore поднимает сохранённую сессию.
// ErrNotAuthenticated значит, что поднимать нечего. Временный сбой
// (API недоступен, 5xx) токен не трогает, попытка повторится при следующем обращении.
func (w *Workspace) Restore(ctx context.Context) error {
	w.restoreMu.Lock()
	defer w.restoreMu.Unlock()

	if w.restored {
		return w.restoreErr
	}
	// вход уже выполнен в этом чате
	if w.Auth.HasUser() {
		w.restored, w.restoreErr = true, nil
		return nil
	}

	_, err := w.Auth.Restore(ctx)
	w.restoreErr = err
	w.restored = err == nil ||
		errors.Is(err, service.ErrNotAuthenticated) ||
		errors.Is(err, gateway.ErrUnauthorized)

	return err
}

// RestoreError результат последней попытки восстановления
func (w *Workspace) RestoreError() error {
	w.restoreMu.Lock()
	defer w.restoreMu.Unlock()
	return w.restoreErr
}
