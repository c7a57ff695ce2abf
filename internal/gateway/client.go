package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultTimeout ограничивает каждый запрос, превышение считается NetworkUnreachable
const DefaultTimeout = 10 * time.Second

const tracerName = "github.com/Freeeeeet/padel_booking_bot/internal/gateway"

// Session хранит токен, gateway читает его и удаляет на 401
type Session interface {
	Token() string
	Clear(ctx context.Context) error
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Session Session
	// OnUnauthorized вызывается после удаления токена, какой бы запрос ни получил 401
	OnUnauthorized func(ctx context.Context)
	HTTPClient     *http.Client
	Logger         *zap.Logger
}

// Client единственная точка выхода к API бронирования
type Client struct {
	baseURL        string
	http           *http.Client
	session        Session
	onUnauthorized func(ctx context.Context)
	tracer         trace.Tracer
	logger         *zap.Logger
}

// New создаёт клиент API
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		httpClient = &copied
	}
	httpClient.Timeout = timeout

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           httpClient,
		session:        opts.Session,
		onUnauthorized: opts.OnUnauthorized,
		tracer:         otel.Tracer(tracerName),
		logger:         logger,
	}
}

// apiError тело ответа сервера при не-2xx
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// envelope обёртка большинства успешных ответов
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// unwrap считает явный success:false отказом
func unwrap[T any](env *envelope[T]) (T, error) {
	if env.Success != nil && !*env.Success {
		var zero T
		msg := env.Message
		if msg == "" {
			return zero, &Error{Kind: KindServerRejected, Code: "Unsuccessful", Message: MessageGeneric, Status: http.StatusOK}
		}
		return zero, &Error{Kind: KindServerRejected, Code: "Unsuccessful", Message: Translate(msg), Status: http.StatusOK}
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) create(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, true)
}

// do выполняет один запрос и сводит любой сбой к *Error
func (c *Client) do(ctx context.Context, method, path string, body, out any, withAuth bool) error {
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	err := c.roundTrip(ctx, span, requestID, method, path, body, out, withAuth)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.kind", string(err.Kind)))
		return err
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, span trace.Span, requestID, method, path string, body, out any, withAuth bool) *Error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return unexpectedError(fmt.Errorf("encode body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return unexpectedError(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("API call failed without response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(fmt.Errorf("read body: %w", err))
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("API call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return c.unauthorized(ctx, raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejected(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return unexpectedError(fmt.Errorf("decode %s %s: %w", method, path, err))
	}

	return nil
}

// unauthorized удаляет токен и возвращает пользователя к логину.
// Срабатывает на любой 401, не только на запросах сессии.
func (c *Client) unauthorized(ctx context.Context, raw []byte) *Error {
	if c.session != nil {
		if err := c.session.Clear(ctx); err != nil {
			c.logger.Error("Failed to purge credential after 401", zap.Error(err))
		}
	}

	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	msg := MessageUnauthorized
	var body apiError
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		msg = Translate(body.Message)
	}

	return &Error{Kind: KindUnauthorized, Code: "Unauthorized", Message: msg, Status: http.StatusUnauthorized}
}

func rejected(status int, raw []byte) *Error {
	e := &Error{
		Kind:    KindServerRejected,
		Code:    fmt.Sprintf("HTTP_%d", status),
		Message: MessageGeneric,
		Status:  status,
	}

	var body apiError
	if err := json.Unmarshal(raw, &body); err != nil {
		return e
	}
	if body.Error != "" {
		e.Code = body.Error
	}
	if body.Message != "" {
		e.Message = Translate(body.Message)
	}
	return e
}
