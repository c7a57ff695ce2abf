package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/repository/base"
)

// PostgresTokenRepository хранит токены сессий в таблице client_sessions
type PostgresTokenRepository struct {
	*base.Repository
}

func NewPostgresTokenRepository(pool base.DB) *PostgresTokenRepository {
	return &PostgresTokenRepository{Repository: base.NewRepository(pool)}
}

// Get возвращает токен по ключу; ok=false если записи нет
func (r *PostgresTokenRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT token
		FROM client_sessions
		WHERE key = $1
	`

	var token string
	err := r.QueryRow(ctx, query, key).Scan(&token)
	if err != nil {
		if base.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get session token: %w", err)
	}

	return token, true, nil
}

// Set сохраняет или перезаписывает токен
func (r *PostgresTokenRepository) Set(ctx context.Context, key, token string) error {
	query := `
		INSERT INTO client_sessions (key, token, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET token = EXCLUDED.token, updated_at = NOW()
	`

	if _, err := r.ExecAffected(ctx, query, key, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}

	return nil
}

// Delete удаляет токен; отсутствие записи не ошибка
func (r *PostgresTokenRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM client_sessions WHERE key = $1`

	if _, err := r.ExecAffected(ctx, query, key); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	return nil
}
