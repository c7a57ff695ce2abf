package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRepository хранит токены сессий в Redis под ключом session:<chatID>:authToken
type RedisTokenRepository struct {
	client *redis.Client
}

func NewRedisTokenRepository(client *redis.Client) *RedisTokenRepository {
	return &RedisTokenRepository{client: client}
}

// NewRedisClient создаёт клиент и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

func (r *RedisTokenRepository) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session token: %w", err)
	}
	return val, true, nil
}

// Set хранит токен без TTL, срок жизни определяет сервер
func (r *RedisTokenRepository) Set(ctx context.Context, key, token string) error {
	if err := r.client.Set(ctx, key, token, 0).Err(); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (r *RedisTokenRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}
