package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/padel_booking_bot/internal/config"
	"github.com/Freeeeeet/padel_booking_bot/internal/repository"
	"github.com/Freeeeeet/padel_booking_bot/internal/session"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	_ session.Store = (*session.MemoryStore)(nil)
	_ session.Store = (*repository.RedisTokenRepository)(nil)
	_ session.Store = (*repository.PostgresTokenRepository)(nil)
)

// OpenStore выбирает хранилище токенов по конфигу.
// cleanup закрывает соединения и безопасен при любом исходе.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, func(), error) {
	noop := func() {}

	switch cfg.SessionStore {
	case config.StoreRedis:
		rdb, err := repository.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("✅ Session store: redis", zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisTokenRepository(rdb), func() { _ = rdb.Close() }, nil

	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, cfg.DBDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}

		migrator, err := NewMigrator(pool, cfg.MigrationsPath, logger)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		defer migrator.Close()

		if err := migrator.Run(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}

		logger.Info("✅ Session store: postgres")
		return repository.NewPostgresTokenRepository(pool), pool.Close, nil

	default:
		logger.Info("Session store: memory, sessions are lost on restart")
		return session.NewMemoryStore(), noop, nil
	}
}
