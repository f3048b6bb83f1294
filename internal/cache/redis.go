// Package cache содержит обёртку над Redis, общую для нескольких экземпляров сервиса.
// Используется как хранилище счётчиков ограничения частоты запросов.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/license-auth/internal/config"
)

// Cache хранит клиент Redis.
type Cache struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RateLimit) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// Hit увеличивает счётчик key в окне фиксированной длины и возвращает его значение.
// INCR и EXPIRE NX выполняются в одной транзакции, поэтому у счётчика всегда есть
// время жизни, и оно не продлевается последующими попаданиями.
func (c *Cache) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	const op = "cache.Hit"

	var incr *redis.IntCmd
	_, err := c.Db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return incr.Val(), nil
}

// Close закрывает соединение.
func (c *Cache) Close() error {
	return c.Db.Close()
}
