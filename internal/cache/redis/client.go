package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sionlog-blog-service/internal/config"
	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
)

type Client struct {
	client *redis.Client
	log    *logger.Logger
}

func NewClient(cfg config.Redis, log *logger.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		slog.String("address", cfg.Address),
		slog.Int("port", cfg.Port),
		slog.Int("db", cfg.DB))

	return &Client{
		client: rdb,
		log:    log,
	}, nil
}

func (c *Client) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.log.Debug("Cache miss", slog.String("key", key))
			return custom_errors.ErrCacheMiss
		}
		c.log.Error("Failed to get from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Error("Failed to unmarshal cached value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal cached value: %w", err)
	}

	return nil
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to marshal value for cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal value for cache: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to set cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set cache value: %w", err)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("Failed to delete cache key",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete cache key: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
