package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/config"
	"github.com/agenttrace/woops/internal/handler"
	"github.com/agenttrace/woops/internal/middleware"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Redis backs the rate limiter; nil when rate limiting is off
	Redis *redis.Client

	// Handlers
	Health  *handler.HealthHandler
	Catalog *handler.CatalogHandler
	Echo    *handler.EchoHandler
	Items   *handler.ItemHandler

	// Middleware
	Bearer    middleware.BearerConfig
	RateLimit middleware.RateLimitConfig
}

// initDependencies initializes all dependencies
func initDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.RateLimit.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := initRedis(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		deps.Redis = client
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr()))
	}

	deps.Health = handler.NewHealthHandler(deps.Redis, appVersion)
	deps.Catalog = handler.NewCatalogHandler(cfg.JWT.Realm)
	deps.Echo = handler.NewEchoHandler()
	deps.Items = handler.NewItemHandler(sampleItems()...)

	deps.Bearer = middleware.BearerConfig{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		Realm:  cfg.JWT.Realm,
	}

	deps.RateLimit = middleware.DefaultRateLimitConfig()
	deps.RateLimit.Max = cfg.RateLimit.Max
	deps.RateLimit.Window = cfg.RateLimit.Window
	deps.RateLimit.Logger = logger

	return deps, nil
}

// Close releases all connections
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error("failed to close Redis", zap.Error(err))
		}
	}
}

// initRedis initializes the Redis client
func initRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// sampleItems are the items served by /api/items
func sampleItems() []handler.Item {
	return []handler.Item{
		{ID: uuid.MustParse("6f1c2a43-46c4-4d7e-9a57-0c38b6d2a1f0"), Name: "widget"},
		{ID: uuid.MustParse("0b8f7f52-9a0c-4b8e-8f43-2d7c1e0a9b11"), Name: "gadget"},
		{ID: uuid.MustParse("c1d5e0a2-7b3f-4e69-8d21-5f4a9c6b3e87"), Name: "gizmo"},
	}
}
