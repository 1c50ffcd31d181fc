// Package cache provides Redis-backed infrastructure services.
package cache

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// checkoutGuardTTL bounds how long a stuck checkout can hold its key.
const checkoutGuardTTL = 30 * time.Second

// Params holds dependencies for the CheckoutGuard, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCheckoutGuard creates a CheckoutGuard based on configuration. Without
// Redis the guard degrades to a no-op that admits every checkout; the
// conditional stock decrement still keeps oversell out.
func NewCheckoutGuard(params Params) (service.CheckoutGuard, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, checkout idempotency guard disabled")

		return &noopCheckoutGuard{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisCheckoutGuard{client: client}, nil
}

// redisCheckoutGuard implements CheckoutGuard with a SET NX lock per key.
type redisCheckoutGuard struct {
	client *redis.Client
}

// Acquire claims the key; false means another checkout holds it.
func (g *redisCheckoutGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKey(key), 1, checkoutGuardTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire checkout guard")
	}

	return ok, nil
}

// Release frees the key once the checkout has finished.
func (g *redisCheckoutGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, guardKey(key)).Err(); err != nil {
		return errors.Wrap(err, "failed to release checkout guard")
	}

	return nil
}

func guardKey(key string) string {
	return "checkout:guard:" + key
}

// noopCheckoutGuard admits every checkout.
type noopCheckoutGuard struct{}

func (g *noopCheckoutGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (g *noopCheckoutGuard) Release(ctx context.Context, key string) error {
	return nil
}
