package service

import "context"

// CheckoutGuard is a short-lived idempotency lock around order placement.
// It prevents a double-submitted checkout from decrementing stock twice
// while the first request is still in flight.
type CheckoutGuard interface {
	// Acquire claims the key; false means another checkout holds it.
	Acquire(ctx context.Context, key string) (bool, error)

	// Release frees the key once the checkout has finished.
	Release(ctx context.Context, key string) error
}
