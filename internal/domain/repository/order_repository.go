package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows admin order listings. Empty fields match everything.
type OrderFilter struct {
	Status   entity.OrderStatus
	Location string
}

// OrderRepository defines the standard operations for order persistence.
// Orders are append-then-mutate records: created once at checkout, updated
// by status and assignment operations, never deleted.
type OrderRepository interface {
	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update persists status and assignment changes of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// List retrieves a page of orders matching the filter, newest first,
	// with product-name summaries on the line items.
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]*entity.Order, error)

	// Count returns the number of orders matching the filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// ListByUser retrieves every order placed by the given user, newest
	// first. An empty result is not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListByAgent retrieves every order assigned to the given agent, newest
	// first. An empty result is not an error.
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Order, error)
}
