// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a checkout.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	Items         []OrderItemInput
	TotalPrice    float64
	Address       string
	PinCode       string
	Location      string
	PaymentMethod string
}

// ListOrdersInput defines the admin order listing parameters. Page and Limit
// fall back to their defaults when zero.
type ListOrdersInput struct {
	Status   string
	Location string
	Page     int
	Limit    int
}

// --- Output DTOs ---

// OrderListOutput is one page of orders with its pagination envelope.
type OrderListOutput struct {
	Orders      []*entity.Order
	CurrentPage int
	TotalOrders int64
	TotalPages  int
}

// UpdateStatusOutput reports the result of a status update. Changed is false
// when the order already carried the requested status; the update is then a
// no-op and no event is published.
type UpdateStatusOutput struct {
	Order   *entity.Order
	Changed bool
}

// OrderUsecase defines the interface for the order workflow: checkout,
// listings, the status/assignment state machine and the handoff QR.
type OrderUsecase interface {
	// PlaceOrder runs the whole checkout atomically: stock decrements, the
	// order code sequence, cart reconciliation and the order insert commit
	// or roll back together.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders retrieves a page of orders with optional status and
	// location filters. Admin only.
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderListOutput, error)

	// GetOrder retrieves a single order by ID.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListUserOrders retrieves every order placed by the given user.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAgentOrders retrieves every order assigned to the given agent.
	ListAgentOrders(ctx context.Context, agentID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves the order to the given status. An unrecognized
	// label is rejected; the current status again is a no-op.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*UpdateStatusOutput, error)

	// AssignAgent assigns a delivery agent to the order. The account must
	// carry the agent role; on success the agent is notified.
	AssignAgent(ctx context.Context, orderID, agentID uuid.UUID) (*entity.Order, error)

	// HandoffQR renders the PNG QR code an agent presents at delivery.
	HandoffQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
