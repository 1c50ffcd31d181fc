package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderCodePrefix tags every human-readable order code.
const OrderCodePrefix = "ORD"

// orderCodeWidth is the zero-padded width of the numeric part. Sequence
// values beyond 9999 simply widen the code instead of truncating.
const orderCodeWidth = 4

// FormatOrderCode renders a counter value as a human-readable order code:
// 7 -> "ORD0007", 123 -> "ORD0123", 10000 -> "ORD10000".
func FormatOrderCode(seq int64) string {
	return fmt.Sprintf("%s%0*d", OrderCodePrefix, orderCodeWidth, seq)
}

// Order is a durable record of a checkout. It is created once, mutated only
// by status updates and agent assignment, and never deleted in normal flow.
type Order struct {
	ID   uuid.UUID
	Code string
	// UserID references the account that placed the order.
	UserID     uuid.UUID
	Items      []OrderItem
	TotalPrice float64

	Address       string
	PinCode       string
	Location      string
	PaymentMethod string

	Status OrderStatus
	// AgentID references the assigned delivery agent, nil until assignment.
	// The referenced account must have RoleAgent.
	AgentID    *uuid.UUID
	IsAssigned bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is one line of an order. PriceAtPurchase is the product price
// captured at order creation, independent of later price changes.
type OrderItem struct {
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase float64

	// ProductName is populated on reads for listing summaries; it is not
	// part of the durable order line.
	ProductName string
}

// ProductIDs returns the distinct product references of the order lines,
// in order of first appearance.
func (o *Order) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Items))
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}
