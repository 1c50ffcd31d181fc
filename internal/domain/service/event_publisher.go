package service

import (
	"context"
)

// Order event types published to the message queue.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
	OrderEventAssigned      = "order.assigned"
)

// OrderEvent describes a change in an order's lifecycle. Events are
// published best-effort after the owning transaction commits; a publish
// failure never fails the request.
type OrderEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	OrderID   string `json:"order_id"`
	OrderCode string `json:"order_code"`
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id,omitempty"`
	Status    string `json:"status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
