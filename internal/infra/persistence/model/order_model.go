package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Code is the human-readable order
// code generated from the order counter.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code       string    `gorm:"type:varchar(20);unique;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalPrice float64   `gorm:"type:numeric(12,2);not null"`

	Address       string `gorm:"type:varchar(512);not null"`
	PinCode       string `gorm:"type:varchar(20);not null"`
	Location      string `gorm:"type:varchar(100);not null;index"`
	PaymentMethod string `gorm:"type:varchar(50);not null"`

	Status     string     `gorm:"type:varchar(20);not null;index"`
	AgentID    *uuid.UUID `gorm:"type:uuid;index"`
	IsAssigned bool       `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. PriceAtPurchase freezes
// the product price at checkout time.
type OrderItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	PriceAtPurchase float64   `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
