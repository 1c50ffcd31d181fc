package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`

	ImageURL        string `gorm:"type:varchar(512)"`
	ImageStorageKey string `gorm:"type:varchar(255)"`

	RefreshToken *string `gorm:"type:varchar(512)"`
	FCMToken     *string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	CartItems []CartItemModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CartItemModel mirrors the 'cart_items' table. A user holds at most one row
// per product; price, name and image are snapshots from the time the item
// was added.
type CartItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ImageURL  string    `gorm:"type:varchar(512)"`
	AddedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
