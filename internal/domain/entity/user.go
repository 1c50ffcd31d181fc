// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is a stored image reference: the public URL plus the key under
// which the blob store holds the object.
type Image struct {
	URL        string
	StorageKey string
}

// User is the core account entity. A user owns at most one cart; the cart
// exists only for accounts with RoleUser and is embedded as denormalized
// line items (see CartItem).
type User struct {
	ID       uuid.UUID
	Username string
	Email    string
	// PasswordHash never leaves the service; API responses drop it.
	PasswordHash string `json:"-"`
	Role         Role
	Image        *Image
	// RefreshToken holds the currently issued refresh token, or nil when
	// the user is logged out. Like the hash, it is never serialized.
	RefreshToken *string `json:"-"`
	// FCMToken is the push notification token of the account's device, nil
	// when no device is registered. Assignment pushes go to this token.
	FCMToken *string `json:"-"`
	// CartItems is nil for admin and agent accounts.
	CartItems []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCart reports whether this account carries an embedded cart.
func (u *User) HasCart() bool {
	return u.Role == RoleUser
}

// CartItem is a single line item in a user's cart. Price, Name and ImageURL
// are snapshots captured when the item was added; they intentionally do not
// track later product edits, so cart totals reflect add-time prices.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	Price     float64
	Name      string
	ImageURL  string
	AddedAt   time.Time
}
