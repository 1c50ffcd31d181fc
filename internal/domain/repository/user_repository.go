// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows account listings.
type UserFilter struct {
	// Role filters accounts by role when non-nil.
	Role *entity.Role
}

// UserRepository defines the standard operations for account persistence.
// The cart is embedded in the account: the repository reads it alongside the
// user and mutates it through the dedicated cart methods.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including cart items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user matching either value.
	// Registration uses it for duplicate detection.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken stores or clears (nil) the user's refresh token.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error

	// List retrieves a page of accounts matching the filter.
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]*entity.User, error)

	// Count returns the number of accounts matching the filter.
	Count(ctx context.Context, filter UserFilter) (int64, error)

	// UpsertCartItem adds a line item to the user's cart, replacing the
	// quantity and snapshot when the product is already present.
	UpsertCartItem(ctx context.Context, userID uuid.UUID, item entity.CartItem) error

	// UpdateCartQuantity changes the quantity of an existing line item.
	// Returns ErrCartItemNotFound when the product is not in the cart.
	UpdateCartQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveCartItems deletes the line items referencing the given products,
	// leaving every other line item untouched.
	RemoveCartItems(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
}

// ErrCartItemNotFound is returned when a cart mutation references a product
// the cart does not contain.
var ErrCartItemNotFound = errors.New("cart item not found")
