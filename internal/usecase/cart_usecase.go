package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CartOutput is the user's cart with the add-time snapshot total.
type CartOutput struct {
	Items      []entity.CartItem
	TotalPrice float64
}

// CartUsecase defines the interface for cart operations. The cart lives
// embedded in the account; line items snapshot price, name and image at add
// time and deliberately ignore later product edits.
type CartUsecase interface {
	// AddItem puts a product into the cart. Adding a product that is
	// already present replaces the quantity and refreshes the snapshot.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartOutput, error)

	// UpdateQuantity changes the quantity of an existing line item.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartOutput, error)

	// RemoveItem removes a line item from the cart.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartOutput, error)

	// GetCart retrieves the cart with its snapshot total.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)
}
