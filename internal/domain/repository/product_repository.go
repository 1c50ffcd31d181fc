package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a conditional stock decrement finds
// fewer units than requested. The decrement itself never goes through.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductFilter narrows catalog listings. Empty fields match everything.
type ProductFilter struct {
	Brand    string
	Category string
	Section  string
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product, including images and comments.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product with its image gallery.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// List retrieves a page of products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter, offset, limit int) ([]*entity.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Latest retrieves the most recently added products.
	Latest(ctx context.Context, limit int) ([]*entity.Product, error)

	// TopBySection retrieves the newest, cheapest-first products of a section.
	TopBySection(ctx context.Context, section string, limit int) ([]*entity.Product, error)

	// DecrementStock atomically subtracts quantity from the product's stock
	// and adds it to the sold counter, but only when stock >= quantity. The
	// check and the mutation are a single statement; ErrInsufficientStock is
	// reported when the condition does not hold and nothing was changed.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// AddComment appends a comment to a product.
	AddComment(ctx context.Context, productID uuid.UUID, comment entity.ProductComment) error
}
