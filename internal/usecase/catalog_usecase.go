package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddProductInput defines the data required to add a catalog entry.
type AddProductInput struct {
	Name        string
	Price       float64
	Description string
	Brand       string
	Category    string
	Section     string
	Variant     string
	Color       string
	Stock       int
	Images      []ImageUpload
}

// UpdateProductInput carries the editable product fields.
type UpdateProductInput struct {
	Name        string
	Price       float64
	Description string
	Rating      float64
	Brand       string
	Category    string
	Section     string
	Variant     string
	Color       string
	Stock       int
}

// ListProductsInput defines the catalog listing parameters.
type ListProductsInput struct {
	Brand    string
	Category string
	Section  string
	Page     int
	Limit    int
}

// AddCommentInput defines a shopper comment on a product.
type AddCommentInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Comment   string
}

// --- Output DTOs ---

// ProductListOutput is one page of products with its pagination envelope.
type ProductListOutput struct {
	Products      []*entity.Product
	CurrentPage   int
	TotalProducts int64
	TotalPages    int
}

// CatalogUsecase defines the interface for catalog operations.
type CatalogUsecase interface {
	// AddProduct creates a catalog entry, uploading its images to the blob
	// store. Admin only.
	AddProduct(ctx context.Context, input AddProductInput) (*entity.Product, error)

	// UpdateProduct edits an existing catalog entry. Admin only.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// ListProducts retrieves a page of products with optional brand,
	// category and section filters.
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListOutput, error)

	// GetProduct retrieves a single product with images and comments.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// LatestProducts retrieves the newest catalog entries for the home page.
	LatestProducts(ctx context.Context) ([]*entity.Product, error)

	// TopBySection retrieves the featured products of a section.
	TopBySection(ctx context.Context, section string) ([]*entity.Product, error)

	// AddComment appends a comment to a product, snapshotting the author's
	// name and image.
	AddComment(ctx context.Context, input AddCommentInput) error
}
