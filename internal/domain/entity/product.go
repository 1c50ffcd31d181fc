package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Stock is the number of units available for
// ordering and never goes below zero; ProductSold accumulates the total
// quantity ever ordered.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       float64
	Description string
	Rating      float64
	Brand       string
	Category    string
	Section     string
	Variant     string
	Color       string
	Images      []ProductImage
	Comments    []ProductComment
	ProductSold int
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FirstImageURL returns the URL of the first product image, or an empty
// string when the product has none. Cart snapshots use this.
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0].URL
}

// ProductImage is one entry in a product's ordered image gallery.
type ProductImage struct {
	URL        string
	StorageKey string
	Position   int
}

// ProductComment is a shopper comment on a product. AuthorName and
// AuthorImage are snapshots of the author's profile at comment time.
type ProductComment struct {
	UserID      uuid.UUID
	AuthorName  string
	AuthorImage string
	Comment     string
	CreatedAt   time.Time
}
