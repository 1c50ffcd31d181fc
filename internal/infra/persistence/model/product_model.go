package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Stock never goes below zero;
// the conditional decrement in the repository enforces that at the statement
// level.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"type:text"`
	Rating      float64   `gorm:"type:numeric(3,2);not null;default:0"`
	Brand       string    `gorm:"type:varchar(100);index"`
	Category    string    `gorm:"type:varchar(100);index"`
	Section     string    `gorm:"type:varchar(100);index"`
	Variant     string    `gorm:"type:varchar(100)"`
	Color       string    `gorm:"type:varchar(50)"`
	ProductSold int       `gorm:"not null;default:0"`
	Stock       int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images   []ProductImageModel   `gorm:"foreignKey:ProductID"`
	Comments []ProductCommentModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table, one row per gallery
// entry ordered by Position.
type ProductImageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	URL        string    `gorm:"type:varchar(512);not null"`
	StorageKey string    `gorm:"type:varchar(255)"`
	Position   int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductCommentModel mirrors the 'product_comments' table. Author name and
// image are snapshots of the commenting user's profile.
type ProductCommentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName  string    `gorm:"type:varchar(100);not null"`
	AuthorImage string    `gorm:"type:varchar(512)"`
	Comment     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductCommentModel) TableName() string {
	return "product_comments"
}
