package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product, including images and comments.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product with its image gallery.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product. Stock and sold counters are excluded:
// they only move through DecrementStock or an explicit stock value here.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"description": product.Description,
			"rating":      product.Rating,
			"brand":       product.Brand,
			"category":    product.Category,
			"section":     product.Section,
			"variant":     product.Variant,
			"color":       product.Color,
			"stock":       product.Stock,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List retrieves a page of products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := applyProductFilter(repo.db.WithContext(ctx), filter).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// Count returns the number of products matching the filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64

	if err := applyProductFilter(repo.db.WithContext(ctx), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// Latest retrieves the most recently added products.
func (repo *productRepository) Latest(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	return toProductDomains(productModels), nil
}

// TopBySection retrieves the newest, cheapest-first products of a section.
func (repo *productRepository) TopBySection(ctx context.Context, section string, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("section = ?", section).
		Order("price ASC, created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by section")
	}

	return toProductDomains(productModels), nil
}

// DecrementStock atomically subtracts quantity from stock and adds it to the
// sold counter. The availability check and the mutation are one statement:
// under concurrent checkouts only callers that find enough stock succeed,
// and stock can never go negative.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock":        gorm.Expr("stock - ?", quantity),
			"product_sold": gorm.Expr("product_sold + ?", quantity),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Either the product is missing or it has fewer units than requested.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// AddComment appends a comment to a product.
func (repo *productRepository) AddComment(ctx context.Context, productID uuid.UUID, comment entity.ProductComment) error {
	commentM := &model.ProductCommentModel{
		ProductID:   productID,
		UserID:      comment.UserID,
		AuthorName:  comment.AuthorName,
		AuthorImage: comment.AuthorImage,
		Comment:     comment.Comment,
		CreatedAt:   comment.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product comment")
	}

	return nil
}

func applyProductFilter(db *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	query := db.Model(&model.ProductModel{})
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Section != "" {
		query = query.Where("section = ?", filter.Section)
	}

	return query
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Rating:      data.Rating,
		Brand:       data.Brand,
		Category:    data.Category,
		Section:     data.Section,
		Variant:     data.Variant,
		Color:       data.Color,
		ProductSold: data.ProductSold,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, imageM := range data.Images {
		product.Images = append(product.Images, entity.ProductImage{
			URL:        imageM.URL,
			StorageKey: imageM.StorageKey,
			Position:   imageM.Position,
		})
	}

	for _, commentM := range data.Comments {
		product.Comments = append(product.Comments, entity.ProductComment{
			UserID:      commentM.UserID,
			AuthorName:  commentM.AuthorName,
			AuthorImage: commentM.AuthorImage,
			Comment:     commentM.Comment,
			CreatedAt:   commentM.CreatedAt,
		})
	}

	return product
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Rating:      data.Rating,
		Brand:       data.Brand,
		Category:    data.Category,
		Section:     data.Section,
		Variant:     data.Variant,
		Color:       data.Color,
		ProductSold: data.ProductSold,
		Stock:       data.Stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, image := range data.Images {
		productM.Images = append(productM.Images, model.ProductImageModel{
			ProductID:  data.ID,
			URL:        image.URL,
			StorageKey: image.StorageKey,
			Position:   image.Position,
		})
	}

	return productM
}
