package impl

import (
	"context"
	"log/slog"
	"path"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// latestProductCount is how many entries the home page shows.
const latestProductCount = 4

// topBySectionCount is how many featured entries a section carries.
const topBySectionCount = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	imageStorage service.ImageStorage
	pagination   config.PaginationConfig
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	ImageStorage service.ImageStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		imageStorage: params.ImageStorage,
		pagination:   params.Config.Pagination,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct creates a catalog entry, uploading its images to the blob store.
func (srv *catalogService) AddProduct(ctx context.Context, input usecase.AddProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Brand == "" || input.Category == "" || input.Section == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, brand, category and section are required")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Brand:       input.Brand,
		Category:    input.Category,
		Section:     input.Section,
		Variant:     input.Variant,
		Color:       input.Color,
		Stock:       input.Stock,
	}

	for i, upload := range input.Images {
		key := path.Join("products", uuid.New().String()+path.Ext(upload.Filename))
		url, err := srv.imageStorage.Upload(ctx, key, upload.Data, upload.ContentType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload product image")
		}
		product.Images = append(product.Images, entity.ProductImage{
			URL:        url,
			StorageKey: key,
			Position:   i,
		})
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added",
		slog.Any("productID", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// UpdateProduct edits an existing catalog entry.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.Rating = input.Rating
	product.Brand = input.Brand
	product.Category = input.Category
	product.Section = input.Section
	product.Variant = input.Variant
	product.Color = input.Color
	product.Stock = input.Stock

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// ListProducts retrieves a page of products with optional filters.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter := repository.ProductFilter{
		Brand:    input.Brand,
		Category: input.Category,
		Section:  input.Section,
	}

	page, limit := normalizePage(input.Page, input.Limit, srv.pagination)

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	products, err := srv.productRepo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products:      products,
		CurrentPage:   page,
		TotalProducts: total,
		TotalPages:    totalPages(total, limit),
	}, nil
}

// GetProduct retrieves a single product with images and comments.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	return srv.findProduct(ctx, productID)
}

// LatestProducts retrieves the newest catalog entries for the home page.
func (srv *catalogService) LatestProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.Latest(ctx, latestProductCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	return products, nil
}

// TopBySection retrieves the featured products of a section.
func (srv *catalogService) TopBySection(ctx context.Context, section string) ([]*entity.Product, error) {
	if section == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("section is required")
	}

	products, err := srv.productRepo.TopBySection(ctx, section, topBySectionCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by section")
	}

	return products, nil
}

// AddComment appends a comment to a product, snapshotting the author's name
// and image at comment time.
func (srv *catalogService) AddComment(ctx context.Context, input usecase.AddCommentInput) error {
	if input.Comment == "" {
		return domainerrors.ErrValidationFailed.WithDetails("comment must not be empty")
	}

	author, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load comment author")
	}

	comment := entity.ProductComment{
		UserID:     author.ID,
		AuthorName: author.Username,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}
	if author.Image != nil {
		comment.AuthorImage = author.Image.URL
	}

	if err := srv.productRepo.AddComment(ctx, input.ProductID, comment); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to add product comment")
	}

	srv.log(ctx).Debug("Product comment added",
		slog.Any("productID", input.ProductID),
		slog.Any("userID", input.UserID),
	)

	return nil
}

func (srv *catalogService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product " + productID.String() + " does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
