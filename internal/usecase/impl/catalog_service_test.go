package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
	imageStorage *mockService.MockImageStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	imageStorage := mockService.NewMockImageStorage(t)

	cfg := &config.Config{}
	cfg.Pagination = config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100}

	svc := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		UserRepo:     userRepo,
		ImageStorage: imageStorage,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return catalogServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		userRepo:     userRepo,
		imageStorage: imageStorage,
	}
}

func validAddProductInput() usecase.AddProductInput {
	return usecase.AddProductInput{
		Name:     "Trail Shoe",
		Price:    99.99,
		Brand:    "Summit",
		Category: "shoes",
		Section:  "men",
		Stock:    10,
	}
}

func TestCatalogService_AddProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.AddProduct(ctx, validAddProductInput())
	require.NoError(t, err)
	assert.Equal(t, "Trail Shoe", product.Name)
	assert.Equal(t, 10, product.Stock)
	assert.Empty(t, product.Images)
}

func TestCatalogService_AddProduct_UploadsImagesInOrder(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := validAddProductInput()
	input.Images = []usecase.ImageUpload{
		{Filename: "front.png", ContentType: "image/png", Data: []byte{1}},
		{Filename: "side.png", ContentType: "image/png", Data: []byte{2}},
	}

	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), []byte{1}, "image/png").
		Return("https://cdn.example.com/a.png", nil)
	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), []byte{2}, "image/png").
		Return("https://cdn.example.com/b.png", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.AddProduct(ctx, input)
	require.NoError(t, err)
	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].Position)
	assert.Equal(t, "https://cdn.example.com/a.png", product.Images[0].URL)
	assert.Equal(t, 1, product.Images[1].Position)
	assert.Equal(t, "https://cdn.example.com/b.png", product.Images[1].URL)
}

func TestCatalogService_AddProduct_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	tests := []struct {
		name   string
		mutate func(*usecase.AddProductInput)
	}{
		{"missing name", func(in *usecase.AddProductInput) { in.Name = "" }},
		{"missing brand", func(in *usecase.AddProductInput) { in.Brand = "" }},
		{"zero price", func(in *usecase.AddProductInput) { in.Price = 0 }},
		{"negative stock", func(in *usecase.AddProductInput) { in.Stock = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAddProductInput()
			tt.mutate(&input)

			product, err := fx.service.AddProduct(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, product)
		})
	}

	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	existing := &entity.Product{
		ID:    productID,
		Name:  "Trail Shoe",
		Price: 99.99,
		Stock: 10,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, usecase.UpdateProductInput{
		Name:     "Trail Shoe v2",
		Price:    109.99,
		Rating:   4.5,
		Brand:    "Summit",
		Category: "shoes",
		Section:  "men",
		Stock:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Trail Shoe v2", product.Name)
	assert.Equal(t, 109.99, product.Price)
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, 8, product.Stock)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, productID, usecase.UpdateProductInput{Price: 1, Stock: 0})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorContains(t, err, domainerrors.ErrProductNotFound.Message())
}

func TestCatalogService_ListProducts_DefaultsPage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	filter := repository.ProductFilter{Brand: "Summit"}
	products := []*entity.Product{{ID: uuid.New(), Name: "Trail Shoe"}}

	fx.productRepo.EXPECT().Count(ctx, filter).Return(int64(6), nil)
	fx.productRepo.EXPECT().List(ctx, filter, 0, 5).Return(products, nil)

	out, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{Brand: "Summit"})
	require.NoError(t, err)
	assert.Equal(t, products, out.Products)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, int64(6), out.TotalProducts)
	assert.Equal(t, 2, out.TotalPages)
}

func TestCatalogService_LatestProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.productRepo.EXPECT().Latest(ctx, latestProductCount).Return(products, nil)

	got, err := fx.service.LatestProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_TopBySection(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Section: "women"}}

	fx.productRepo.EXPECT().TopBySection(ctx, "women", topBySectionCount).Return(products, nil)

	got, err := fx.service.TopBySection(ctx, "women")
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_TopBySection_MissingSection(t *testing.T) {
	fx := createTestCatalogService(t)

	got, err := fx.service.TopBySection(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, got)
	fx.productRepo.AssertNotCalled(t, "TopBySection", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_AddComment_SnapshotsAuthor(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()
	author := &entity.User{
		ID:       userID,
		Username: "marisol",
		Role:     entity.RoleUser,
		Image:    &entity.Image{URL: "https://cdn.example.com/marisol.png"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(author, nil)
	fx.productRepo.EXPECT().
		AddComment(ctx, productID, mock.AnythingOfType("entity.ProductComment")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, comment entity.ProductComment) error {
			assert.Equal(t, userID, comment.UserID)
			assert.Equal(t, "marisol", comment.AuthorName)
			assert.Equal(t, "https://cdn.example.com/marisol.png", comment.AuthorImage)
			assert.Equal(t, "great fit", comment.Comment)

			return nil
		})

	err := fx.service.AddComment(ctx, usecase.AddCommentInput{
		ProductID: productID,
		UserID:    userID,
		Comment:   "great fit",
	})
	require.NoError(t, err)
}

func TestCatalogService_AddComment_EmptyComment(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.AddComment(context.Background(), usecase.AddCommentInput{
		ProductID: uuid.New(),
		UserID:    uuid.New(),
	})
	require.Error(t, err)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCatalogService_AddComment_ProductGone(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "marisol"}, nil)
	fx.productRepo.EXPECT().
		AddComment(ctx, productID, mock.AnythingOfType("entity.ProductComment")).
		Return(repository.ErrProductNotFound)

	err := fx.service.AddComment(ctx, usecase.AddCommentInput{
		ProductID: productID,
		UserID:    userID,
		Comment:   "great fit",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrProductNotFound.Message())
}
