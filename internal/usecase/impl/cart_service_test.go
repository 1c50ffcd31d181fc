package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCartService(CartServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return cartServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:    productID,
		Name:  "Trail Shoe",
		Price: 99.99,
		Images: []entity.ProductImage{
			{URL: "https://cdn.example.com/shoe-front.png", Position: 0},
			{URL: "https://cdn.example.com/shoe-side.png", Position: 1},
		},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.userRepo.EXPECT().
		UpsertCartItem(ctx, userID, mock.AnythingOfType("entity.CartItem")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, item entity.CartItem) error {
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 3, item.Quantity)
			assert.Equal(t, 99.99, item.Price)
			assert.Equal(t, "Trail Shoe", item.Name)
			assert.Equal(t, "https://cdn.example.com/shoe-front.png", item.ImageURL)

			return nil
		})
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleUser,
		CartItems: []entity.CartItem{
			{ProductID: productID, Quantity: 3, Price: 99.99, Name: "Trail Shoe"},
		},
	}, nil)

	out, err := fx.service.AddItem(ctx, userID, productID, 3)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.InDelta(t, 299.97, out.TotalPrice, 0.001)
}

func TestCartService_AddItem_ZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	out, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)
	require.Error(t, err)
	assert.Nil(t, out)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	out, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrProductNotFound.Message())
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.userRepo.EXPECT().UpdateCartQuantity(ctx, userID, productID, 5).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleUser,
		CartItems: []entity.CartItem{
			{ProductID: productID, Quantity: 5, Price: 10, Name: "Mug"},
		},
	}, nil)

	out, err := fx.service.UpdateQuantity(ctx, userID, productID, 5)
	require.NoError(t, err)
	assert.InDelta(t, 50, out.TotalPrice, 0.001)
}

func TestCartService_UpdateQuantity_ItemNotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateCartQuantity(ctx, userID, productID, 2).
		Return(repository.ErrCartItemNotFound)

	out, err := fx.service.UpdateQuantity(ctx, userID, productID, 2)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrCartItemNotFound.Message())
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	otherProductID := uuid.New()

	userWithItem := &entity.User{
		ID:   userID,
		Role: entity.RoleUser,
		CartItems: []entity.CartItem{
			{ProductID: productID, Quantity: 1, Price: 10, Name: "Mug"},
			{ProductID: otherProductID, Quantity: 2, Price: 5, Name: "Coaster"},
		},
	}
	userAfterRemoval := &entity.User{
		ID:   userID,
		Role: entity.RoleUser,
		CartItems: []entity.CartItem{
			{ProductID: otherProductID, Quantity: 2, Price: 5, Name: "Coaster"},
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(userWithItem, nil).Once()
	fx.userRepo.EXPECT().
		RemoveCartItems(ctx, userID, []uuid.UUID{productID}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(userAfterRemoval, nil).Once()

	out, err := fx.service.RemoveItem(ctx, userID, productID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, otherProductID, out.Items[0].ProductID)
	assert.InDelta(t, 10, out.TotalPrice, 0.001)
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:        userID,
		Role:      entity.RoleUser,
		CartItems: []entity.CartItem{},
	}, nil)

	out, err := fx.service.RemoveItem(ctx, userID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrCartItemNotFound.Message())
	fx.userRepo.AssertNotCalled(t, "RemoveCartItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_GetCart_TotalUsesSnapshotPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:   userID,
		Role: entity.RoleUser,
		CartItems: []entity.CartItem{
			{ProductID: uuid.New(), Quantity: 2, Price: 12.5, AddedAt: time.Now()},
			{ProductID: uuid.New(), Quantity: 1, Price: 7.25, AddedAt: time.Now()},
		},
	}, nil)

	out, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.InDelta(t, 32.25, out.TotalPrice, 0.001)
}

func TestCartService_GetCart_UserNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.GetCart(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrUserNotFound.Message())
}
