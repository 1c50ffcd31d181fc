package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem puts a product into the cart, snapshotting price, name and first
// image as they are right now. Adding a product that is already in the cart
// replaces the quantity and refreshes the snapshot.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for cart")
	}

	item := entity.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
		Name:      product.Name,
		ImageURL:  product.FirstImageURL(),
		AddedAt:   time.Now(),
	}

	if err := srv.userRepo.UpsertCartItem(ctx, userID, item); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("userID", userID),
		slog.Any("productID", productID),
		slog.Int("quantity", quantity),
	)

	return srv.GetCart(ctx, userID)
}

// UpdateQuantity changes the quantity of an existing line item.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	if err := srv.userRepo.UpdateCartQuantity(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem removes a line item from the cart. Removing a product the cart
// does not contain is an error, matching the explicit-removal contract.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, item := range user.CartItems {
		if item.ProductID == productID {
			found = true

			break
		}
	}
	if !found {
		return nil, domainerrors.ErrCartItemNotFound
	}

	if err := srv.userRepo.RemoveCartItems(ctx, userID, []uuid.UUID{productID}); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// GetCart retrieves the cart with its snapshot total. The total reflects
// add-time prices, not current catalog prices.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	output := &usecase.CartOutput{Items: user.CartItems}
	for _, item := range user.CartItems {
		output.TotalPrice += item.Price * float64(item.Quantity)
	}

	return output, nil
}

func (srv *cartService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}
