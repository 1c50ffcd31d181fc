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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockService.MockEventPublisher
	guard     *mockService.MockCheckoutGuard
	notifier  *mockService.MockNotificationService
	qrService *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	guard := mockService.NewMockCheckoutGuard(t)
	notifier := mockService.NewMockNotificationService(t)
	qrService := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{}
	cfg.Pagination = config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100}

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Publisher: publisher,
		Guard:     guard,
		Notifier:  notifier,
		QRService: qrService,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		publisher: publisher,
		guard:     guard,
		notifier:  notifier,
		qrService: qrService,
	}
}

// txFixtures binds per-transaction repository mocks to a factory, so tests
// can drive the checkout path through Execute.
type txFixtures struct {
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	counterRepo *mockRepo.MockCounterRepository
}

func createTxFixtures(t *testing.T) txFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	counterRepo := mockRepo.NewMockCounterRepository(t)

	factory.EXPECT().ProductRepo().Return(productRepo).Maybe()
	factory.EXPECT().OrderRepo().Return(orderRepo).Maybe()
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().CounterRepo().Return(counterRepo).Maybe()

	return txFixtures{
		factory:     factory,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
	}
}

// runTransaction wires the transaction manager mock to invoke the checkout
// body with the given factory, mirroring a real commit/rollback cycle.
func runTransaction(fx orderServiceFixtures, tx txFixtures, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
}

func validPlaceOrderInput(productID uuid.UUID) usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		Items:         []usecase.OrderItemInput{{ProductID: productID, Quantity: 2}},
		TotalPrice:    199.98,
		Address:       "1 Market Street",
		PinCode:       "560001",
		Location:      "Bangalore",
		PaymentMethod: "cod",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createTxFixtures(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:    productID,
		Name:  "Trail Shoe",
		Price: 99.99,
		Stock: 10,
	}

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(true, nil)
	fx.guard.EXPECT().Release(ctx, userID.String()).Return(nil)
	runTransaction(fx, tx, ctx)

	tx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	tx.productRepo.EXPECT().DecrementStock(ctx, productID, 2).Return(nil)
	tx.counterRepo.EXPECT().Next(ctx, repository.OrderSequenceName).Return(int64(7), nil)
	tx.userRepo.EXPECT().RemoveCartItems(ctx, userID, []uuid.UUID{productID}).Return(nil)
	tx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(productID))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ORD0007", order.Code)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 99.99, order.Items[0].PriceAtPurchase)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createTxFixtures(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{
		ID:    productID,
		Name:  "Trail Shoe",
		Price: 99.99,
		Stock: 1,
	}

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(true, nil)
	fx.guard.EXPECT().Release(ctx, userID.String()).Return(nil)
	runTransaction(fx, tx, ctx)

	tx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	tx.productRepo.EXPECT().
		DecrementStock(ctx, productID, 2).
		Return(repository.ErrInsufficientStock)

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(productID))
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorContains(t, err, domainerrors.ErrInsufficientStock.Message())
	// Everything after the failed decrement must not run: no counter, no
	// cart reconciliation, no order insert, no event.
	tx.counterRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	tx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ProductNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createTxFixtures(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(true, nil)
	fx.guard.EXPECT().Release(ctx, userID.String()).Return(nil)
	runTransaction(fx, tx, ctx)

	tx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(productID))
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorContains(t, err, domainerrors.ErrProductNotFound.Message())
}

func TestOrderService_PlaceOrder_DuplicateCheckout(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(false, nil)

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(uuid.New()))
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorContains(t, err, domainerrors.ErrDuplicateCheckout.Message())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_GuardReleasedOnFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(true, nil)
	fx.guard.EXPECT().Release(ctx, userID.String()).Return(nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(uuid.New()))
	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_PlaceOrder_ValidationFailures(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*usecase.PlaceOrderInput)
		details string
	}{
		{
			name:    "no items",
			mutate:  func(in *usecase.PlaceOrderInput) { in.Items = nil },
			details: "at least one product",
		},
		{
			name:    "nil product reference",
			mutate:  func(in *usecase.PlaceOrderInput) { in.Items[0].ProductID = uuid.Nil },
			details: "product reference",
		},
		{
			name:    "zero quantity",
			mutate:  func(in *usecase.PlaceOrderInput) { in.Items[0].Quantity = 0 },
			details: "quantity",
		},
		{
			name:    "non-positive total",
			mutate:  func(in *usecase.PlaceOrderInput) { in.TotalPrice = 0 },
			details: "total price",
		},
		{
			name:    "missing address",
			mutate:  func(in *usecase.PlaceOrderInput) { in.Address = "" },
			details: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPlaceOrderInput(productID)
			tt.mutate(&input)

			order, err := fx.service.PlaceOrder(ctx, userID, input)
			require.Error(t, err)
			assert.Nil(t, order)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.details)
		})
	}

	fx.guard.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	tx := createTxFixtures(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Mug", Price: 9.5, Stock: 3}

	fx.guard.EXPECT().Acquire(ctx, userID.String()).Return(true, nil)
	fx.guard.EXPECT().Release(ctx, userID.String()).Return(nil)
	runTransaction(fx, tx, ctx)

	tx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	tx.productRepo.EXPECT().DecrementStock(ctx, productID, 2).Return(nil)
	tx.counterRepo.EXPECT().Next(ctx, repository.OrderSequenceName).Return(int64(123), nil)
	tx.userRepo.EXPECT().RemoveCartItems(ctx, userID, []uuid.UUID{productID}).Return(nil)
	tx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	order, err := fx.service.PlaceOrder(ctx, userID, validPlaceOrderInput(productID))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ORD0123", order.Code)
}

func TestOrderService_ListOrders_PagesAndFilters(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	filter := repository.OrderFilter{Status: entity.OrderStatusPending, Location: "Chennai"}
	orders := []*entity.Order{{ID: uuid.New(), Code: "ORD0001"}}

	fx.orderRepo.EXPECT().Count(ctx, filter).Return(int64(11), nil)
	fx.orderRepo.EXPECT().List(ctx, filter, 5, 5).Return(orders, nil)

	out, err := fx.service.ListOrders(ctx, usecase.ListOrdersInput{
		Status:   "Pending",
		Location: "Chennai",
		Page:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, orders, out.Orders)
	assert.Equal(t, 2, out.CurrentPage)
	assert.Equal(t, int64(11), out.TotalOrders)
	assert.Equal(t, 3, out.TotalPages)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	out, err := fx.service.ListOrders(context.Background(), usecase.ListOrdersInput{Status: "teleported"})
	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_Changed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Code:   "ORD0042",
		UserID: uuid.New(),
		Status: entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	out, err := fx.service.UpdateStatus(ctx, orderID, " Processing ")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, entity.OrderStatusProcessing, out.Order.Status)
}

func TestOrderService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Code:   "ORD0042",
		UserID: uuid.New(),
		Status: entity.OrderStatusProcessing,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	out, err := fx.service.UpdateStatus(ctx, orderID, "processing")
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, entity.OrderStatusProcessing, out.Order.Status)
	fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	out, err := fx.service.UpdateStatus(context.Background(), uuid.New(), "lost")
	require.Error(t, err)
	assert.Nil(t, out)
	fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	out, err := fx.service.UpdateStatus(ctx, orderID, "delivered")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrOrderNotFound.Message())
}

func TestOrderService_AssignAgent_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	agentID := uuid.New()
	fcmToken := "agent-device-token"
	order := &entity.Order{
		ID:       orderID,
		Code:     "ORD0042",
		UserID:   uuid.New(),
		Location: "Mumbai",
		Status:   entity.OrderStatusProcessing,
	}
	agent := &entity.User{
		ID:       agentID,
		Username: "swift-rider",
		Role:     entity.RoleAgent,
		FCMToken: &fcmToken,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, agentID).Return(agent, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)
	fx.notifier.EXPECT().
		SendNotification(ctx, fcmToken, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	updated, err := fx.service.AssignAgent(ctx, orderID, agentID)
	require.NoError(t, err)
	require.NotNil(t, updated.AgentID)
	assert.Equal(t, agentID, *updated.AgentID)
	assert.True(t, updated.IsAssigned)
}

func TestOrderService_AssignAgent_RoleMismatch(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	accountID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Code:   "ORD0042",
		UserID: uuid.New(),
		Status: entity.OrderStatusProcessing,
	}
	shopper := &entity.User{ID: accountID, Role: entity.RoleUser}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, accountID).Return(shopper, nil)

	updated, err := fx.service.AssignAgent(ctx, orderID, accountID)
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorContains(t, err, domainerrors.ErrRoleMismatch.Message())
	// Rejected assignment leaves the order untouched.
	assert.Nil(t, order.AgentID)
	assert.False(t, order.IsAssigned)
	fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.notifier.AssertNotCalled(t, "SendNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_AssignAgent_AgentNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	agentID := uuid.New()
	order := &entity.Order{ID: orderID, Code: "ORD0042", UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, agentID).Return(nil, repository.ErrUserNotFound)

	updated, err := fx.service.AssignAgent(ctx, orderID, agentID)
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorContains(t, err, domainerrors.ErrUserNotFound.Message())
}

func TestOrderService_AssignAgent_NoTokenSkipsNotification(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	agentID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		Code:   "ORD0042",
		UserID: uuid.New(),
		Status: entity.OrderStatusProcessing,
	}
	agent := &entity.User{ID: agentID, Role: entity.RoleAgent}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, agentID).Return(agent, nil)
	fx.orderRepo.EXPECT().Update(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.AssignAgent(ctx, orderID, agentID)
	require.NoError(t, err)
	assert.True(t, updated.IsAssigned)
	fx.notifier.AssertNotCalled(t, "SendNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), Code: "ORD0009", UserID: userID}}

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListUserOrders(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_ListAgentOrders_Empty(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	agentID := uuid.New()

	fx.orderRepo.EXPECT().ListByAgent(ctx, agentID).Return([]*entity.Order{}, nil)

	got, err := fx.service.ListAgentOrders(ctx, agentID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderService_HandoffQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, Code: "ORD0042"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.qrService.EXPECT().GenerateHandoffQR("ORD0042").Return(png, nil)

	got, err := fx.service.HandoffQR(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
