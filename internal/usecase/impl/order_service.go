// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	guard      service.CheckoutGuard
	notifier   service.NotificationService
	qrService  service.QRCodeService
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Guard     service.CheckoutGuard
	Notifier  service.NotificationService
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		guard:      params.Guard,
		notifier:   params.Notifier,
		qrService:  params.QRService,
		pagination: params.Config.Pagination,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs the whole checkout: per-line conditional stock decrements,
// the order code sequence, cart reconciliation and the order insert, all in
// one transaction. Any failure rolls everything back, so stock, cart and
// counter stay consistent with the absence of the order.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		srv.log(ctx).Warn("Checkout validation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	// One in-flight checkout per user: a double submit must not decrement
	// stock twice while the first request is still running.
	acquired, err := srv.guard.Acquire(ctx, userID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire checkout guard")
	}
	if !acquired {
		return nil, domainerrors.ErrDuplicateCheckout
	}
	defer func() {
		if err := srv.guard.Release(ctx, userID.String()); err != nil {
			srv.log(ctx).Warn("Failed to release checkout guard", slog.Any("userID", userID), slog.Any("error", err))
		}
	}()

	var createdOrder *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()
		userRepo := repoFactory.UserRepo()
		counterRepo := repoFactory.CounterRepo()

		orderItems := make([]entity.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			product, err := productRepo.FindByID(ctx, item.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WithDetails("product " + item.ProductID.String() + " does not exist")
			}
			if err != nil {
				return errors.Wrap(err, "failed to load product during checkout")
			}

			// Availability check and mutation are one statement; under
			// concurrent checkouts the losers land here with zero rows.
			if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WithDetails("insufficient stock for " + product.Name)
				}

				return errors.Wrap(err, "failed to decrement stock during checkout")
			}

			orderItems = append(orderItems, entity.OrderItem{
				ProductID:       product.ID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
		}

		seq, err := counterRepo.Next(ctx, repository.OrderSequenceName)
		if err != nil {
			return errors.Wrap(err, "failed to advance order sequence")
		}

		order := &entity.Order{
			Code:          entity.FormatOrderCode(seq),
			UserID:        userID,
			Items:         orderItems,
			TotalPrice:    input.TotalPrice,
			Address:       input.Address,
			PinCode:       input.PinCode,
			Location:      input.Location,
			PaymentMethod: input.PaymentMethod,
			Status:        entity.OrderStatusPending,
		}

		// Ordered products leave the cart; everything else stays put.
		if err := userRepo.RemoveCartItems(ctx, userID, order.ProductIDs()); err != nil {
			return errors.Wrap(err, "failed to reconcile cart during checkout")
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Checkout transaction failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderCode", createdOrder.Code),
		slog.Any("userID", userID),
	)

	srv.publishEvent(ctx, &service.OrderEvent{
		Type:      service.OrderEventCreated,
		OrderID:   createdOrder.ID.String(),
		OrderCode: createdOrder.Code,
		UserID:    userID.String(),
		Status:    createdOrder.Status.String(),
	})

	return createdOrder, nil
}

// ListOrders retrieves a page of orders with optional status and location filters.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	filter := repository.OrderFilter{Location: input.Location}
	if input.Status != "" {
		status := entity.OrderStatus(strings.ToLower(strings.TrimSpace(input.Status)))
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidStatus.WithDetails("unknown status: " + input.Status)
		}
		filter.Status = status
	}

	page, limit := normalizePage(input.Page, input.Limit, srv.pagination)

	total, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	orders, err := srv.orderRepo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{
		Orders:      orders,
		CurrentPage: page,
		TotalOrders: total,
		TotalPages:  totalPages(total, limit),
	}, nil
}

// GetOrder retrieves a single order by ID.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return srv.findOrder(ctx, orderID)
}

// ListUserOrders retrieves every order placed by the given user.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAgentOrders retrieves every order assigned to the given agent.
func (srv *orderService) ListAgentOrders(ctx context.Context, agentID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent orders")
	}

	return orders, nil
}

// UpdateStatus moves the order to the given status. Requesting the status
// the order already carries is a no-op: nothing is written and no event
// goes out.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*usecase.UpdateStatusOutput, error) {
	newStatus := entity.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !newStatus.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails("unknown status: " + status)
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == newStatus {
		srv.log(ctx).Debug("Order already in requested status",
			slog.String("orderCode", order.Code),
			slog.String("status", newStatus.String()),
		)

		return &usecase.UpdateStatusOutput{Order: order, Changed: false}, nil
	}

	order.Status = newStatus
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderCode", order.Code),
		slog.String("status", newStatus.String()),
	)

	srv.publishEvent(ctx, &service.OrderEvent{
		Type:      service.OrderEventStatusChanged,
		OrderID:   order.ID.String(),
		OrderCode: order.Code,
		UserID:    order.UserID.String(),
		Status:    order.Status.String(),
	})

	return &usecase.UpdateStatusOutput{Order: order, Changed: true}, nil
}

// AssignAgent assigns a delivery agent to the order. The referenced account
// must carry the agent role; otherwise the order is left untouched.
func (srv *orderService) AssignAgent(ctx context.Context, orderID, agentID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	agent, err := srv.userRepo.FindByID(ctx, agentID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails("agent " + agentID.String() + " does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load agent")
	}

	if agent.Role != entity.RoleAgent {
		srv.log(ctx).Warn("Assignment rejected, account is not an agent",
			slog.Any("accountID", agentID),
			slog.String("role", agent.Role.String()),
		)

		return nil, domainerrors.ErrRoleMismatch.WithDetails("account " + agentID.String() + " is not a delivery agent")
	}

	order.AgentID = &agentID
	order.IsAssigned = true
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to assign agent")
	}

	srv.log(ctx).Info("Agent assigned",
		slog.String("orderCode", order.Code),
		slog.Any("agentID", agentID),
	)

	srv.publishEvent(ctx, &service.OrderEvent{
		Type:      service.OrderEventAssigned,
		OrderID:   order.ID.String(),
		OrderCode: order.Code,
		UserID:    order.UserID.String(),
		AgentID:   agentID.String(),
		Status:    order.Status.String(),
	})

	srv.notifyAgent(ctx, agent, order)

	return order, nil
}

// HandoffQR renders the PNG QR code an agent presents at delivery.
func (srv *orderService) HandoffQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateHandoffQR(order.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate handoff QR")
	}

	return png, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails("order " + orderID.String() + " does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// publishEvent publishes best-effort: a broken queue must never fail the
// request that already committed.
func (srv *orderService) publishEvent(ctx context.Context, event *service.OrderEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("orderCode", event.OrderCode),
			slog.Any("error", err),
		)
	}
}

// notifyAgent pushes the assignment to the agent's device, best-effort.
func (srv *orderService) notifyAgent(ctx context.Context, agent *entity.User, order *entity.Order) {
	if agent.FCMToken == nil || *agent.FCMToken == "" {
		return
	}

	err := srv.notifier.SendNotification(ctx, *agent.FCMToken,
		"New delivery assigned",
		"Order "+order.Code+" is ready for delivery to "+order.Location,
		map[string]string{
			"order_id":   order.ID.String(),
			"order_code": order.Code,
		},
	)
	if err != nil {
		srv.log(ctx).Warn("Failed to push assignment notification",
			slog.String("orderCode", order.Code),
			slog.Any("agentID", agent.ID),
			slog.Any("error", err),
		)
	}
}

func validatePlaceOrderInput(input usecase.PlaceOrderInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order must contain at least one product")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("order line is missing its product reference")
		}
		if item.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("order line quantity must be at least 1")
		}
	}
	if input.TotalPrice <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("total price must be positive")
	}
	if input.Address == "" || input.PinCode == "" || input.Location == "" || input.PaymentMethod == "" {
		return domainerrors.ErrValidationFailed.WithDetails("address, pin code, location and payment method are required")
	}

	return nil
}
