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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	order := toOrderDomain(&orderM)
	if err := repo.fillProductNames(ctx, []*entity.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// Update persists status and assignment changes of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":      order.Status.String(),
			"agent_id":    order.AgentID,
			"is_assigned": order.IsAssigned,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// List retrieves a page of orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter, offset, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := applyOrderFilter(repo.db.WithContext(ctx), filter).
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := toOrderDomains(orderModels)
	if err := repo.fillProductNames(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Count returns the number of orders matching the filter.
func (repo *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64

	if err := applyOrderFilter(repo.db.WithContext(ctx), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// ListByUser retrieves every order placed by the given user, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := toOrderDomains(orderModels)
	if err := repo.fillProductNames(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// ListByAgent retrieves every order assigned to the given agent, newest first.
func (repo *orderRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by agent")
	}

	orders := toOrderDomains(orderModels)
	if err := repo.fillProductNames(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// fillProductNames resolves the product names referenced by the order lines
// in one query. Deleted products simply leave the name empty.
func (repo *orderRepository) fillProductNames(ctx context.Context, orders []*entity.Order) error {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, order := range orders {
		for _, id := range order.ProductIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	type productName struct {
		ID   uuid.UUID
		Name string
	}
	var rows []productName
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to resolve product names")
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}

	for _, order := range orders {
		for i := range order.Items {
			order.Items[i].ProductName = names[order.Items[i].ProductID]
		}
	}

	return nil
}

func applyOrderFilter(db *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	query := db.Model(&model.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	return query
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		Code:          data.Code,
		UserID:        data.UserID,
		TotalPrice:    data.TotalPrice,
		Address:       data.Address,
		PinCode:       data.PinCode,
		Location:      data.Location,
		PaymentMethod: data.PaymentMethod,
		Status:        entity.OrderStatus(data.Status),
		AgentID:       data.AgentID,
		IsAssigned:    data.IsAssigned,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	for _, itemM := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:       itemM.ProductID,
			Quantity:        itemM.Quantity,
			PriceAtPurchase: itemM.PriceAtPurchase,
		})
	}

	return order
}

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		Code:          data.Code,
		UserID:        data.UserID,
		TotalPrice:    data.TotalPrice,
		Address:       data.Address,
		PinCode:       data.PinCode,
		Location:      data.Location,
		PaymentMethod: data.PaymentMethod,
		Status:        data.Status.String(),
		AgentID:       data.AgentID,
		IsAssigned:    data.IsAssigned,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			OrderID:         data.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return orderM
}
