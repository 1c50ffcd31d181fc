package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// dashboardRepository implements the repository.DashboardRepository interface.
// Every query is a pure aggregation read, routed to a replica when one is
// configured.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

func (repo *dashboardRepository) readDB(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// BrandStock groups products by brand with counts and total stock.
func (repo *dashboardRepository) BrandStock(ctx context.Context) ([]entity.BrandStock, error) {
	var rows []entity.BrandStock

	if err := repo.readDB(ctx).
		Model(&model.ProductModel{}).
		Select("brand", "COUNT(*) AS total_products", "COALESCE(SUM(stock), 0) AS total_stock").
		Group("brand").
		Order("total_products DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate brand stock")
	}

	return rows, nil
}

// AveragePricePerCategory groups products by category with the mean price.
func (repo *dashboardRepository) AveragePricePerCategory(ctx context.Context) ([]entity.CategoryPrice, error) {
	var rows []entity.CategoryPrice

	if err := repo.readDB(ctx).
		Model(&model.ProductModel{}).
		Select("category", "AVG(price) AS average_price").
		Group("category").
		Order("average_price DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate category prices")
	}

	return rows, nil
}

// StockStatus counts products that are in stock vs. out of stock.
func (repo *dashboardRepository) StockStatus(ctx context.Context) ([]entity.StockStatusCount, error) {
	var rows []entity.StockStatusCount

	if err := repo.readDB(ctx).
		Model(&model.ProductModel{}).
		Select("CASE WHEN stock > 0 THEN 'in stock' ELSE 'out of stock' END AS status", "COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stock status")
	}

	return rows, nil
}

// OrdersByStatus counts orders per lifecycle status.
func (repo *dashboardRepository) OrdersByStatus(ctx context.Context) ([]entity.OrderStatusCount, error) {
	var rows []entity.OrderStatusCount

	if err := repo.readDB(ctx).
		Model(&model.OrderModel{}).
		Select("status", "COUNT(*) AS total_order").
		Group("status").
		Order("total_order DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders by status")
	}

	return rows, nil
}

// OrdersByLocation counts orders per delivery location.
func (repo *dashboardRepository) OrdersByLocation(ctx context.Context) ([]entity.LocationOrderCount, error) {
	var rows []entity.LocationOrderCount

	if err := repo.readDB(ctx).
		Model(&model.OrderModel{}).
		Select("location", "COUNT(*) AS total_orders").
		Group("location").
		Order("total_orders DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders by location")
	}

	return rows, nil
}

// TopSellingProducts ranks products by total ordered quantity, joining the
// order lines against the catalog for display names.
func (repo *dashboardRepository) TopSellingProducts(ctx context.Context) ([]entity.TopSellingProduct, error) {
	var rows []entity.TopSellingProduct

	if err := repo.readDB(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_items.product_id", "products.name AS product_name", "SUM(order_items.quantity) AS total_sold").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("order_items.product_id, products.name").
		Order("total_sold DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top selling products")
	}

	return rows, nil
}
