package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// DashboardRepository exposes the aggregation queries behind the admin
// dashboard. Every method is a pure read and may be served by a replica.
type DashboardRepository interface {
	// BrandStock groups products by brand with counts and total stock,
	// busiest brands first.
	BrandStock(ctx context.Context) ([]entity.BrandStock, error)

	// AveragePricePerCategory groups products by category with the mean
	// price, most expensive categories first.
	AveragePricePerCategory(ctx context.Context) ([]entity.CategoryPrice, error)

	// StockStatus counts products that are in stock vs. out of stock.
	StockStatus(ctx context.Context) ([]entity.StockStatusCount, error)

	// OrdersByStatus counts orders per lifecycle status.
	OrdersByStatus(ctx context.Context) ([]entity.OrderStatusCount, error)

	// OrdersByLocation counts orders per delivery location.
	OrdersByLocation(ctx context.Context) ([]entity.LocationOrderCount, error)

	// TopSellingProducts ranks products by total ordered quantity.
	TopSellingProducts(ctx context.Context) ([]entity.TopSellingProduct, error)
}
