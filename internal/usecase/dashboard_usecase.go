package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// DashboardUsecase exposes the admin dashboard aggregations. Each method is
// a single grouped read, served from a replica when one is configured.
type DashboardUsecase interface {
	BrandStock(ctx context.Context) ([]entity.BrandStock, error)
	AveragePricePerCategory(ctx context.Context) ([]entity.CategoryPrice, error)
	StockStatus(ctx context.Context) ([]entity.StockStatusCount, error)
	OrdersByStatus(ctx context.Context) ([]entity.OrderStatusCount, error)
	OrdersByLocation(ctx context.Context) ([]entity.LocationOrderCount, error)
	TopSellingProducts(ctx context.Context) ([]entity.TopSellingProduct, error)
}
