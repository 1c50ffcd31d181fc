package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface. It is a thin
// pass-through: the aggregations live in single grouped queries behind the
// repository.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	DashboardRepo repository.DashboardRepository
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo: params.DashboardRepo,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) BrandStock(ctx context.Context) ([]entity.BrandStock, error) {
	rows, err := srv.dashboardRepo.BrandStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load brand stock report")
	}

	return rows, nil
}

func (srv *dashboardService) AveragePricePerCategory(ctx context.Context) ([]entity.CategoryPrice, error) {
	rows, err := srv.dashboardRepo.AveragePricePerCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category price report")
	}

	return rows, nil
}

func (srv *dashboardService) StockStatus(ctx context.Context) ([]entity.StockStatusCount, error) {
	rows, err := srv.dashboardRepo.StockStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stock status report")
	}

	return rows, nil
}

func (srv *dashboardService) OrdersByStatus(ctx context.Context) ([]entity.OrderStatusCount, error) {
	rows, err := srv.dashboardRepo.OrdersByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders-by-status report")
	}

	return rows, nil
}

func (srv *dashboardService) OrdersByLocation(ctx context.Context) ([]entity.LocationOrderCount, error) {
	rows, err := srv.dashboardRepo.OrdersByLocation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders-by-location report")
	}

	return rows, nil
}

func (srv *dashboardService) TopSellingProducts(ctx context.Context) ([]entity.TopSellingProduct, error) {
	rows, err := srv.dashboardRepo.TopSellingProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top selling report")
	}

	return rows, nil
}
