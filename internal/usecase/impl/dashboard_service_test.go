package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service       usecase.DashboardUsecase
	dashboardRepo *mockRepo.MockDashboardRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	dashboardRepo := mockRepo.NewMockDashboardRepository(t)

	svc := NewDashboardService(DashboardServiceParams{
		DashboardRepo: dashboardRepo,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return dashboardServiceFixtures{
		service:       svc,
		dashboardRepo: dashboardRepo,
	}
}

func TestDashboardService_BrandStock(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	rows := []entity.BrandStock{
		{Brand: "Summit", TotalProducts: 12, TotalStock: 88},
		{Brand: "Harbor", TotalProducts: 4, TotalStock: 17},
	}

	fx.dashboardRepo.EXPECT().BrandStock(ctx).Return(rows, nil)

	got, err := fx.service.BrandStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestDashboardService_OrdersByStatus(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	rows := []entity.OrderStatusCount{
		{Status: entity.OrderStatusPending, TotalOrder: 7},
		{Status: entity.OrderStatusDelivered, TotalOrder: 31},
	}

	fx.dashboardRepo.EXPECT().OrdersByStatus(ctx).Return(rows, nil)

	got, err := fx.service.OrdersByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestDashboardService_TopSellingProducts_RepoError(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.dashboardRepo.EXPECT().
		TopSellingProducts(ctx).
		Return(nil, errors.New("replica unavailable"))

	got, err := fx.service.TopSellingProducts(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
}
