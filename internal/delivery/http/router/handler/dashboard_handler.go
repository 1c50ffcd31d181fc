package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the admin dashboard handlers.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// BrandStock reports product and stock counts per brand.
func (h *DashboardHandler) BrandStock(c echo.Context) error {
	rows, err := h.uc.BrandStock(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Brand stock retrieved successfully")
}

// AveragePricePerCategory reports the mean product price per category.
func (h *DashboardHandler) AveragePricePerCategory(c echo.Context) error {
	rows, err := h.uc.AveragePricePerCategory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Category prices retrieved successfully")
}

// StockStatus reports in-stock versus out-of-stock counts.
func (h *DashboardHandler) StockStatus(c echo.Context) error {
	rows, err := h.uc.StockStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Stock status retrieved successfully")
}

// OrdersByStatus reports order counts per status.
func (h *DashboardHandler) OrdersByStatus(c echo.Context) error {
	rows, err := h.uc.OrdersByStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Order status counts retrieved successfully")
}

// OrdersByLocation reports order counts per delivery location.
func (h *DashboardHandler) OrdersByLocation(c echo.Context) error {
	rows, err := h.uc.OrdersByLocation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Order location counts retrieved successfully")
}

// TopSellingProducts reports products ranked by total ordered quantity.
func (h *DashboardHandler) TopSellingProducts(c echo.Context) error {
	rows, err := h.uc.TopSellingProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "Top selling products retrieved successfully")
}
