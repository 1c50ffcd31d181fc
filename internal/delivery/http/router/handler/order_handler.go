package handler

import (
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type placeOrderRequest struct {
	Items         []orderItemRequest `json:"products" validate:"required,min=1,dive"`
	TotalPrice    float64            `json:"totalPrice" validate:"required,gt=0"`
	Address       string             `json:"address" validate:"required"`
	PinCode       string             `json:"pinCode" validate:"required"`
	Location      string             `json:"location" validate:"required"`
	PaymentMethod string             `json:"paymentMethod" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignAgentRequest struct {
	AgentID string `json:"agentId" validate:"required,uuid"`
}

// orderCreatedResponse is the checkout response body. Assignment happens
// later in the order's life, so the agent fields stay out of it.
type orderCreatedResponse struct {
	ID            uuid.UUID          `json:"ID"`
	Code          string             `json:"Code"`
	UserID        uuid.UUID          `json:"UserID"`
	Items         []entity.OrderItem `json:"Items"`
	TotalPrice    float64            `json:"TotalPrice"`
	Address       string             `json:"Address"`
	PinCode       string             `json:"PinCode"`
	Location      string             `json:"Location"`
	PaymentMethod string             `json:"PaymentMethod"`
	Status        entity.OrderStatus `json:"Status"`
	CreatedAt     time.Time          `json:"CreatedAt"`
}

func newOrderCreatedResponse(order *entity.Order) orderCreatedResponse {
	return orderCreatedResponse{
		ID:            order.ID,
		Code:          order.Code,
		UserID:        order.UserID,
		Items:         order.Items,
		TotalPrice:    order.TotalPrice,
		Address:       order.Address,
		PinCode:       order.PinCode,
		Location:      order.Location,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
	}
}

// PlaceOrder handles the checkout request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.PlaceOrderInput{
		TotalPrice:    req.TotalPrice,
		Address:       req.Address,
		PinCode:       req.PinCode,
		Location:      req.Location,
		PaymentMethod: req.PaymentMethod,
	}
	for _, item := range req.Items {
		productID, err := parseUUID(item.ProductID, "productId")
		if err != nil {
			return errors.WithStack(err)
		}
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderCreatedResponse(order), "Order placed successfully")
}

// ListOrders handles the admin order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	output, err := h.uc.ListOrders(c.Request().Context(), usecase.ListOrdersInput{
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
		Page:     intQueryParam(c, "page"),
		Limit:    intQueryParam(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// GetOrder handles the single order read.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListMyOrders handles the shopper order history request.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListAssignedOrders handles the delivery-agent workload request.
func (h *OrderHandler) ListAssignedOrders(c echo.Context) error {
	agentID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListAgentOrders(c.Request().Context(), agentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the order status transition request.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Order status updated"
	if !output.Changed {
		message = "Order already has this status"
	}

	return response.Success(c, http.StatusOK, output.Order, message)
}

// AssignAgent handles the delivery-agent assignment request.
func (h *OrderHandler) AssignAgent(c echo.Context) error {
	orderID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req assignAgentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	agentID, err := parseUUID(req.AgentID, "agentId")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.AssignAgent(c.Request().Context(), orderID, agentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Agent assigned successfully")
}

// HandoffQR renders the PNG QR code presented at delivery.
func (h *OrderHandler) HandoffQR(c echo.Context) error {
	orderID, err := uuidPathParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.HandoffQR(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
