package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderUsecase records the last PlaceOrder call so handler tests can
// assert the decoded input without the full mock machinery.
type fakeOrderUsecase struct {
	usecase.OrderUsecase

	placedUserID uuid.UUID
	placedInput  usecase.PlaceOrderInput
	placeErr     error
}

func (f *fakeOrderUsecase) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	f.placedUserID = userID
	f.placedInput = input
	if f.placeErr != nil {
		return nil, f.placeErr
	}

	return &entity.Order{ID: uuid.New(), Code: "ORD0007", Status: entity.OrderStatusPending}, nil
}

func newOrderTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_PlaceOrder_Success(t *testing.T) {
	fake := &fakeOrderUsecase{}
	h := NewOrderHandler(fake)

	userID := uuid.New()
	productID := uuid.New()
	body := `{
		"products": [{"productId": "` + productID.String() + `", "quantity": 2}],
		"totalPrice": 59.98,
		"address": "221B Baker Street",
		"pinCode": "560001",
		"location": "Bangalore",
		"paymentMethod": "cod"
	}`

	c, rec := newOrderTestContext(t, body)
	c.Set("userID", userID)

	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORD0007")
	// Assignment starts later; the checkout body carries no agent fields.
	assert.NotContains(t, rec.Body.String(), "AgentID")
	assert.NotContains(t, rec.Body.String(), "IsAssigned")
	assert.Equal(t, userID, fake.placedUserID)
	require.Len(t, fake.placedInput.Items, 1)
	assert.Equal(t, productID, fake.placedInput.Items[0].ProductID)
	assert.Equal(t, 2, fake.placedInput.Items[0].Quantity)
	assert.InDelta(t, 59.98, fake.placedInput.TotalPrice, 0.001)
	assert.Equal(t, "Bangalore", fake.placedInput.Location)
}

func TestOrderHandler_PlaceOrder_MissingFields(t *testing.T) {
	fake := &fakeOrderUsecase{}
	h := NewOrderHandler(fake)

	c, _ := newOrderTestContext(t, `{"products": []}`)
	c.Set("userID", uuid.New())

	err := h.PlaceOrder(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.True(t, fake.placedUserID == uuid.Nil, "usecase must not run on invalid input")
}

func TestOrderHandler_PlaceOrder_MalformedProductID(t *testing.T) {
	fake := &fakeOrderUsecase{}
	h := NewOrderHandler(fake)

	body := `{
		"products": [{"productId": "nope", "quantity": 1}],
		"totalPrice": 10,
		"address": "a",
		"pinCode": "1",
		"location": "x",
		"paymentMethod": "cod"
	}`

	c, _ := newOrderTestContext(t, body)
	c.Set("userID", uuid.New())

	err := h.PlaceOrder(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderHandler_PlaceOrder_MissingIdentity(t *testing.T) {
	fake := &fakeOrderUsecase{}
	h := NewOrderHandler(fake)

	c, rec := newOrderTestContext(t, `{}`)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
