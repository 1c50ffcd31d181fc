package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntQueryParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products?page=3&limit=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, 3, intQueryParam(c, "page"))
	assert.Equal(t, 0, intQueryParam(c, "limit"))
	assert.Equal(t, 0, intQueryParam(c, "missing"))
}

func TestUUIDPathParam(t *testing.T) {
	e := echo.New()

	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		got, err := uuidPathParam(c, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("malformed", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		_, err := uuidPathParam(c, "id")
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
		assert.Contains(t, appErr.Details(), "not-a-uuid")
	})
}

func TestParseUUID(t *testing.T) {
	_, err := parseUUID("nope", "agentId")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidIdentifier.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "agentId")
}
