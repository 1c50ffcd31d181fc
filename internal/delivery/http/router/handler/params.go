package handler

import (
	"strconv"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// intQueryParam parses an integer query parameter, zero when absent or
// malformed. Pagination defaults then apply downstream.
func intQueryParam(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return val
}

// parseUUID parses a UUID carried in a request body field.
func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidIdentifier.WithDetails("invalid " + name + ": " + raw)
	}

	return id, nil
}

// uuidPathParam parses a UUID path parameter, rejecting malformed values
// before any repository lookup happens.
func uuidPathParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidIdentifier.WithDetails("invalid " + name + ": " + c.Param(name))
	}

	return id, nil
}
