package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserUsecase serves canned accounts so handler tests can inspect the
// serialized response body.
type fakeUserUsecase struct {
	usecase.UserUsecase

	user *entity.User
}

func (f *fakeUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return &usecase.LoginOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         f.user,
	}, nil
}

func (f *fakeUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return f.user, nil
}

func credentialedUser() *entity.User {
	refresh := "stored-refresh-token-secret"
	fcm := "fcm-device-token-secret"

	return &entity.User{
		ID:           uuid.New(),
		Username:     "asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         entity.RoleUser,
		RefreshToken: &refresh,
		FCMToken:     &fcm,
	}
}

func newUserTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func assertNoCredentials(t *testing.T, body string) {
	t.Helper()

	assert.NotContains(t, body, "$2a$10$", "password hash must not be serialized")
	assert.NotContains(t, body, "stored-refresh-token-secret", "stored refresh token must not be serialized")
	assert.NotContains(t, body, "fcm-device-token-secret", "device token must not be serialized")
}

func TestUserHandler_Register_ExcludesCredentials(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{user: credentialedUser()})

	body := `{"username": "asha", "email": "asha@example.com", "password": "secret123"}`
	c, rec := newUserTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha@example.com")
	assertNoCredentials(t, rec.Body.String())
}

func TestUserHandler_Login_ExcludesCredentials(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{user: credentialedUser()})

	body := `{"email": "asha@example.com", "password": "secret123"}`
	c, rec := newUserTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	// The issued pair is the payload; the stored token stays private.
	assert.Contains(t, rec.Body.String(), "access-token")
	assertNoCredentials(t, rec.Body.String())
}

func TestUserHandler_GetProfile_ExcludesCredentials(t *testing.T) {
	h := NewUserHandler(&fakeUserUsecase{user: credentialedUser()})

	c, rec := newUserTestContext(t, http.MethodGet, "/auth/profile", "")
	c.Set("userID", uuid.New())

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "asha")
	assertNoCredentials(t, rec.Body.String())
}
