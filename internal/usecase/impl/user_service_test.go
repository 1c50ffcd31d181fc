package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	imageStorage *mockService.MockImageStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	imageStorage := mockService.NewMockImageStorage(t)

	cfg := &config.Config{}
	cfg.Pagination = config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100}

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		ImageStorage: imageStorage,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		imageStorage: imageStorage,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "marisol",
		Email:    "marisol@example.com",
		Password: "correct-horse",
		Role:     "agent",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "marisol", "marisol@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "marisol", user.Username)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleAgent, user.Role)
}

func TestUserService_Register_UnknownRoleDefaultsToUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "marisol",
		Email:    "marisol@example.com",
		Password: "correct-horse",
		Role:     "superhero",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "marisol", "marisol@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "marisol"}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "marisol", "marisol@example.com").
		Return(existing, nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "marisol",
		Email:    "marisol@example.com",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username: "marisol",
	})
	require.Error(t, err)
	assert.Nil(t, user)
	fx.userRepo.AssertNotCalled(t, "FindByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_WithProfileImage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "marisol",
		Email:    "marisol@example.com",
		Password: "correct-horse",
		Image: &usecase.ImageUpload{
			Filename:    "avatar.png",
			ContentType: "image/png",
			Data:        []byte{0x89, 'P', 'N', 'G'},
		},
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "marisol", "marisol@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil)
	fx.imageStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), input.Image.Data, "image/png").
		Return("https://cdn.example.com/profiles/x.png", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, user.Image)
	assert.Equal(t, "https://cdn.example.com/profiles/x.png", user.Image.URL)
	assert.NotEmpty(t, user.Image.StorageKey)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "marisol@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "marisol@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("correct-horse", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, "user").
		Return("access-token", "refresh-token", nil)
	fx.userRepo.EXPECT().
		UpdateRefreshToken(ctx, userID, mock.AnythingOfType("*string")).
		Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "marisol@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	require.NotNil(t, out.User.RefreshToken)
	assert.Equal(t, "refresh-token", *out.User.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "marisol@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "marisol@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "marisol@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrUserNotFound.Message())
}

func TestUserService_AdminLogin_RejectsNonAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "marisol@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "marisol@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("correct-horse", "hashed").Return(true)

	out, err := fx.service.AdminLogin(ctx, usecase.LoginInput{
		Email:    "marisol@example.com",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrForbidden.Message())
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestUserService_AdminLogin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.User{
		ID:           adminID,
		Email:        "boss@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "boss@example.com").Return(admin, nil)
	fx.hasher.EXPECT().Check("correct-horse", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(adminID, "admin").
		Return("access-token", "refresh-token", nil)
	fx.userRepo.EXPECT().
		UpdateRefreshToken(ctx, adminID, mock.AnythingOfType("*string")).
		Return(nil)

	out, err := fx.service.AdminLogin(ctx, usecase.LoginInput{
		Email:    "boss@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_Logout_ClearsRefreshToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateRefreshToken(ctx, userID, (*string)(nil)).
		Return(nil)

	err := fx.service.Logout(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := "refresh-token"
	user := &entity.User{
		ID:           userID,
		Role:         entity.RoleUser,
		RefreshToken: &stored,
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Role: "user", Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, "user").
		Return("new-access", "new-refresh", nil)

	out, err := fx.service.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
}

func TestUserService_Refresh_StoredTokenMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := "a-newer-token"
	user := &entity.User{
		ID:           userID,
		Role:         entity.RoleUser,
		RefreshToken: &stored,
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Role: "user", Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	out, err := fx.service.Refresh(ctx, "refresh-token")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, domainerrors.ErrRefreshTokenInvalid.Message())
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	out, err := fx.service.Refresh(context.Background(), "garbage")
	require.Error(t, err)
	assert.Nil(t, out)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUserService_ListAccounts_RoleFilter(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	agentRole := entity.RoleAgent
	filter := repository.UserFilter{Role: &agentRole}
	users := []*entity.User{{ID: uuid.New(), Role: entity.RoleAgent}}

	fx.userRepo.EXPECT().Count(ctx, filter).Return(int64(1), nil)
	fx.userRepo.EXPECT().List(ctx, filter, 0, 5).Return(users, nil)

	out, err := fx.service.ListAccounts(ctx, usecase.ListAccountsInput{Role: "agent"})
	require.NoError(t, err)
	assert.Equal(t, users, out.Users)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, int64(1), out.TotalUsers)
	assert.Equal(t, 1, out.TotalPages)
}

func TestUserService_ListAccounts_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.ListAccounts(context.Background(), usecase.ListAccountsInput{Role: "wizard"})
	require.Error(t, err)
	assert.Nil(t, out)
	fx.userRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorContains(t, err, domainerrors.ErrUserNotFound.Message())
}
