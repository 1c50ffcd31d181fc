package impl

import (
	"context"
	"log/slog"
	"path"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	imageStorage service.ImageStorage
	pagination   config.PaginationConfig
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ImageStorage service.ImageStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		imageStorage: params.ImageStorage,
		pagination:   params.Config.Pagination,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. An unrecognized role silently becomes the
// user role; the cart only exists for user accounts.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username, email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleFromString(input.Role),
	}

	if input.Image != nil {
		image, err := srv.uploadProfileImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		newUser.Image = image
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed",
		slog.Any("userID", newUser.ID),
		slog.String("role", newUser.Role.String()),
	)

	return newUser, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is persisted so it can be invalidated by logout.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return srv.login(ctx, input, nil)
}

// AdminLogin is Login restricted to accounts with the admin role.
func (srv *userService) AdminLogin(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	requiredRole := entity.RoleAdmin

	return srv.login(ctx, input, &requiredRole)
}

func (srv *userService) login(ctx context.Context, input usecase.LoginInput, requiredRole *entity.Role) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if requiredRole != nil && user.Role != *requiredRole {
		srv.log(ctx).Warn("Login rejected, role not allowed",
			slog.Any("userID", user.ID),
			slog.String("role", user.Role.String()),
		)

		return nil, domainerrors.ErrForbidden.WithDetails("account does not have the required role")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}
	user.RefreshToken = &refreshToken

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout clears the account's stored refresh token.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("Logout completed", slog.Any("userID", userID))

	return nil
}

// Refresh validates the refresh token against the store and issues a new
// access token. A token that no longer matches the stored one (cleared by
// logout or replaced by a newer login) is rejected.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for token refresh")
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		srv.log(ctx).Warn("Refresh token does not match stored token", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// GetProfile retrieves the account behind the given ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// ListAccounts retrieves a page of accounts with an optional role filter.
func (srv *userService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) (*usecase.AccountListOutput, error) {
	filter := repository.UserFilter{}
	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role)
		}
		filter.Role = &role
	}

	page, limit := normalizePage(input.Page, input.Limit, srv.pagination)

	total, err := srv.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	users, err := srv.userRepo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.AccountListOutput{
		Users:       users,
		CurrentPage: page,
		TotalUsers:  total,
		TotalPages:  totalPages(total, limit),
	}, nil
}

func (srv *userService) uploadProfileImage(ctx context.Context, upload *usecase.ImageUpload) (*entity.Image, error) {
	key := path.Join("profiles", uuid.New().String()+path.Ext(upload.Filename))

	url, err := srv.imageStorage.Upload(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload profile image")
	}

	return &entity.Image{URL: url, StorageKey: key}, nil
}
