package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ImageUpload carries raw image bytes from the delivery layer to the blob
// store.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RegisterInput defines the data required to register a new account.
// Role is honored when it names a known role and defaults to user otherwise.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Image    *ImageUpload
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ListAccountsInput defines the admin account listing parameters.
type ListAccountsInput struct {
	Role  string
	Page  int
	Limit int
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the new access token after a token refresh.
type RefreshOutput struct {
	AccessToken string
}

// AccountListOutput is one page of accounts with its pagination envelope.
type AccountListOutput struct {
	Users       []*entity.User
	CurrentPage int
	TotalUsers  int64
	TotalPages  int
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// Register creates a new account. The cart only materializes for the
	// user role; duplicate username or email is a conflict.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// AdminLogin is Login restricted to accounts with the admin role.
	AdminLogin(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout clears the account's stored refresh token.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Refresh validates the refresh token against the store and issues a
	// new access token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// GetProfile retrieves the account behind the given ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListAccounts retrieves a page of accounts with an optional role
	// filter. Admin only.
	ListAccounts(ctx context.Context, input ListAccountsInput) (*AccountListOutput, error)
}
