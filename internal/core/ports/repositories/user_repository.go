package repositories

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by id with credential columns
	// (password hash, refresh token) excluded from the result.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by normalized username with
	// credential columns excluded.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserForLogin retrieves a user by normalized username or email,
	// including the password hash.
	FindUserForLogin(ctx context.Context, username, email string) (*domain.User, error)

	// FindUserWithCredentials retrieves a user by id including the password
	// hash and the stored refresh token.
	FindUserWithCredentials(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. A username/email uniqueness violation
	// is reported as apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateAccountDetails updates the full name and email of a user.
	UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// UpdateAvatar replaces the avatar URL.
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error)

	// UpdateCoverImage replaces the cover image URL.
	UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, error)
}

// UserCredentialWriter defines the single-field refresh-token updates.
// These touch only the refresh_token column so partial or legacy records
// are never re-validated as a side effect.
type UserCredentialWriter interface {
	// UpdateRefreshToken unconditionally stores a new refresh token.
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error

	// RotateRefreshToken stores next only if the stored token still equals
	// presented (atomic compare-and-swap). A lost race or already-rotated
	// token is reported as apperrors.ErrUnauthorized.
	RotateRefreshToken(ctx context.Context, userID, presented, next string) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepository combines all user persistence operations.
type UserRepository interface {
	UserReader
	UserWriter
	UserCredentialWriter
}
