package services

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
	"github.com/videotube/videotube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID with credentials excluded.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user. The avatar file is required; the cover
	// image path may be empty. Both files are uploaded to object storage
	// before the user record is created.
	Register(ctx context.Context, req dto.RegisterUserRequest, avatarLocalPath, coverImageLocalPath string) (*domain.User, error)

	// UpdateAccountDetails updates full name and email.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a freshly hashed
	// replacement.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// UpdateAvatar uploads a replacement avatar and stores its URL.
	UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error)

	// UpdateCoverImage uploads a replacement cover image and stores its URL.
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username or email plus
	// password and returns the sanitized user record.
	AuthenticateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// Logout clears the user's stored refresh token.
	Logout(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
