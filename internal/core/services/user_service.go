package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/dto"
	"github.com/videotube/videotube_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
	uploader portssvc.MediaUploader
}

// NewUserService creates the user account service.
func NewUserService(userRepo portsrepo.UserRepository, uploader portssvc.MediaUploader) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		uploader: uploader,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// sanitize strips credential material before a user leaves the service.
func sanitize(user *domain.User) *domain.User {
	u := *user
	u.PasswordHash = ""
	u.RefreshToken = ""
	return &u
}

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest, avatarLocalPath, coverImageLocalPath string) (*domain.User, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if avatarLocalPath == "" {
		return nil, apperrors.NewValidationError("Avatar file is required")
	}

	username := normalize(req.Username)
	email := normalize(req.Email)

	// Check for a taken username/email before uploading any media, so a
	// conflict never strands objects in the bucket. The unique indexes
	// remain the race-safe backstop at insert time.
	if _, err := s.userRepo.FindUserForLogin(ctx, username, email); err == nil {
		return nil, apperrors.NewConflictError("User with email or username already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewInternalError("failed to check existing user", err)
	}

	// Hash before any write path touches the record; there is no implicit
	// pre-save hook to rely on.
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	avatarURL, err := s.uploader.Upload(ctx, avatarLocalPath)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to upload avatar", err)
	}

	coverImageURL := ""
	if coverImageLocalPath != "" {
		coverImageURL, err = s.uploader.Upload(ctx, coverImageLocalPath)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to upload cover image", err)
		}
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(req.FullName),
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("User with email or username already exists")
		}
		return nil, apperrors.NewInternalError("something went wrong while registering the user", err)
	}

	return sanitize(&user), nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = normalize(username)
	email = normalize(email)
	if username == "" && email == "" {
		return nil, apperrors.NewValidationError("username or email is required")
	}

	user, err := s.userRepo.FindUserForLogin(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User does not exist")
		}
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid user credentials")
	}

	return sanitize(user), nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return apperrors.NewInternalError("failed to log out", err)
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindUserWithCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found")
		}
		return apperrors.NewInternalError("failed to get user", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.NewValidationError("Invalid old password")
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return apperrors.NewInternalError("failed to change password", err)
	}
	return nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("All fields are required")
	}

	user, err := s.userRepo.UpdateAccountDetails(ctx, userID, strings.TrimSpace(req.FullName), normalize(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Email already in use")
		}
		return nil, apperrors.NewInternalError("failed to update account details", err)
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, apperrors.NewValidationError("Avatar file is missing")
	}

	avatarURL, err := s.uploader.Upload(ctx, localPath)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to upload avatar", err)
	}

	user, err := s.userRepo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.NewInternalError("failed to update avatar", err)
	}
	return user, nil
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, apperrors.NewValidationError("Cover image file is missing")
	}

	coverImageURL, err := s.uploader.Upload(ctx, localPath)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to upload cover image", err)
	}

	user, err := s.userRepo.UpdateCoverImage(ctx, userID, coverImageURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.NewInternalError("failed to update cover image", err)
	}
	return user, nil
}
