package services

import (
	"context"
	"errors"

	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/platform/config"
	"github.com/videotube/videotube_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade: it mints access/refresh
// pairs and runs the single-slot rotation protocol. All session truth
// lives in the user repository; nothing is cached in process.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

func (s *tokenService) mintPair(user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(
		user.UserID, user.Email, user.Username, user.FullName,
		s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(
		user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer,
	)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssueTokenPair mints a pair for an existing user and persists the
// refresh token. Callers reach here only for users they already resolved,
// so a missing user is an internal failure, not a 404.
func (s *tokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("token generation failed", err)
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, apperrors.NewInternalError("token generation failed", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, userID, pair.RefreshToken); err != nil {
		return nil, apperrors.NewInternalError("token generation failed", err)
	}

	return pair, nil
}

// RefreshTokenPair is the refresh exchange. The exact string comparison
// against the stored slot is the entire revocation mechanism: once any
// rotation overwrites the slot, every older refresh token fails for good.
// The final persist is a compare-and-swap so two concurrent exchanges of
// the same token cannot both succeed.
func (s *tokenService) RefreshTokenPair(ctx context.Context, presented string) (*domain.TokenPair, error) {
	if presented == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized request")
	}

	userID, err := utils.ParseRefreshToken(presented, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(err.Error())
	}

	user, err := s.userRepo.FindUserWithCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
		}
		return nil, apperrors.NewUnauthorizedError(err.Error())
	}

	if user.RefreshToken == "" || user.RefreshToken != presented {
		return nil, apperrors.NewUnauthorizedError("Refresh token is expired or used")
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(err.Error())
	}

	if err := s.userRepo.RotateRefreshToken(ctx, userID, presented, pair.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Lost the race against a concurrent rotation.
			return nil, apperrors.NewUnauthorizedError("Refresh token is expired or used")
		}
		return nil, apperrors.NewUnauthorizedError(err.Error())
	}

	return pair, nil
}
