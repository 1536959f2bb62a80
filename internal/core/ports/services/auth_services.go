package services

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
)

// TokenSvcFacade defines the session credential lifecycle: issuing an
// access/refresh pair and exchanging a refresh token for a new pair.
type TokenSvcFacade interface {
	// IssueTokenPair mints an access/refresh token pair for the user and
	// persists the refresh token into the user's single slot.
	IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error)

	// RefreshTokenPair validates the presented refresh token against the
	// stored value and, on an exact match, atomically rotates the slot to a
	// freshly minted pair. The presented token is permanently invalid the
	// instant the new one is persisted.
	RefreshTokenPair(ctx context.Context, presented string) (*domain.TokenPair, error)
}
