package services

import (
	"context"
	"errors"

	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
)

// watchHistoryService is the history denormalizer. A user can only read
// and append their own history; there is no target parameter.
type watchHistoryService struct {
	videoRepo portsrepo.VideoRepository
}

// NewWatchHistoryService creates the watch-history service.
func NewWatchHistoryService(videoRepo portsrepo.VideoRepository) portssvc.WatchHistorySvcFacade {
	return &watchHistoryService{videoRepo: videoRepo}
}

var _ portssvc.WatchHistorySvcFacade = (*watchHistoryService)(nil)

func (s *watchHistoryService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	entries, err := s.videoRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to fetch watch history", err)
	}
	return entries, nil
}

func (s *watchHistoryService) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("video does not exist")
		}
		return apperrors.NewInternalError("failed to look up video", err)
	}

	if err := s.videoRepo.AppendWatchHistory(ctx, userID, videoID); err != nil {
		return apperrors.NewInternalError("failed to record watch history", err)
	}
	return nil
}
