package repositories

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
)

// VideoRepository defines the read operations this service needs against
// the content subsystem's video records, plus the requester-owned watch
// history list.
type VideoRepository interface {
	// FindVideoByID retrieves a video record.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// FindWatchHistory resolves a user's ordered watch-history references
	// into enriched video+owner entries. Ids with no matching video are
	// omitted; a missing owner yields a nil Owner. The stored viewing
	// order is preserved exactly.
	FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)

	// AppendWatchHistory appends a video id to the end of a user's
	// watch-history sequence.
	AppendWatchHistory(ctx context.Context, userID, videoID string) error
}
