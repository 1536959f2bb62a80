package services

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
)

// ChannelSvcFacade computes derived social-graph views and manages
// subscription edges.
type ChannelSvcFacade interface {
	// GetChannelProfile resolves a channel by username and returns its
	// public projection with subscriber metrics. requesterID is empty for
	// anonymous viewers.
	GetChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error)

	// Subscribe adds the (requester, channel) edge.
	Subscribe(ctx context.Context, requesterID, channelUsername string) error

	// Unsubscribe removes the (requester, channel) edge.
	Unsubscribe(ctx context.Context, requesterID, channelUsername string) error
}

// WatchHistorySvcFacade expands a user's ordered watch-history references
// into enriched video+owner view-models.
type WatchHistorySvcFacade interface {
	// GetWatchHistory returns the requester's history in stored order.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error)

	// AddToWatchHistory appends a watched video to the requester's history.
	AddToWatchHistory(ctx context.Context, userID, videoID string) error
}
