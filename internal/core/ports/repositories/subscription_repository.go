package repositories

import (
	"context"

	"github.com/videotube/videotube_backend/internal/core/domain"
)

// SubscriptionRepository defines persistence operations for subscription edges.
type SubscriptionRepository interface {
	// CreateSubscription inserts the (subscriber, channel) edge. Inserting
	// an edge that already exists is a no-op, so counts can never be
	// inflated by duplicates.
	CreateSubscription(ctx context.Context, subscription domain.Subscription) error

	// DeleteSubscription removes the (subscriber, channel) edge if present.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) error

	// GetChannelStats computes subscriber count, subscribed-to count and
	// the requester's membership in one statement so all three reflect the
	// same snapshot of the edge set. requesterID is empty for anonymous
	// viewers, in which case IsSubscribed is always false.
	GetChannelStats(ctx context.Context, channelID, requesterID string) (*domain.ChannelStats, error)
}
