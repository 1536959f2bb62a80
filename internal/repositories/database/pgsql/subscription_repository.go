package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portsrepo "github.com/videotube/videotube_backend/internal/core/ports/repositories"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

func (r *PgxSubscriptionRepository) CreateSubscription(ctx context.Context, subscription domain.Subscription) error {
	// ON CONFLICT DO NOTHING: the (subscriber, channel) pair is unique, so a
	// repeated subscribe never creates a second edge.
	query := `
        INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (subscriber_id, channel_id) DO NOTHING;
    `
	_, err := r.Pool.Exec(ctx, query,
		subscription.SubscriptionID,
		subscription.SubscriberID,
		subscription.ChannelID,
		subscription.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2;`
	if _, err := r.Pool.Exec(ctx, query, subscriberID, channelID); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// GetChannelStats derives all three metrics from one statement so they
// reflect a single snapshot of the edge set. An empty requesterID compares
// as NULL and the membership aggregate collapses to false.
func (r *PgxSubscriptionRepository) GetChannelStats(ctx context.Context, channelID, requesterID string) (*domain.ChannelStats, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE channel_id = $1) AS subscribers_count,
            COUNT(*) FILTER (WHERE subscriber_id = $1) AS channels_subscribed_to_count,
            COALESCE(BOOL_OR(channel_id = $1 AND subscriber_id = NULLIF($2, '')), false) AS is_subscribed
        FROM subscriptions
        WHERE channel_id = $1 OR subscriber_id = $1;
    `
	var stats domain.ChannelStats
	err := r.Pool.QueryRow(ctx, query, channelID, requesterID).Scan(
		&stats.SubscribersCount,
		&stats.ChannelsSubscribedToCount,
		&stats.IsSubscribed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute channel stats: %w", err)
	}
	return &stats, nil
}
