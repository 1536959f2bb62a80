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
)

// channelService is the relationship aggregator: it resolves a channel,
// derives subscriber metrics from the edge set in one consistent read and
// projects a whitelisted public view.
type channelService struct {
	userRepo         portsrepo.UserRepository
	subscriptionRepo portsrepo.SubscriptionRepository
}

// NewChannelService creates the channel profile/subscription service.
func NewChannelService(userRepo portsrepo.UserRepository, subscriptionRepo portsrepo.SubscriptionRepository) portssvc.ChannelSvcFacade {
	return &channelService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

var _ portssvc.ChannelSvcFacade = (*channelService)(nil)

func (s *channelService) resolveChannel(ctx context.Context, username string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperrors.NewValidationError("username is missing")
	}

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("channel does not exist")
		}
		return nil, apperrors.NewInternalError("failed to resolve channel", err)
	}
	return user, nil
}

func (s *channelService) GetChannelProfile(ctx context.Context, username, requesterID string) (*domain.ChannelProfile, error) {
	channel, err := s.resolveChannel(ctx, username)
	if err != nil {
		return nil, err
	}

	stats, err := s.subscriptionRepo.GetChannelStats(ctx, channel.UserID, requesterID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to compute channel profile", err)
	}

	// Exactly the public projection: no id, no hash, no edge lists.
	return &domain.ChannelProfile{
		FullName:                  channel.FullName,
		Username:                  channel.Username,
		SubscribersCount:          stats.SubscribersCount,
		ChannelsSubscribedToCount: stats.ChannelsSubscribedToCount,
		IsSubscribed:              stats.IsSubscribed,
		AvatarURL:                 channel.AvatarURL,
		CoverImageURL:             channel.CoverImageURL,
		Email:                     channel.Email,
	}, nil
}

func (s *channelService) Subscribe(ctx context.Context, requesterID, channelUsername string) error {
	channel, err := s.resolveChannel(ctx, channelUsername)
	if err != nil {
		return err
	}
	if channel.UserID == requesterID {
		return apperrors.NewValidationError("cannot subscribe to your own channel")
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   requesterID,
		ChannelID:      channel.UserID,
		CreatedAt:      time.Now(),
	}
	if err := s.subscriptionRepo.CreateSubscription(ctx, sub); err != nil {
		return apperrors.NewInternalError("failed to subscribe", err)
	}
	return nil
}

func (s *channelService) Unsubscribe(ctx context.Context, requesterID, channelUsername string) error {
	channel, err := s.resolveChannel(ctx, channelUsername)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, requesterID, channel.UserID); err != nil {
		return apperrors.NewInternalError("failed to unsubscribe", err)
	}
	return nil
}
