package domain

import "time"

// Subscription is a directed edge: subscriber follows channel.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	SubscriberID   string    `json:"subscriberID"`
	ChannelID      string    `json:"channelID"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ChannelStats holds the derived social-graph metrics for one channel,
// computed from a single consistent read of the subscription edges.
type ChannelStats struct {
	SubscribersCount          int64
	ChannelsSubscribedToCount int64
	IsSubscribed              bool
}

// ChannelProfile is the public projection of a channel. No credential or
// raw edge data may appear here.
type ChannelProfile struct {
	FullName                  string `json:"fullName"`
	Username                  string `json:"username"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
	AvatarURL                 string `json:"avatar"`
	CoverImageURL             string `json:"coverImage,omitempty"`
	Email                     string `json:"email"`
}
