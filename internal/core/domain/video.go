package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Video is owned by the content subsystem; this service only reads it.
type Video struct {
	VideoID      string          `json:"videoID"`
	OwnerID      string          `json:"ownerID"`
	VideoFileURL string          `json:"videoFile"`
	ThumbnailURL string          `json:"thumbnail"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Duration     decimal.Decimal `json:"duration"` // seconds, fractional
	Views        int64           `json:"views"`
	IsPublished  bool            `json:"isPublished"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// VideoOwner is the minimal public projection of a video's owner.
type VideoOwner struct {
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar"`
}

// WatchHistoryEntry is a video enriched with its owner's public profile.
// Owner is nil when the owning user record no longer exists.
type WatchHistoryEntry struct {
	Video
	Owner *VideoOwner `json:"owner"`
}
