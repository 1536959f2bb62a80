package domain

import "time"

// User represents an account holder. A user acting as the target of
// subscription edges is referred to as a channel.
type User struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"` // stored lowercase
	Email         string    `json:"email"`    // stored lowercase
	FullName      string    `json:"fullName"`
	PasswordHash  string    `json:"-"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage,omitempty"`
	RefreshToken  string    `json:"-"` // single slot: at most one active refresh token
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenPair is an access/refresh credential pair minted for one user.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
