package dto

import "github.com/videotube/videotube_backend/internal/core/domain"

// LoginResponse is returned on login and carries both tokens in the body
// in addition to the cookies, for clients that cannot use cookies.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// ToLoginResponse assembles the login payload.
func ToLoginResponse(user *domain.User, pair *domain.TokenPair) LoginResponse {
	return LoginResponse{
		User:         ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// RefreshResponse is returned on a successful refresh-token exchange.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
