package dto

// RegisterUserRequest carries the multipart form fields for registration.
// The avatar/coverImage files travel separately as multipart file parts.
type RegisterUserRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest accepts a username or an email plus the password. At least
// one of username/email must be present; that is checked in the handler
// because binding tags cannot express either-or.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest carries a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateAccountRequest updates the mutable profile fields. Both are
// required; omitting one is rejected with a validation error.
type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// RefreshTokenRequest is the JSON fallback when the refresh token is not
// presented as a cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}
