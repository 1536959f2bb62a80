package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	"github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/dto"
	"github.com/videotube/videotube_backend/internal/middleware"
	"github.com/videotube/videotube_backend/internal/platform/config"
)

// AuthHandler owns the session lifecycle endpoints: register, login,
// logout, token refresh and password changes.
type AuthHandler struct {
	userService  services.UserSvcFacade
	tokenService services.TokenSvcFacade
	cfg          *config.Config
}

func NewAuthHandler(userService services.UserSvcFacade, tokenService services.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService, cfg: cfg}
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *domain.TokenPair) {
	c.SetCookie(h.cfg.AccessTokenCookieName, pair.AccessToken,
		int(h.cfg.AccessTokenExpiryDuration.Seconds()), "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, pair.RefreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", true, true)
}

// RegisterUser godoc
// @Summary Register a new user
// @Description Creates a user account from multipart form fields plus a required avatar image and an optional cover image.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email address"
// @Param username formData string true "Unique username"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 409 {object} dto.APIErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, "All fields are required")
		return
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		respondValidationError(c, "Avatar file is required")
		return
	}
	avatarPath, avatarCleanup, err := saveToTemp(c, avatarFile)
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to stage avatar upload", err))
		return
	}
	defer avatarCleanup()

	coverImagePath := ""
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		var coverCleanup func()
		coverImagePath, coverCleanup, err = saveToTemp(c, coverFile)
		if err != nil {
			respondError(c, apperrors.NewInternalError("failed to stage cover image upload", err))
			return
		}
		defer coverCleanup()
	}

	user, err := h.userService.Register(c.Request.Context(), req, avatarPath, coverImagePath)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// LoginUser godoc
// @Summary Log in
// @Description Verifies credentials and issues an access/refresh token pair, also set as httpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "username or email is required")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	respondSuccess(c, http.StatusOK, dto.ToLoginResponse(user, pair), "User logged In Successfully")
}

// LogoutUser godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears auth cookies.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/logout [post]
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	if err := h.userService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearAuthCookies(c)
	respondSuccess(c, http.StatusOK, gin.H{}, "User logged Out")
}

// RefreshAccessToken godoc
// @Summary Rotate the token pair
// @Description Exchanges a valid refresh token, from cookie or body, for a fresh token pair. The presented token is consumed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "Refresh token when not sent as a cookie"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/refresh-token [post]
func (h *AuthHandler) RefreshAccessToken(c *gin.Context) {
	presented, _ := c.Cookie(h.cfg.RefreshTokenCookieName)
	if presented == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	pair, err := h.tokenService.RefreshTokenPair(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	respondSuccess(c, http.StatusOK, dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

// ChangePassword godoc
// @Summary Change the current password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "All fields are required")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Password changed successfully")
}
