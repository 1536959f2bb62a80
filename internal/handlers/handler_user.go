package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/dto"
	"github.com/videotube/videotube_backend/internal/middleware"
)

// UserHandler owns the account surface for the authenticated user.
type UserHandler struct {
	userService services.UserSvcFacade
}

func NewUserHandler(userService services.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/current-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "User fetched successfully")
}

// UpdateAccountDetails godoc
// @Summary Update full name and email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "New account details"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/update-account [patch]
func (h *UserHandler) UpdateAccountDetails(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, "All fields are required")
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully")
}

// UpdateAvatar godoc
// @Summary Replace the avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		respondValidationError(c, "Avatar file is missing")
		return
	}
	localPath, cleanup, err := saveToTemp(c, file)
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to stage avatar upload", err))
		return
	}
	defer cleanup()

	user, err := h.userService.UpdateAvatar(c.Request.Context(), userID, localPath)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Avatar image updated successfully")
}

// UpdateCoverImage godoc
// @Summary Replace the cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	file, err := c.FormFile("coverImage")
	if err != nil {
		respondValidationError(c, "Cover image file is missing")
		return
	}
	localPath, cleanup, err := saveToTemp(c, file)
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to stage cover image upload", err))
		return
	}
	defer cleanup()

	user, err := h.userService.UpdateCoverImage(c.Request.Context(), userID, localPath)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Cover image updated successfully")
}
