package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/middleware"
)

// ChannelHandler exposes channel profiles and subscription edges.
type ChannelHandler struct {
	channelService services.ChannelSvcFacade
}

func NewChannelHandler(channelService services.ChannelSvcFacade) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// GetChannelProfile godoc
// @Summary Get a channel's public profile
// @Description Returns the channel's public fields plus subscriber counts. isSubscribed reflects the requester when authenticated and is false for anonymous viewers.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=domain.ChannelProfile}
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /users/channel/{username} [get]
func (h *ChannelHandler) GetChannelProfile(c *gin.Context) {
	// The requester is optional here; an anonymous viewer still gets the
	// profile, with isSubscribed pinned to false.
	requesterID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.channelService.GetChannelProfile(c.Request.Context(), c.Param("username"), requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, profile, "User channel fetched successfully")
}

// Subscribe godoc
// @Summary Subscribe to a channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /users/channel/{username}/subscribe [post]
func (h *ChannelHandler) Subscribe(c *gin.Context) {
	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	if err := h.channelService.Subscribe(c.Request.Context(), requesterID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Subscribed successfully")
}

// Unsubscribe godoc
// @Summary Unsubscribe from a channel
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /users/channel/{username}/subscribe [delete]
func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	requesterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	if err := h.channelService.Unsubscribe(c.Request.Context(), requesterID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Unsubscribed successfully")
}

// HistoryHandler exposes the requester's watch history.
type HistoryHandler struct {
	historyService services.WatchHistorySvcFacade
}

func NewHistoryHandler(historyService services.WatchHistorySvcFacade) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetWatchHistory godoc
// @Summary Get the requester's watch history
// @Description Returns watched videos in stored order, each enriched with its owner's public fields. Entries whose video no longer exists are omitted.
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]domain.WatchHistoryEntry}
// @Failure 401 {object} dto.APIErrorResponse
// @Router /users/watch-history [get]
func (h *HistoryHandler) GetWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	history, err := h.historyService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, history, "Watch history fetched successfully")
}

// AddToWatchHistory godoc
// @Summary Append a video to the requester's watch history
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /users/watch-history/{videoId} [post]
func (h *HistoryHandler) AddToWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return
	}

	if err := h.historyService.AddToWatchHistory(c.Request.Context(), userID, c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Video added to watch history")
}
