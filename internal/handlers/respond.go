package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/dto"
	"github.com/videotube/videotube_backend/internal/middleware"
)

// respondSuccess renders the uniform success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewAPIResponse(statusCode, data, message))
}

// respondError maps a typed error onto the uniform error envelope. Errors
// that are not AppErrors are rendered as opaque 500s so internal details
// never leak to clients.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", appErr.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("reason", appErr.Message))
		}
		c.JSON(appErr.Code, dto.NewAPIErrorResponse(appErr.Code, appErr.Message, nil))
		return
	}

	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.NewAPIErrorResponse(http.StatusInternalServerError, "Something went wrong", nil))
}

func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(http.StatusBadRequest, message, nil))
}

// saveToTemp writes a multipart upload to a temp path. The returned
// cleanup must run on every exit path so the local artifact is removed
// whether the upstream upload succeeded or not.
func saveToTemp(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	localPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", func() {}, err
	}
	cleanup := func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to remove temp upload",
				slog.String("path", localPath), slog.String("error", err.Error()))
		}
	}
	return localPath, cleanup, nil
}
