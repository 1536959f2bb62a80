package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/dto"
	"github.com/videotube/videotube_backend/internal/utils"
)

// extractAccessToken pulls the access token from the secure cookie first,
// then falls back to the Authorization header.
func extractAccessToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIErrorResponse(http.StatusUnauthorized, message, nil))
}

// authenticate resolves the request's access token to a user. The user is
// loaded fresh from the store so a deleted account fails even while its
// token is still unexpired.
func authenticate(c *gin.Context, accessSecret, cookieName string, userService portssvc.UserReaderSvc) (*domain.User, string, error) {
	tokenString := extractAccessToken(c, cookieName)
	if tokenString == "" {
		return nil, "Unauthorized request", apperrors.ErrUnauthorized
	}

	claims, err := utils.ParseAccessToken(tokenString, accessSecret)
	if err != nil {
		return nil, err.Error(), apperrors.ErrUnauthorized
	}

	user, err := userService.GetUserByID(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "Invalid access token", apperrors.ErrUnauthorized
		}
		// A store failure is not a credential problem; don't blame the token.
		return nil, "Something went wrong", err
	}

	return user, "", nil
}

func storeUser(c *gin.Context, user *domain.User) {
	logger := GetLoggerFromCtx(c.Request.Context())
	enriched := logger.With(slog.String("user_id", user.UserID))

	ctx := context.WithValue(c.Request.Context(), currentUserKey, user)
	ctx = context.WithValue(ctx, loggerCtxKey, enriched)
	c.Request = c.Request.WithContext(ctx)
}

// AuthMiddleware creates a Gin middleware handler that validates the
// access token and hydrates the authenticated user into the context.
func AuthMiddleware(accessSecret, cookieName string, userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, message, err := authenticate(c, accessSecret, cookieName, userService)
		if err != nil {
			logger := GetLoggerFromCtx(c.Request.Context())
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Authentication failed", slog.String("reason", message))
				abortUnauthorized(c, message)
				return
			}
			logger.Error("User hydration failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewAPIErrorResponse(http.StatusInternalServerError, message, nil))
			return
		}
		storeUser(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware hydrates the user when a valid token is present
// but never rejects the request. Anonymous viewers proceed without an
// identity in the context.
func OptionalAuthMiddleware(accessSecret, cookieName string, userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _, err := authenticate(c, accessSecret, cookieName, userService)
		if err == nil {
			storeUser(c, user)
		}
		c.Next()
	}
}
