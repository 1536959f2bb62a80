package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/videotube/videotube_backend/internal/core/domain"
)

// currentUserKey is the key used to store the authenticated user in the
// request context. Using a custom type prevents collisions.
const currentUserKey = contextKey("currentUser")

// GetUserFromContext retrieves the authenticated user set by the auth
// middleware. The second return is false for anonymous requests.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	val := c.Request.Context().Value(currentUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// GetUserIDFromContext retrieves the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok {
		return "", false
	}
	return user.UserID, true
}
