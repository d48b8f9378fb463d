package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// withUserID stores userID on both contexts and tags the request logger with it.
func withUserID(c *gin.Context, userID string) {
	logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = ContextWithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
}
