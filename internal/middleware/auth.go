package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/SscSPs/pharma_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates HMAC signed JWT bearer tokens.
// When issuer is non-empty the token's iss claim must match it.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := utils.ParseAccessToken(parts[1], jwtSecret, issuer)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(msg))
			return
		}

		withUserID(c, claims.Subject)
		c.Next()
	}
}

// StaticUser attributes every request to userID. It stands in for AuthMiddleware when auth is disabled.
func StaticUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		withUserID(c, userID)
		c.Next()
	}
}
