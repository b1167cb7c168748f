package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/internal/service"
	"github.com/sportshub/storefront/pkg/errors"
)

const userContextKey = "authenticated_user"

// AuthMiddleware resolves the bearer token and stores the user on the
// request context. Requests without a valid token get 401.
func AuthMiddleware(auth *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
			return
		}

		user, err := auth.UserForToken(c.Request.Context(), token)
		if err != nil {
			if _, ok := err.(*errors.ErrUnauthorized); !ok {
				logger.Error("Failed to resolve token", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// GetUserFromContext returns the authenticated user set by AuthMiddleware
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
