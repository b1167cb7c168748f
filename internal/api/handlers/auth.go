package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/api/middleware"
	"github.com/sportshub/storefront/internal/domain"
	"github.com/sportshub/storefront/internal/service"
	"github.com/sportshub/storefront/pkg/errors"
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token and the signed-in user
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// HandleRegister handles POST /api/auth/register
func HandleRegister(auth *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}

		result, err := auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
		if err != nil {
			switch err.(type) {
			case *errors.ErrValidation:
				c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			case *errors.ErrConflict:
				c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			default:
				logger.Error("Failed to register user", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			}
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: result.User})
	}
}

// HandleLogin handles POST /api/auth/login
func HandleLogin(auth *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}

		result, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if _, ok := err.(*errors.ErrUnauthorized); ok {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			logger.Error("Failed to log user in", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: result.User})
	}
}

// HandleProfile handles GET /api/auth/profile
func HandleProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
