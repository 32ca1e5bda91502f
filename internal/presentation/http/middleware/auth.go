package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
	"github.com/techgpt/techgpt-api/internal/presentation/http/dto/response"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_type", claims.UserType)

		c.Next()
	}
}

// RequireUserType creates a middleware that restricts a route to the given
// account types
func RequireUserType(types ...enum.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeVal, exists := c.Get("user_type")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		userType, ok := userTypeVal.(enum.UserType)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, t := range types {
			if userType == t {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "This action is not available for your account type")
		c.Abort()
	}
}
