package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techgpt/techgpt-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserType extracts the account type from the Gin context
func GetUserType(c *gin.Context) (enum.UserType, bool) {
	userTypeVal, exists := c.Get("user_type")
	if !exists {
		return 0, false
	}
	userType, ok := userTypeVal.(enum.UserType)
	return userType, ok
}

// IsAdmin checks if the authenticated user is an admin
func IsAdmin(c *gin.Context) bool {
	userType, ok := GetUserType(c)
	return ok && userType == enum.UserTypeAdmin
}
