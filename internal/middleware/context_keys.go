package middleware

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey and userRoleKey store the authenticated identity in the context.
// Using a custom type prevents collisions.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, checking the request context as well.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if v := c.Request.Context().Value(userIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetActorFromContext builds the acting user from the values stored by the
// auth middleware. The second return is false when the request is
// unauthenticated.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}

	roleVal, exists := c.Get(string(userRoleKey))
	if !exists {
		if v := c.Request.Context().Value(userRoleKey); v != nil {
			roleVal = v
		}
	}
	role, ok := roleVal.(domain.Role)
	if !ok || !role.IsValid() {
		return domain.Actor{}, false
	}

	return domain.Actor{UserID: userID, Role: role}, true
}
