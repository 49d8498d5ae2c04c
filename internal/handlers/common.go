// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/utils"
)

// queryAlias returns the first non-empty value among the given query keys.
func queryAlias(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if value := c.Query(key); value != "" {
			return value
		}
	}
	return ""
}

// callerID returns the authenticated user's ID from the request context.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// canActFor reports whether the caller is the given user or an admin. Routes
// keep userId in the path for API parity, but identity always comes from the
// token, never the URL.
func canActFor(c *gin.Context, userID uuid.UUID) bool {
	caller, ok := callerID(c)
	if !ok {
		return false
	}
	if caller == userID {
		return true
	}
	role, _ := utils.GetUserRoleFromContext(c)
	return role == string(models.UserRoleAdmin)
}
