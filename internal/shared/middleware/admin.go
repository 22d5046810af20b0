package middleware

import (
	"github.com/gin-gonic/gin"
)

// AdminOnly must run after AuthMiddleware. Blocks non-admin roles.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role != "admin" && role != "super_admin" {
			c.JSON(403, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// IsAdmin reports whether the authenticated user has an admin role.
func IsAdmin(c *gin.Context) bool {
	role := c.GetString("userRole")
	return role == "admin" || role == "super_admin"
}
