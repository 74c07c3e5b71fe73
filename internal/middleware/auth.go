package middleware

import (
	"net/http"
	"strings"

	"elgrace_backend/internal/auth"
	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stashes the caller's
// identity in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles allows only the listed roles through.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := roleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}
		if !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
			return
		}
		c.Next()
	}
}

// RoleMiddleware restricts a route group to a single role.
func RoleMiddleware(required models.UserRole) gin.HandlerFunc {
	return RequireRoles(required)
}

func roleFromContext(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role, true
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr), true
	}
	return "", false
}

// GetUserID returns the authenticated user's ID, or "" for anonymous calls.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole returns the authenticated user's role.
func GetRole(c *gin.Context) models.UserRole {
	role, _ := roleFromContext(c)
	return role
}
