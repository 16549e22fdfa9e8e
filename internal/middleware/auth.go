package middleware

import (
	"net/http"

	"careero_backend/internal/auth"
	"careero_backend/internal/config"
	"careero_backend/internal/logger"
	"careero_backend/internal/repositories"
	"careero_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware authenticates the request from the session cookie.
// Missing cookie, bad signature, or a user that no longer exists all abort
// with 401 before the handler runs.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.SessionCookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ParseSessionToken(cookie, config.GetConfig().Session.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		user, err := userRepo.FindByID(db.(*gorm.DB), claims.UserID)
		if err != nil {
			// A valid cookie for a deleted account is not authenticated.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user's id from the gin context.
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
