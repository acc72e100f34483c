package middlewares

import (
	"errors"
	"log"
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserKey is where the resolved user lives on the gin context.
const UserKey = "currentUser"

// SessionMiddleware resolves the sessionId cookie to a user before any
// handler logic runs. Identity is re-derived from the database on every
// request; nothing is cached in-process.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie("sessionId")
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		session, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := services.NewUserService(config.DB).ResolveSession(session)
		if err != nil {
			if errors.Is(err, services.ErrUnknownSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			log.Printf("session lookup failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
