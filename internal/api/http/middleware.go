package http

import (
	"net/http"
	"strings"

	"github.com/eventconnect/backend/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// AuthMiddleware requires a valid Bearer token and stores the caller's
// id on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := tokenUser(c, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a token is present
// but lets anonymous requests through. Browse and detail reads use it
// so viewer RSVP status can be attached when known.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := tokenUser(c, secret); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

func tokenUser(c *gin.Context, secret string) (uuid.UUID, bool) {
	tokenString := ""

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Browser websocket clients cannot set headers on the upgrade
	// request, so a token query parameter is accepted as well.
	if tokenString == "" {
		tokenString = c.Query("token")
	}

	if tokenString == "" {
		return uuid.Nil, false
	}

	userID, err := auth.ParseToken(tokenString, secret)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func currentUserID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
