package auth

import (
	"net/http"
	"strconv"
	"strings"

	"matchday/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// MatchTokenMiddleware guards organizer-only routes. It expects a Bearer
// token minted at match creation and checks that the token's match claim
// matches the :id route parameter, so a token for one match grants nothing
// on another.
func MatchTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Organizer token required"})
			return
		}

		tokenMatchID, err := jwt.ParseMatchToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid organizer token"})
			return
		}

		routeMatchID, err := strconv.Atoi(c.Param("id"))
		if err != nil || tokenMatchID != uint(routeMatchID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this match"})
			return
		}

		c.Set("matchID", tokenMatchID)
		c.Next()
	}
}
