package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itsfarrukhali/bathfitter-backend/internal/utils"
)

// OptionalAuthenticate attaches the user ID when a valid bearer token is
// present but never rejects the request. Design endpoints accept anonymous
// traffic, so a missing or broken token just means no owner.
func OptionalAuthenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.Next()
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.Next()
		return
	}

	claims, err := utils.VerifyJWT(parts[1], utils.AccessTokenSecret)
	if err != nil {
		c.Next()
		return
	}

	if userID, err := claims.UserID(); err == nil {
		c.Set("userId", userID)
	}

	c.Next()
}
