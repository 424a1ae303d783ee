package Middleware

import (
	"net/http"

	"ChestVision/Cache"
	"ChestVision/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			c.Abort()
			return
		}
		if Cache.IsTokenRevoked(Token.ExtractToken(c)) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token expired"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetDoctor resolves the authenticated doctor once and stores the id for
// handlers, so every query below is scoped to the token owner.
func SetDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID, err := Token.ExtractTokenID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("doctorID", doctorID)
		c.Next()
	}
}
