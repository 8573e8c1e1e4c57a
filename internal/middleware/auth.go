package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/util"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores
// the parsed claims for util.GetUserFromContext.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(strings.TrimPrefix(header, "Bearer "), cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
