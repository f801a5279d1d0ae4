package middleware

import (
	"strings"

	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token on protected routes and stores the
// authenticated user id on the request context. The header is split on
// whitespace and the second token is taken as the credential, so a
// bare "Bearer" header or a malformed credential both fail
// verification rather than header parsing.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.Unauthorized(c, "Access Denied!")
			c.Abort()
			return
		}

		var token string
		if parts := strings.Fields(header); len(parts) > 1 {
			token = parts[1]
		}

		claims, err := util.ParseJWT(token, secret)
		if err != nil {
			util.Unauthorized(c, "Invalid Token")
			c.Abort()
			return
		}

		util.SetUserID(c, claims.UserID)
		c.Next()
	}
}
