package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shortsreel/backend/internal/auth"
	"github.com/shortsreel/backend/pkg/response"
)

// ContextAdminUser is the gin context key under which the gate stores
// the verified admin username.
const ContextAdminUser = "admin_user"

// JWT returns the auth gate middleware for admin routes. A missing or
// malformed Authorization header is a 401; a token that fails
// validation is a 403, with expired and tampered tokens worded apart.
// Any valid token grants full access: the trust model is flat, there
// are no roles.
func JWT(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "no authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "malformed authorization header")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Forbidden(c, "token expired")
			} else {
				response.Forbidden(c, "invalid token")
			}
			c.Abort()
			return
		}
		c.Set(ContextAdminUser, claims.Username)
		c.Next()
	}
}
