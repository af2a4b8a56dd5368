package middleware

import (
	"strings"

	apperrors "hotelbooking/errors"
	"hotelbooking/policy"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// TokenParser turns a bearer token into the caller it was issued to.
type TokenParser interface {
	ParseToken(token string) (*policy.Caller, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// RequireAuth rejects requests without a valid access token.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.FromError(c, apperrors.Unauthenticated("authentication required"))
			c.Abort()
			return
		}

		caller, err := tokens.ParseToken(token)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(callerKey, caller)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFromContext(c)
		if err := policy.RequireAuthenticated(caller).Err(); err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}
		if !policy.HasRole(caller, roles...) {
			response.FromError(c, policy.DenyForbidden.Err())
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFromContext returns nil for anonymous requests.
func CallerFromContext(c *gin.Context) *policy.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	caller, _ := v.(*policy.Caller)
	return caller
}
