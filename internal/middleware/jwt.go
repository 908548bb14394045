// Package middleware contains reusable HTTP middleware for the API.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/utils"
)

// userIDKey is the context key under which the resolved caller identity is
// stored. Handlers read it back through UserID.
const userIDKey = "user_id"

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the resolved user ID into the request context. The provided secret
// must match the one used when issuing tokens. A missing or malformed header
// and any signature or claim failure all surface as the same generic 401
// through the error boundary.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return httperr.Auth("missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			uid, err := utils.ParseUserID(secret, raw)
			if err != nil {
				return httperr.Auth("invalid token")
			}

			c.Set(userIDKey, uid)
			return next(c)
		}
	}
}

// UserID returns the caller identity placed in the context by JWTAuth. The
// flag is false when the request did not pass through the middleware.
func UserID(c echo.Context) (uint64, bool) {
	uid, ok := c.Get(userIDKey).(uint64)
	return uid, ok
}
