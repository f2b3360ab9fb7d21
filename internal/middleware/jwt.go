// Package middleware contains reusable HTTP middleware: bearer-token
// authentication, the admin guard and redis-backed rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/utils"
)

// EmailKey is the context key under which JWTAuth stores the authenticated
// user's email for downstream handlers.
const EmailKey = "email"

// JWTAuth validates a Bearer access token and injects the subject (the
// user's email) into the request context. Refresh tokens are rejected here:
// they carry an audience claim and Decode with an empty audience refuses
// them.
func JWTAuth(tokens *utils.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims, err := tokens.Decode(strings.TrimPrefix(auth, "Bearer "), "")
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			email, err := utils.Subject(claims)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			c.Set(EmailKey, email)
			return next(c)
		}
	}
}

// Email returns the authenticated email stored by JWTAuth, or "".
func Email(c echo.Context) string {
	if v, ok := c.Get(EmailKey).(string); ok {
		return v
	}
	return ""
}
