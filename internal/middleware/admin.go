package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/hotel"
	"github.com/iliyamo/hotel-california/internal/service"
)

// AdminRequired enforces that the authenticated user is an administrator.
// Admin status lives in the database, not in the token, so the guard asks
// the service layer on every request. It assumes JWTAuth already ran and
// stored the email in the context.
func AdminRequired(h *service.Hotel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := Email(c)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if err := h.CheckAdmin(c.Request().Context(), email); err != nil {
				if hotel.IsAuthentication(err) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
				}
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin required"})
			}
			return next(c)
		}
	}
}
