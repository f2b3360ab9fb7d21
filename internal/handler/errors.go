// Package handler implements the HTTP adapters. Handlers only translate
// between JSON and the service layer: parse errors map to 400,
// authentication errors to 401, the admin guard to 403 and business-logic
// errors to 422.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/hotel"
	"github.com/iliyamo/hotel-california/internal/utils"
)

func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, hotel.ErrUserNotAdmin):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case hotel.IsAuthentication(err) || errors.Is(err, utils.ErrTokenInvalid):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case hotel.IsBusiness(err):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
