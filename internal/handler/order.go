package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/model"
	"github.com/iliyamo/hotel-california/internal/service"
)

// OrderHandler exposes order lookup and cancellation.
type OrderHandler struct {
	Hotel *service.Hotel
}

func NewOrderHandler(h *service.Hotel) *OrderHandler {
	return &OrderHandler{Hotel: h}
}

// Get returns the arrival and departure dates of one order.
func (h *OrderHandler) Get(c echo.Context) error {
	identity, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, err := h.Hotel.Order(ctx, identity)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"arrival":   order.Arrival().Date.Format(model.DateLayout),
		"departure": order.Departure().Date.Format(model.DateLayout),
	})
}

// Cancel deletes an order while its arrival is still more than three days
// away.
func (h *OrderHandler) Cancel(c echo.Context) error {
	identity, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Hotel.CancelOrder(ctx, identity); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
