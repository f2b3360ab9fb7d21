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

// RoomHandler exposes room management, search and booking.
type RoomHandler struct {
	Hotel *service.Hotel
}

func NewRoomHandler(h *service.Hotel) *RoomHandler {
	return &RoomHandler{Hotel: h}
}

type createRoomReq struct {
	Number   int     `json:"number"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
}

type roomResp struct {
	Number   int     `json:"number"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
}

type orderResp struct {
	Identity  int    `json:"identity"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
}

func newOrderResp(o model.Order) orderResp {
	return orderResp{
		Identity:  o.Identity,
		Arrival:   o.Arrival().Date.Format(model.DateLayout),
		Departure: o.Departure().Date.Format(model.DateLayout),
	}
}

// parseRange reads the arrival/departure query parameters into a candidate
// date pair. Format errors are the caller's fault, not a domain failure.
func parseRange(c echo.Context) ([2]model.BookingDate, bool) {
	arrival, err := model.ParseBookingDate(c.QueryParam("arrival"), model.StatusArrival)
	if err != nil {
		return [2]model.BookingDate{}, false
	}
	departure, err := model.ParseBookingDate(c.QueryParam("departure"), model.StatusDeparture)
	if err != nil {
		return [2]model.BookingDate{}, false
	}
	return [2]model.BookingDate{arrival, departure}, true
}

// Create adds a room. Admin-only, enforced by the router.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	number, err := h.Hotel.AddRoom(ctx, req.Number, req.Capacity, req.Price)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"room_num": number})
}

// List returns every room without its booking history.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Hotel.Rooms(ctx)
	if err != nil {
		return writeDomainError(c, err)
	}
	res := make([]roomResp, 0, len(rooms))
	for _, r := range rooms {
		res = append(res, roomResp{Number: r.Number, Capacity: r.Capacity, Price: r.Price})
	}
	return c.JSON(http.StatusOK, res)
}

// Search returns rooms with the requested capacity that are free for the
// given range.
func (h *RoomHandler) Search(c echo.Context) error {
	capacity, err := strconv.Atoi(c.QueryParam("cap"))
	if err != nil || capacity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cap must be a positive integer"})
	}
	dates, ok := parseRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "arrival/departure must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Hotel.FindRooms(ctx, dates, capacity)
	if err != nil {
		return writeDomainError(c, err)
	}
	res := make([]roomResp, 0, len(rooms))
	for _, r := range rooms {
		res = append(res, roomResp{Number: r.Number, Capacity: r.Capacity, Price: r.Price})
	}
	return c.JSON(http.StatusOK, res)
}

// Book reserves the room for the requested range and returns the order
// identity.
func (h *RoomHandler) Book(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	dates, ok := parseRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "arrival/departure must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	identity, err := h.Hotel.BookRoom(ctx, number, dates)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"order_id": identity})
}

// Orders lists the bookings attached to one room.
func (h *RoomHandler) Orders(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("num"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Hotel.RoomOrders(ctx, number)
	if err != nil {
		return writeDomainError(c, err)
	}
	res := make([]orderResp, 0, len(orders))
	for _, o := range orders {
		res = append(res, newOrderResp(o))
	}
	return c.JSON(http.StatusOK, res)
}
