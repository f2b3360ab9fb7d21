package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/service"
)

// UserHandler exposes user administration. Creation is admin-only; the
// router wires the admin guard in front of it.
type UserHandler struct {
	Hotel *service.Hotel
}

func NewUserHandler(h *service.Hotel) *UserHandler {
	return &UserHandler{Hotel: h}
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Create adds a new user.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Hotel.AddUser(ctx, req.Name, req.Email, req.Password, req.IsAdmin); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"email": strings.ToLower(strings.TrimSpace(req.Email))})
}
