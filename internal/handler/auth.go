package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/hotel"
	"github.com/iliyamo/hotel-california/internal/middleware"
	"github.com/iliyamo/hotel-california/internal/service"
	"github.com/iliyamo/hotel-california/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Hotel  *service.Hotel
	Tokens *utils.TokenIssuer
}

func NewAuthHandler(h *service.Hotel, tokens *utils.TokenIssuer) *AuthHandler {
	return &AuthHandler{Hotel: h, Tokens: tokens}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newTokenResp(pair hotel.TokenPair) tokenResp {
	return tokenResp{AccessToken: pair.Access, RefreshToken: pair.Refresh, TokenType: "bearer"}
}

// Login verifies credentials and returns a fresh token pair. The refresh
// token is stored on the user, invalidating any previously issued one.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pair, err := h.Hotel.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, newTokenResp(pair))
}

// Refresh exchanges a valid refresh token for a new pair. The token must
// carry the refresh audience claim and must still be the one stored on the
// user; each refresh rotates it.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	claims, err := h.Tokens.Decode(strings.TrimSpace(req.RefreshToken), utils.RefreshAudience)
	if err != nil {
		return writeDomainError(c, err)
	}
	email, err := utils.Subject(claims)
	if err != nil {
		return writeDomainError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pair, err := h.Hotel.Refresh(ctx, email)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, newTokenResp(pair))
}

// Me returns the authenticated user's email. Simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"email": middleware.Email(c)})
}
