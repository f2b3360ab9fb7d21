// Package router registers the HTTP routes and wires middleware around them.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-california/internal/config"
	"github.com/iliyamo/hotel-california/internal/handler"
	"github.com/iliyamo/hotel-california/internal/middleware"
	"github.com/iliyamo/hotel-california/internal/service"
	"github.com/iliyamo/hotel-california/internal/utils"
)

// Register mounts all routes. Auth endpoints are public but rate limited;
// everything else under /v1 requires a valid access token, and user/room
// creation additionally requires the admin guard. Room listing and search
// responses are cached briefly; booking and order routes never are.
func Register(e *echo.Echo, svc *service.Hotel, tokens *utils.TokenIssuer, rdb *redis.Client, rl config.RateLimitConfig, cc config.CacheConfig) {
	a := handler.NewAuthHandler(svc, tokens)
	u := handler.NewUserHandler(svc)
	r := handler.NewRoomHandler(svc)
	o := handler.NewOrderHandler(svc)

	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(rl, rdb)
	auth := e.Group("/v1/auth", limiter)
	auth.POST("/login", a.Login)
	auth.POST("/refresh", a.Refresh)

	cache := middleware.NewResponseCache(cc, rdb)
	v1 := e.Group("/v1", middleware.JWTAuth(tokens))
	v1.GET("/me", a.Me)
	v1.GET("/rooms", r.List, cache)
	v1.GET("/rooms/search", r.Search, cache)
	v1.GET("/rooms/:num/booking", r.Book)
	v1.GET("/rooms/:num/orders", r.Orders)
	v1.GET("/orders/:id", o.Get)
	v1.GET("/orders/:id/cancel", o.Cancel)

	admin := v1.Group("", middleware.AdminRequired(svc))
	admin.POST("/users", u.Create)
	admin.POST("/rooms", r.Create)
}
