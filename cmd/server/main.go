package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-california/internal/config"
	"github.com/iliyamo/hotel-california/internal/database"
	"github.com/iliyamo/hotel-california/internal/queue"
	"github.com/iliyamo/hotel-california/internal/repository"
	"github.com/iliyamo/hotel-california/internal/router"
	"github.com/iliyamo/hotel-california/internal/service"
	"github.com/iliyamo/hotel-california/internal/utils"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.AppName, cfg.AccessTTLMin, cfg.RefreshTTLMin)
	hasher := utils.NewHasher(cfg.BcryptCost)
	uow := repository.NewMySQLUnitOfWork(db)

	var events service.Publisher
	if cfg.AMQPURL != "" {
		events = queue.NewPublisher(cfg.AMQPURL)
		go func() {
			if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	svc := service.New(uow, tokens, hasher, events)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	e := echo.New()
	router.Register(e, svc, tokens, rdb, config.LoadRateLimitConfig(), config.LoadCacheConfig())

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
