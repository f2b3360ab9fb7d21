// Command adduser creates a user from the command line, typically to seed
// the first administrator account before the HTTP API is usable.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-california/internal/config"
	"github.com/iliyamo/hotel-california/internal/database"
	"github.com/iliyamo/hotel-california/internal/repository"
	"github.com/iliyamo/hotel-california/internal/service"
	"github.com/iliyamo/hotel-california/internal/utils"
)

func main() {
	name := flag.String("name", "", "user name")
	email := flag.String("email", "", "user email (unique)")
	password := flag.String("password", "", "plaintext password, at least 8 characters")
	admin := flag.Bool("admin", false, "grant administrator rights")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: adduser -email <email> -password <password> [-name <name>] [-admin]")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.AppName, cfg.AccessTTLMin, cfg.RefreshTTLMin)
	svc := service.New(repository.NewMySQLUnitOfWork(db), tokens, utils.NewHasher(cfg.BcryptCost), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := svc.AddUser(ctx, *name, *email, *password, *admin); err != nil {
		log.Fatalf("add user: %v", err)
	}
	log.Printf("user %s created (admin=%v)", *email, *admin)
}
