// Package config loads application configuration from environment variables.
// Components receive explicit config values at construction time; nothing in
// the application reads the environment after startup.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Required variables are
// enforced by must(); optional ones fall back to defaults that match the
// development setup.
type Config struct {
	Env     string // application environment (dev/test/prod)
	Port    string // HTTP port to listen on
	AppName string // issuer claim in tokens

	DBUser string
	DBPass string // optional, empty allowed
	DBHost string
	DBPort string
	DBName string

	JWTSecret     string // secret used to sign JWTs
	AccessTTLMin  int    // access token time-to-live in minutes
	RefreshTTLMin int    // refresh token time-to-live in minutes (3 days by default)
	BcryptCost    int    // bcrypt cost for password hashing

	AMQPURL string // RabbitMQ broker, empty disables event publishing
}

// Load reads the environment and returns a Config. Missing required
// variables abort startup with a fatal log message.
func Load() Config {
	return Config{
		Env:           envStr("APP_ENV", "dev"),
		Port:          envStr("APP_PORT", "8000"),
		AppName:       envStr("APP_NAME", "hotel_california"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 30),
		RefreshTTLMin: envInt("REFRESH_TOKEN_TTL_MIN", 4320),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		AMQPURL:       os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
