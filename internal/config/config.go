package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:"0.0.0.0:8080"`
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	RedisURL        string        `envconfig:"REDIS_URL"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development. Empty DATABASE_URL and REDIS_URL select the
// in-memory store and session backends.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	return &cfg, nil
}
