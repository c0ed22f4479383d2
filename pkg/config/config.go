package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
// It is built once at startup and injected; nothing reads env vars after Load.
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	AIProvider  string
	AIAPIKey    string
	AIModel     string
	LogLevel    string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("POSTGRES_URL"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    30 * time.Minute,
		AIProvider:  os.Getenv("AI_PROVIDER"),
		AIAPIKey:    os.Getenv("AI_API_KEY"),
		AIModel:     os.Getenv("AI_MODEL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.AIProvider == "" {
		cfg.AIProvider = "gemini"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("POSTGRES_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}
