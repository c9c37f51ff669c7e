package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/catchup-chat/catchup/internal/auth"
)

// Config holds all configuration for the application.
type Config struct {
	Port string
	Env  string

	// ChatAPIURL is the base URL of the workspace chat API.
	ChatAPIURL string
	// CredentialsFile is the path to the OAuth token file.
	CredentialsFile string
	// GatewayToken guards the tool routes when set.
	GatewayToken string
	// UpstreamRPS paces requests to the chat API. Zero disables pacing.
	UpstreamRPS float64
}

// Load reads configuration from environment variables.
// In development, it loads from .env file if present.
// In production, it panics on missing required variables.
func Load() *Config {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		ChatAPIURL:      getEnv("CHAT_API_URL", "https://chat.googleapis.com"),
		CredentialsFile: getEnv("CHAT_CREDENTIALS_FILE", auth.DefaultTokenPath()),
		GatewayToken:    os.Getenv("GATEWAY_TOKEN"),
	}

	if rps := os.Getenv("UPSTREAM_RPS"); rps != "" {
		parsed, err := strconv.ParseFloat(rps, 64)
		if err != nil || parsed < 0 {
			panic("UPSTREAM_RPS must be a non-negative number")
		}
		cfg.UpstreamRPS = parsed
	}

	// In production, an unauthenticated gateway is almost always a mistake
	if cfg.Env == "production" && cfg.GatewayToken == "" {
		panic("GATEWAY_TOKEN is required in production")
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
