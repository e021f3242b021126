// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const minSecretLength = 32

// Config holds the application configuration. It is read once at startup
// and treated as immutable.
type Config struct {
	Port         string
	DatabasePath string

	// JWTSecret signs bearer tokens. Rotating it invalidates every
	// outstanding token.
	JWTSecret string
	TokenTTL  time.Duration

	BcryptCost int

	CORSAllowedOrigin string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present. Missing or out-of-range
// required values return an error.
func Load() (*Config, error) {
	// Absence of a .env file is not an error; the environment may be set
	// by the deployment instead.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              envOrDefault("PORT", "8080"),
		DatabasePath:      envOrDefault("DATABASE_PATH", "pitchside.db"),
		CORSAllowedOrigin: envOrDefault("CORS_ALLOWED_ORIGIN", "*"),
		TokenTTL:          24 * time.Hour,
		BcryptCost:        12,
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", minSecretLength)
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be positive")
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
