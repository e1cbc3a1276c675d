package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"inventory/models"
)

// Config is the immutable process configuration, built once at startup and
// injected into the components that need it.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	TokenExpiry time.Duration
	Admins      []models.Credential
}

// Load reads the environment (optionally seeded from a .env file) and fails
// fast when the signing secret or store connection parameters are absent.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenExpiry: 24 * time.Hour,
	}

	if cfg.MongoURI == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("MONGO_URI and DB_NAME must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		expiry, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY %q: %w", v, err)
		}
		cfg.TokenExpiry = expiry
	}

	for _, prefix := range []string{"ADMIN1", "ADMIN2"} {
		username := os.Getenv(prefix + "_USERNAME")
		password := os.Getenv(prefix + "_PASSWORD")
		if username == "" || password == "" {
			continue
		}
		cfg.Admins = append(cfg.Admins, models.Credential{
			Username: username,
			Password: password,
			IsAdmin:  true,
		})
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
