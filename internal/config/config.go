package config

import (
	"fmt"
	"log"
	"os"
)

// Config is loaded once at startup and held immutably for the process
// lifetime. The JWT secret in particular is never reloaded.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseDSN: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "spareparts"),
			getEnv("DB_PORT", "5432"),
		)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
