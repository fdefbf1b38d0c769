package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	CORSOrigin          string
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:algorecall.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		CORSOrigin:          envOr("CORS_ORIGIN", "*"),
		ReadTimeoutSeconds:  envIntOr("READ_TIMEOUT_SECONDS", 15),
		WriteTimeoutSeconds: envIntOr("WRITE_TIMEOUT_SECONDS", 30),
	}
}

// Validate checks the loaded configuration for values that would prevent the
// server from starting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.ReadTimeoutSeconds <= 0 {
		return fmt.Errorf("READ_TIMEOUT_SECONDS must be positive")
	}
	if c.WriteTimeoutSeconds <= 0 {
		return fmt.Errorf("WRITE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
