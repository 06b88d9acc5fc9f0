package config

import (
	"os"
	"strings"
)

// Config holds all runtime settings, read once at startup from the
// environment (after godotenv has loaded any .env file).
type Config struct {
	DBDriver   string // "sqlite" or "mysql"
	SQLitePath string

	DBHost     string
	DBPort     string
	DBDatabase string
	DBUsername string
	DBPassword string

	ServerPort  string
	GinMode     string
	Environment string
	DebugSQL    bool
}

// Load builds a Config from environment variables, applying the
// defaults for a local single-user deployment.
func Load() *Config {
	cfg := &Config{
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		SQLitePath:  getEnv("SQLITE_PATH", "investment_ideas.db"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBDatabase:  os.Getenv("DB_DATABASE"),
		DBUsername:  os.Getenv("DB_USERNAME"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		Environment: strings.ToLower(os.Getenv("ENVIRONMENT")),
		DebugSQL:    strings.ToLower(os.Getenv("DEBUG_SQL")) == "true",
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
