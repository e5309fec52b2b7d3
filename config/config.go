package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. Everything has a sane
// default; a .env file or environment variables override.
type Config struct {
	LogLevel      string
	LogPath       string // empty = console only
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	OutputDir     string // empty = next to the input (or the working directory for merge)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or
// defaults. godotenv.Load() will not override variables already set in the
// environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables and defaults.")
	}

	return &Config{
		LogLevel:      getEnv("MMG_LOG_LEVEL", "info"),
		LogPath:       getEnv("MMG_LOG_PATH", ""),
		LogMaxSizeMB:  getEnvInt("MMG_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("MMG_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("MMG_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("MMG_LOG_COMPRESS", false),
		OutputDir:     getEnv("MMG_OUTPUT_DIR", ""),
	}
}
