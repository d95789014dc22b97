// Package config loads xword's runtime configuration from environment
// variables, following the same godotenv + getEnv pattern the original
// server command used.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the environment-derived configuration shared by every
// xword subcommand.
type Config struct {
	DictionaryDir string
	PostgresURL   string // optional; empty disables puzzle persistence
	RedisURL      string // optional; empty disables candidate-query caching
	MetricsDBPath string // sqlite path for solve run history

	DefaultSize       int
	DefaultDifficulty string
}

// Load reads a .env file if present, then environment variables, and
// fills in the documented defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DictionaryDir:     getEnv("XWORD_DICTIONARY_DIR", "dictionary"),
		PostgresURL:       os.Getenv("XWORD_DATABASE_URL"),
		RedisURL:          os.Getenv("XWORD_REDIS_URL"),
		MetricsDBPath:     getEnv("XWORD_METRICS_DB", "xword_metrics.db"),
		DefaultSize:       getEnvInt("XWORD_DEFAULT_SIZE", 13),
		DefaultDifficulty: getEnv("XWORD_DEFAULT_DIFFICULTY", "medium"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
