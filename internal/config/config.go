package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DefaultMaxDepth      = 6
	DefaultSearchWorkers = 1
	DefaultCacheTTL      = time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost string
	ServerPort string

	// RedisURL is optional, the analysis cache is disabled when it is empty.
	RedisURL string

	// Token is optional, requests need a matching x-token header when set.
	Token string

	// MaxDepth is the deepest search a request may ask for.
	MaxDepth int

	// SearchWorkers is the number of goroutines evaluating root moves.
	SearchWorkers int

	CacheTTL time.Duration
	Prefork  bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:    getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:    getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:      os.Getenv("REVERSI_REDIS_URL"),
		Token:         os.Getenv("REVERSI_TOKEN"),
		MaxDepth:      getEnvInt("REVERSI_MAX_DEPTH", DefaultMaxDepth),
		SearchWorkers: getEnvInt("REVERSI_SEARCH_WORKERS", DefaultSearchWorkers),
		CacheTTL:      getEnvDuration("REVERSI_CACHE_TTL", DefaultCacheTTL),
		Prefork:       getEnvBool("REVERSI_PREFORK", false),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a non-negative integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
