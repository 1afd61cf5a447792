package services

import (
	"github.com/lk16/reversi/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
type Services struct {
	// Redis is nil when no Redis URL is configured.
	Redis *redis.Client
}

// InitServices connects to all configured services.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	if cfg.RedisURL == "" {
		return &Services{}, nil
	}

	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Redis: redis,
	}, nil
}
