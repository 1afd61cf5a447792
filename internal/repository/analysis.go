package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	AnalysisKeyPrefix = "analysis"
)

// AnalysisKey identifies a search request. Search results are a pure
// function of these fields.
type AnalysisKey struct {
	Board othello.Board
	Side  othello.Side
	Depth int
}

// String returns the Redis key.
func (k AnalysisKey) String() string {
	return fmt.Sprintf("%s:%s:%s:%d", AnalysisKeyPrefix, k.Board.String(), k.Side, k.Depth)
}

// AnalysisRepository caches best-move responses in Redis. Without a Redis
// connection every lookup misses and every store is a no-op.
type AnalysisRepository struct {
	services *services.Services
	ttl      time.Duration
}

// NewAnalysisRepository creates a repository from the services stored in the fiber context.
func NewAnalysisRepository(c *fiber.Ctx, ttl time.Duration) *AnalysisRepository {
	return NewAnalysisRepositoryFromServices(c.Locals("services").(*services.Services), ttl) //nolint:errcheck
}

// NewAnalysisRepositoryFromServices creates a repository from services directly.
func NewAnalysisRepositoryFromServices(services *services.Services, ttl time.Duration) *AnalysisRepository {
	return &AnalysisRepository{
		services: services,
		ttl:      ttl,
	}
}

// Enabled returns whether a cache backend is configured.
func (repo *AnalysisRepository) Enabled() bool {
	return repo.services != nil && repo.services.Redis != nil
}

// Lookup returns a cached response. The boolean is false on a cache miss.
func (repo *AnalysisRepository) Lookup(ctx context.Context, key AnalysisKey) (models.BestMoveResponse, bool, error) {
	if !repo.Enabled() {
		return models.BestMoveResponse{}, false, nil
	}

	jsonData, err := repo.services.Redis.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.BestMoveResponse{}, false, nil
		}
		return models.BestMoveResponse{}, false, fmt.Errorf("error getting analysis from Redis: %w", err)
	}

	var response models.BestMoveResponse
	if err := json.Unmarshal(jsonData, &response); err != nil {
		return models.BestMoveResponse{}, false, fmt.Errorf("error unmarshaling analysis: %w", err)
	}

	return response, true, nil
}

// Store saves a response with the configured TTL.
func (repo *AnalysisRepository) Store(ctx context.Context, key AnalysisKey, response models.BestMoveResponse) error {
	if !repo.Enabled() {
		return nil
	}

	// The id belongs to the request that computed it.
	response.ID = ""
	response.Cached = false

	jsonData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshaling analysis: %w", err)
	}

	if err := repo.services.Redis.Set(ctx, key.String(), jsonData, repo.ttl).Err(); err != nil {
		return fmt.Errorf("error storing analysis in Redis: %w", err)
	}

	return nil
}
