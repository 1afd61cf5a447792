package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/search"
)

// BestMove runs a search, using the analysis cache when available.
// Cache errors are logged and otherwise ignored.
func BestMove(c *fiber.Ctx) error {
	var payload models.BestMovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cfg := getConfig(c)

	if err := payload.Validate(cfg.MaxDepth); err != nil {
		return badRequest(c, err)
	}

	board, side, err := payload.Parse()
	if err != nil {
		return badRequest(c, err)
	}

	requestID := middleware.GetRequestID(c)
	key := repository.AnalysisKey{Board: board, Side: side, Depth: payload.Depth}
	repo := repository.NewAnalysisRepository(c, cfg.CacheTTL)

	cached, found, err := repo.Lookup(c.Context(), key)
	if err != nil {
		slog.Warn("Analysis cache lookup failed", "error", err, "request_id", requestID)
	}

	if found {
		cached.ID = requestID
		cached.Cached = true
		return c.Status(fiber.StatusOK).JSON(cached)
	}

	bot := search.NewBot(search.WithWorkers(cfg.SearchWorkers))
	response := models.BestMoveResponse{
		ID:    requestID,
		Depth: payload.Depth,
	}

	result, err := bot.Analyze(board, side, payload.Depth)
	switch {
	case errors.Is(err, search.ErrNoLegalMoves):
		// No move is a valid answer, the caller has to pass.
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		move := models.NewMoveResponse(result.Move)
		response.Move = &move
		response.Score = &result.Score
		response.Depth = result.Depth
		response.Nodes = result.Nodes
	}

	if err := repo.Store(c.Context(), key, response); err != nil {
		slog.Warn("Analysis cache store failed", "error", err, "request_id", requestID)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
