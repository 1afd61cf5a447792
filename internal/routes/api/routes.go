package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	// Rule routes
	apiGroup.Post("/moves", LegalMoves)
	apiGroup.Post("/apply", ApplyMove)
	apiGroup.Post("/score", Score)

	// Search routes
	apiGroup.Post("/best-move", BestMove)
}

func getConfig(c *fiber.Ctx) *config.ServerConfig {
	return c.Locals("config").(*config.ServerConfig) //nolint:errcheck
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
