package internal

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 60 * time.Second // Deep searches can take a while
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// SetupApp loads the configuration from the environment, connects to the
// configured services and builds the app. It exits on failure.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	return NewApp(cfg, services), cfg
}

// NewApp builds the fiber app for the given configuration and services.
func NewApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Request ids are used by the logging middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
