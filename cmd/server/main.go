package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

func main() {
	envFile := flag.String("env-file", config.DefaultEnvFile, "file with environment variables")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		slog.Error("Failed to load env file", "error", err)
		os.Exit(1)
	}

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
