package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by LoadEnvFile when no file is given.
const DefaultEnvFile = ".env"

// LoadEnvFile copies variables from an env file into the environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(filename string) error {
	if filename == "" {
		filename = DefaultEnvFile
	}

	err := godotenv.Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No env file found", "file", filename)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading env file %s: %w", filename, err)
	}

	return nil
}
