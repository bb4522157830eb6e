// Package config loads gridpath settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	LogLevel  string // logrus level name (debug, info, warn, ...)
	LogFormat string // "json" or "text"
	HTTPAddr  string // listen address for gridpathd
	GinMode   string // gin mode: release, debug, test
	BaseURL   string // prefix for HTTP routes
	Heuristic string // default heuristic name for searches
	CellSize  int    // PNG cell size in pixels
	Workers   int    // parallel searches for batch requests
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		HTTPAddr:  ":8080",
		GinMode:   "release",
		BaseURL:   "/api/v1",
		Heuristic: "blended",
		CellSize:  30,
		Workers:   runtime.NumCPU(),
	}
}

// Load reads a .env file if present and then the process environment.
// A missing .env file is not an error; a malformed integer is.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over Default().
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		LogLevel:  getEnvWithDefault("LOG_LEVEL", def.LogLevel),
		LogFormat: getEnvWithDefault("LOG_FORMAT", def.LogFormat),
		HTTPAddr:  getEnvWithDefault("GRIDPATH_ADDR", def.HTTPAddr),
		GinMode:   getEnvWithDefault("GIN_MODE", def.GinMode),
		BaseURL:   getEnvWithDefault("GRIDPATH_BASE_URL", def.BaseURL),
		Heuristic: getEnvWithDefault("GRIDPATH_HEURISTIC", def.Heuristic),
	}

	var err error
	if cfg.CellSize, err = getEnvAsInt("GRIDPATH_CELL_SIZE", def.CellSize); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvAsInt("GRIDPATH_WORKERS", def.Workers); err != nil {
		return Config{}, err
	}
	if cfg.CellSize < 1 {
		return Config{}, fmt.Errorf("config: GRIDPATH_CELL_SIZE must be positive, got %d", cfg.CellSize)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("config: GRIDPATH_WORKERS must be positive, got %d", cfg.Workers)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or the default if unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}
