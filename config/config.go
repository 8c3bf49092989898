package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds engine defaults for the CLI. Every value can be overridden
// per invocation with command flags.
type Config struct {
	Seed                 int64
	MaxPools             int
	NumberOfCourts       int
	MatchDurationMinutes int
	BreakMinutes         int
}

// Load reads configuration from the environment. A local .env file is
// picked up when present; a missing one is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Seed:                 42,
		MaxPools:             4,
		NumberOfCourts:       2,
		MatchDurationMinutes: 25,
		BreakMinutes:         5,
	}

	var err error
	if cfg.Seed, err = int64Env("ENGINE_SEED", cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.MaxPools, err = intEnv("ENGINE_MAX_POOLS", cfg.MaxPools); err != nil {
		return nil, err
	}
	if cfg.NumberOfCourts, err = intEnv("ENGINE_COURTS", cfg.NumberOfCourts); err != nil {
		return nil, err
	}
	if cfg.MatchDurationMinutes, err = intEnv("ENGINE_MATCH_MINUTES", cfg.MatchDurationMinutes); err != nil {
		return nil, err
	}
	if cfg.BreakMinutes, err = intEnv("ENGINE_BREAK_MINUTES", cfg.BreakMinutes); err != nil {
		return nil, err
	}

	if cfg.NumberOfCourts < 1 {
		return nil, fmt.Errorf("ENGINE_COURTS must be at least 1, got %d", cfg.NumberOfCourts)
	}
	if cfg.MaxPools < 1 {
		return nil, fmt.Errorf("ENGINE_MAX_POOLS must be at least 1, got %d", cfg.MaxPools)
	}
	if cfg.MatchDurationMinutes < 1 {
		return nil, fmt.Errorf("ENGINE_MATCH_MINUTES must be positive, got %d", cfg.MatchDurationMinutes)
	}
	if cfg.BreakMinutes < 0 {
		return nil, fmt.Errorf("ENGINE_BREAK_MINUTES must not be negative, got %d", cfg.BreakMinutes)
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
