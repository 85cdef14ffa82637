package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return Parse()
}

// parses the current process environment into a Config
func Parse() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.LLMAPIBase = strings.TrimRight(cfg.LLMAPIBase, "/")

	if cfg.LLMAPIBase == "" {
		return nil, fmt.Errorf("LLM_API_BASE must not be empty")
	}

	if cfg.LLMModel == "" {
		return nil, fmt.Errorf("LLM_MODEL must not be empty")
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}

	if cfg.LLMRequestsPerSecond < 0 {
		return nil, fmt.Errorf("LLM_REQUESTS_PER_SECOND must not be negative")
	}

	return &cfg, nil
}
