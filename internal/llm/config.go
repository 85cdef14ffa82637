package llm

import "codeberg.org/codegen/server/internal/config"

// builds the gateway client configuration from process settings
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		BaseURL:           cfg.LLMAPIBase,
		Model:             cfg.LLMModel,
		APIKey:            cfg.LLMAPIKey,
		RequestsPerSecond: cfg.LLMRequestsPerSecond,
	}
}
