package main

import (
	"codeberg.org/codegen/server/codegen/history"
	"codeberg.org/codegen/server/internal/agent"
	"codeberg.org/codegen/server/internal/config"
	"codeberg.org/codegen/server/internal/llm"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, repo history.Repository) *Services {
	llmClient := llm.NewClient(llm.ConfigFrom(cfg))

	return &Services{
		Agent:   agent.New(llmClient, repo),
		History: repo,
	}
}
