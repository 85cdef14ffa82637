package main

import (
	"net/http"

	"codeberg.org/codegen/server/codegen/history"
	"codeberg.org/codegen/server/internal/agent"
	"codeberg.org/codegen/server/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	services   *Services
	router     *gin.Engine
	httpServer *http.Server
}

// holds the clients request handlers depend on
type Services struct {
	Agent   *agent.Agent
	History history.Repository
}
