package main

import (
	"codeberg.org/codegen/server/api/rest/docs"
	"codeberg.org/codegen/server/api/rest/generate"
	"codeberg.org/codegen/server/api/rest/health"
	"codeberg.org/codegen/server/api/rest/history"
	"codeberg.org/codegen/server/api/rest/pages"
	"github.com/gin-gonic/gin"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggerMiddleware(),
		CORSMiddleware(server.config.CORSOrigins),
	)

	if err := pages.RegisterRoutes(router, server.services.Agent.Model()); err != nil {
		return err
	}

	generate.RegisterRoutes(router, server.services.Agent)
	history.RegisterRoutes(router, server.services.History)
	health.RegisterRoutes(router)
	docs.RegisterRoutes(router)

	return nil
}
