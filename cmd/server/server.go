package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/codegen/server/codegen/history"
	"codeberg.org/codegen/server/internal/config"
	"codeberg.org/codegen/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, err := history.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	server := &Server{
		config:   cfg,
		services: InitializeServices(cfg, repo),
		router:   gin.New(),
	}

	if err := RegisterRoutes(server.router, server); err != nil {
		repo.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	server.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // covers the 60s gateway timeout
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// serves until the listener fails or Shutdown is called
func (s *Server) ListenAndServe() error {
	logger.Info("server listening", "addr", s.httpServer.Addr, "model", s.services.Agent.Model())

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// stops accepting requests, waits for in-flight ones and closes the history store
func (s *Server) Shutdown(ctx context.Context) error {
	var result *multierror.Error

	if err := s.httpServer.Shutdown(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("http server: %w", err))
	}

	if err := s.services.History.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("history store: %w", err))
	}

	return result.ErrorOrNil()
}
