package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/codegen/server/internal/config"
	"codeberg.org/codegen/server/internal/logger"
)

// @title Codegen API
// @version 1.0
// @description Forwards prompts to a chat completion gateway and keeps a history of the exchanges

// @contact.name API Support
// @contact.url https://codeberg.org/codegen/server

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Configure(cfg.Environment, nil)
	logger.Info("starting codegen server", "environment", cfg.Environment)

	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	logger.Info("server stopped")
}
