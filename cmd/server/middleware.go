package main

import (
	"time"

	"codeberg.org/codegen/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const requestIDHeader = "X-Request-ID"

// tags each request with an id, reusing one supplied by the caller
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		reqLogger := logger.With("request_id", id)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))

		c.Next()
	}
}

// logs one line per request once the handler chain has finished
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		log := logger.FromContext(c.Request.Context())
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			log.Error("request completed", args...)
		case status >= 400:
			log.Warn("request completed", args...)
		default:
			log.Info("request completed", args...)
		}
	}
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || lo.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
