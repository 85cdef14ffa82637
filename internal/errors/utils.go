package errors

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
)

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	isProduction := os.Getenv("ENVIRONMENT") == "production"
	info := func(category, sanitized string) ErrorInfo {
		return ErrorInfo{
			category:  category,
			sanitized: lo.Ternary(isProduction, sanitized, err.Error()),
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return info(CategoryDatabase, "database operation failed")
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return info(CategoryNotFound, "resource not found")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return info(CategoryTimeout, "request timed out")
	}

	if errors.Is(err, context.Canceled) {
		return info(CategoryTimeout, "request canceled")
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline"):
		return info(CategoryTimeout, "request timed out")

	case strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows"):
		return info(CategoryNotFound, "resource not found")

	case strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "pgx"):
		return info(CategoryDatabase, "database operation failed")

	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial"):
		return info(CategoryNetwork, "connection error occurred")

	case strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "required"):
		return info(CategoryValidation, "validation failed")
	}

	return info(CategoryUnknown, "an error occurred")
}
