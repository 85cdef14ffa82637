package errors

import (
	"net/http"
	"strconv"

	"codeberg.org/codegen/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for request-ending errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//     (e.g. a failed history write after a successful generation)
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Do not log errors in non-handler code

// standard error codes
const (
	CodeValidationError   = "validation_error"
	CodeServerError       = "server_error"
	CodeBadRequest        = "bad_request"
	CodeLLMAPIError       = "llm_api_error"
	CodeLLMResponseFormat = "llm_response_format"
)

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 for a missing or malformed form field
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := ""

	if err != nil {
		info := classifyError(err)
		details = info.sanitized

		if info.category == CategoryValidation {
			message = "request validation failed"
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", c.GetString("request_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 500 for a failed or malformed gateway exchange.
// prefix is prepended to the cause, e.g. "LLM API error"
func UpstreamError(c *gin.Context, code, prefix string, err error) {
	cause := ""
	if err != nil {
		cause = err.Error()
	}

	logger.ErrorErr(err, "upstream call failed",
		"code", code,
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   code,
		Message: prefix + ": " + cause,
	})
}

// parses an integer path parameter, responding 400 when it is not one
func ParsePathInt(c *gin.Context, paramName string) (int64, bool) {
	raw := c.Param(paramName)

	if raw == "" {
		BadRequest(c, "missing "+paramName, nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		BadRequest(c, "invalid "+paramName, err)
		return 0, false
	}

	return id, true
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	return classifyError(err).sanitized
}
