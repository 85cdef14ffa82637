package errors

// standardized JSON error body
type ErrorResponse struct {
	Error   string `json:"error"`             // machine-readable code, e.g. "llm_api_error"
	Message string `json:"message"`           // human-readable message
	Details string `json:"details,omitempty"` // sanitized in production
}

type ErrorInfo struct {
	category  string
	sanitized string
}
