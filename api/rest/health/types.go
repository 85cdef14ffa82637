package health

// Response represents the connection check response
type Response struct {
	Status string `json:"status"`
}
