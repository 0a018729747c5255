package api

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
}
