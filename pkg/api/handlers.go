package api

import (
	"encoding/json"
	"net/http"
)

// Safe error messages for client responses. Unexpected failures are logged
// server-side in full; clients only see these.
const (
	// ErrMsgInternalError is returned for unexpected internal errors.
	ErrMsgInternalError = "an internal error occurred"

	// ErrMsgInvalidJSON is returned for JSON parsing errors.
	ErrMsgInvalidJSON = "invalid JSON in request body"

	// ErrMsgItemNotFound is returned when the referenced item does not exist.
	ErrMsgItemNotFound = "item not found"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, errCode, detail string) {
	writeJSON(w, status, ErrorResponse{
		Error:  errCode,
		Detail: detail,
	})
}

// handleRoot handles GET /.
func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "Items CRUD API",
	})
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}
