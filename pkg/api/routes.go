// Route registration for the items API.

package api

import (
	"net/http"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Service probes
	mux.HandleFunc("GET /{$}", a.handleRoot)
	mux.HandleFunc("GET /health", a.handleHealth)

	// Item resource
	mux.HandleFunc("GET /items/", a.handleListItems)
	mux.HandleFunc("POST /items/", a.handleCreateItem)
	mux.HandleFunc("GET /items/{id}", a.handleGetItem)
	mux.HandleFunc("PUT /items/{id}", a.handleUpdateItem)
	mux.HandleFunc("DELETE /items/{id}", a.handleDeleteItem)
}
