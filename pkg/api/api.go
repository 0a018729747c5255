package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getitemd/itemd/pkg/logging"
	"github.com/getitemd/itemd/pkg/store"
)

// API serves the items REST endpoints.
type API struct {
	store      store.ItemStore
	httpServer *http.Server
	port       int
	log        *slog.Logger
}

// New creates a new API listening on port. The store defaults to an
// in-memory backend; production callers pass WithStore.
func New(port int, opts ...Option) *API {
	a := &API{
		port: port,
		log:  logging.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		a.store = store.NewMemoryStore()
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.withMiddleware(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return a
}

// Start begins serving in the background.
func (a *API) Start() error {
	a.log.Info("starting items API", "port", a.port)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("items API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// Handler returns the fully wired HTTP handler, middleware included.
// Exposed for tests and embedding.
func (a *API) Handler() http.Handler {
	return a.httpServer.Handler
}
