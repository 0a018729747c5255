package api

import (
	"log/slog"

	"github.com/getitemd/itemd/pkg/logging"
	"github.com/getitemd/itemd/pkg/store"
)

// Option configures the API.
type Option func(*API)

// WithStore sets the persistence gateway the handlers operate on.
func WithStore(s store.ItemStore) Option {
	return func(a *API) {
		a.store = s
	}
}

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		} else {
			a.log = logging.Nop()
		}
	}
}
