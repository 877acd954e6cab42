package app

import "github.com/thenoetrevino/filieres/internal/database"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store database.DataStore
}

// WithDataStore replaces the sqlite repository, typically with a stub in tests
func WithDataStore(store database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}
