// Package app wires the storage layer to the services used by the TUI and
// the CLI.
package app

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/filieres/internal/database"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// App holds all application services and provides dependency injection.
type App struct {
	db   *sql.DB
	repo database.DataStore

	FiliereService filiereservice.Service
}

// New creates a new App on top of an open database.
func New(db *sql.DB, opts ...Option) *App {
	cfg := appConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := cfg.store
	if repo == nil {
		repo = database.NewRepository(db)
	}

	return &App{
		db:             db,
		repo:           repo,
		FiliereService: filiereservice.NewService(repo),
	}
}

// Count returns the number of stored filières
func (a *App) Count(ctx context.Context) (int, error) {
	return a.repo.CountFilieres(ctx)
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
