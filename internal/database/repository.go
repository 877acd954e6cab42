package database

import "database/sql"

// DataStore is everything the services need from storage. Tests swap it for
// a stub through app.WithDataStore.
type DataStore interface {
	FiliereRepository
}

// Repository is the sqlite DataStore
type Repository struct {
	*FiliereRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository wraps an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{FiliereRepo: &FiliereRepo{db: db}}
}
