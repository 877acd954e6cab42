package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS filieres (
			id TEXT PRIMARY KEY,
			code_filiere TEXT NOT NULL UNIQUE,
			intitule_filiere TEXT NOT NULL,
			secteur TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Groups keep their entry order; duplicates are allowed, so the key is
	// the position and not the name.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS filiere_groupes (
			filiere_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			nom TEXT NOT NULL,
			PRIMARY KEY (filiere_id, position),
			FOREIGN KEY (filiere_id) REFERENCES filieres(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_filieres_secteur
		ON filieres(secteur)
	`)
	return err
}
