// Package testutil provides database and command helpers shared by tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/filieres/internal/app"
	"github.com/thenoetrevino/filieres/internal/database"
	"github.com/thenoetrevino/filieres/internal/models"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestApp returns an App backed by a fresh in-memory database
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(SetupTestDB(t))
}

// CreateTestFiliere stores a filière through the service and returns it
func CreateTestFiliere(t *testing.T, a *app.App, code, intitule, secteur string, groupes ...string) *models.Filiere {
	t.Helper()

	f, err := a.FiliereService.CreateFiliere(context.Background(), filiereservice.CreateFiliereRequest{
		CodeFiliere:     code,
		IntituleFiliere: intitule,
		Secteur:         secteur,
		Groupes:         groupes,
	})
	if err != nil {
		t.Fatalf("Failed to create test filiere %s: %v", code, err)
	}
	return f
}
