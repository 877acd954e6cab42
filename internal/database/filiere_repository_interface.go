package database

import (
	"context"

	"github.com/thenoetrevino/filieres/internal/models"
)

// FiliereRepository defines filière persistence operations
type FiliereRepository interface {
	CreateFiliere(ctx context.Context, f models.Filiere) (*models.Filiere, error)
	GetFiliereByID(ctx context.Context, id string) (*models.Filiere, error)
	GetAllFilieres(ctx context.Context) ([]*models.Filiere, error)
	UpdateFiliere(ctx context.Context, f models.Filiere) error
	DeleteFiliere(ctx context.Context, id string) error
	CountFilieres(ctx context.Context) (int, error)
}

var _ DataStore = (*Repository)(nil)
