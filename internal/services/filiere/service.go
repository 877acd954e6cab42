// Package filiere implements the business operations on filières.
package filiere

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/filieres/internal/database"
	"github.com/thenoetrevino/filieres/internal/models"
)

// Service defines all filière-related business operations
type Service interface {
	// Read operations
	GetAllFilieres(ctx context.Context) ([]*models.Filiere, error)
	GetFiliereByID(ctx context.Context, id string) (*models.Filiere, error)

	// Write operations
	CreateFiliere(ctx context.Context, req CreateFiliereRequest) (*models.Filiere, error)
	UpdateFiliere(ctx context.Context, req UpdateFiliereRequest) (*models.Filiere, error)
	DeleteFiliere(ctx context.Context, id string) error
}

// CreateFiliereRequest encapsulates data for creating a filière
type CreateFiliereRequest struct {
	CodeFiliere     string
	IntituleFiliere string
	Secteur         string
	Groupes         []string
}

// UpdateFiliereRequest encapsulates data for updating a filière.
// Nil fields keep their stored value.
type UpdateFiliereRequest struct {
	ID              string
	CodeFiliere     *string
	IntituleFiliere *string
	Secteur         *string
	Groupes         *[]string
}

// FromRecord builds a full-replacement update request from a record.
func FromRecord(f models.Filiere) UpdateFiliereRequest {
	groupes := f.Groupes
	return UpdateFiliereRequest{
		ID:              f.ID,
		CodeFiliere:     &f.CodeFiliere,
		IntituleFiliere: &f.IntituleFiliere,
		Secteur:         &f.Secteur,
		Groupes:         &groupes,
	}
}

// repository defines the data access methods needed by the filière service
// This interface is private to the service layer
type repository interface {
	CreateFiliere(ctx context.Context, f models.Filiere) (*models.Filiere, error)
	GetFiliereByID(ctx context.Context, id string) (*models.Filiere, error)
	GetAllFilieres(ctx context.Context) ([]*models.Filiere, error)
	UpdateFiliere(ctx context.Context, f models.Filiere) error
	DeleteFiliere(ctx context.Context, id string) error
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new filière service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllFilieres retrieves all filières
func (s *service) GetAllFilieres(ctx context.Context) ([]*models.Filiere, error) {
	return s.repo.GetAllFilieres(ctx)
}

// GetFiliereByID retrieves a specific filière
func (s *service) GetFiliereByID(ctx context.Context, id string) (*models.Filiere, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidFiliereID
	}
	f, err := s.repo.GetFiliereByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return f, nil
}

// CreateFiliere stores a new filière. Field content is checked by the
// callers (form and CLI); the service only guards identity and uniqueness.
func (s *service) CreateFiliere(ctx context.Context, req CreateFiliereRequest) (*models.Filiere, error) {
	groupes := req.Groupes
	if groupes == nil {
		groupes = []string{}
	}

	f, err := s.repo.CreateFiliere(ctx, models.Filiere{
		CodeFiliere:     req.CodeFiliere,
		IntituleFiliere: req.IntituleFiliere,
		Secteur:         req.Secteur,
		Groupes:         groupes,
	})
	if err != nil {
		slog.Error("Error creating filiere", "code", req.CodeFiliere, "error", err)
		return nil, translate(err)
	}

	slog.Info("Filiere created", "id", f.ID, "code", f.CodeFiliere)
	return f, nil
}

// UpdateFiliere updates an existing filière and returns the stored result
func (s *service) UpdateFiliere(ctx context.Context, req UpdateFiliereRequest) (*models.Filiere, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, ErrInvalidFiliereID
	}

	// Get existing filière to fill in missing fields
	existing, err := s.repo.GetFiliereByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err)
	}

	updated := *existing
	if req.CodeFiliere != nil {
		updated.CodeFiliere = *req.CodeFiliere
	}
	if req.IntituleFiliere != nil {
		updated.IntituleFiliere = *req.IntituleFiliere
	}
	if req.Secteur != nil {
		updated.Secteur = *req.Secteur
	}
	if req.Groupes != nil {
		updated.Groupes = *req.Groupes
	}

	if err := s.repo.UpdateFiliere(ctx, updated); err != nil {
		slog.Error("Error updating filiere", "id", req.ID, "error", err)
		return nil, translate(err)
	}

	slog.Info("Filiere updated", "id", req.ID)

	f, err := s.repo.GetFiliereByID(ctx, req.ID)
	if err != nil {
		return nil, translate(err)
	}
	return f, nil
}

// DeleteFiliere deletes a filière and its groups
func (s *service) DeleteFiliere(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidFiliereID
	}
	if err := s.repo.DeleteFiliere(ctx, id); err != nil {
		slog.Error("Error deleting filiere", "id", id, "error", err)
		return translate(err)
	}
	slog.Info("Filiere deleted", "id", id)
	return nil
}

// translate maps repository errors onto the service's sentinel errors
func translate(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrFiliereNotFound
	case errors.Is(err, database.ErrDuplicateCode):
		return ErrDuplicateCode
	default:
		return fmt.Errorf("%w: %w", errStorage, err)
	}
}
