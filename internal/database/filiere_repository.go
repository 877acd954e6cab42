package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/filieres/internal/models"
)

// FiliereRepo handles all filière-related database operations.
type FiliereRepo struct {
	db *sql.DB
}

// CreateFiliere inserts a new filière with its groups and returns the stored
// record. The id is generated here; any id on f is ignored.
func (r *FiliereRepo) CreateFiliere(ctx context.Context, f models.Filiere) (*models.Filiere, error) {
	id := uuid.NewString()

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO filieres (id, code_filiere, intitule_filiere, secteur) VALUES (?, ?, ?, ?)`,
			id, f.CodeFiliere, f.IntituleFiliere, f.Secteur,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("failed to insert filiere '%s': %w", f.CodeFiliere, ErrDuplicateCode)
			}
			return fmt.Errorf("failed to insert filiere '%s': %w", f.CodeFiliere, err)
		}
		return insertGroupes(ctx, tx, id, f.Groupes)
	})
	if err != nil {
		return nil, err
	}

	return r.GetFiliereByID(ctx, id)
}

// GetFiliereByID retrieves a filière and its groups
func (r *FiliereRepo) GetFiliereByID(ctx context.Context, id string) (*models.Filiere, error) {
	f := &models.Filiere{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, code_filiere, intitule_filiere, secteur, created_at, updated_at FROM filieres WHERE id = ?`,
		id,
	).Scan(&f.ID, &f.CodeFiliere, &f.IntituleFiliere, &f.Secteur, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get filiere %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get filiere %s: %w", id, err)
	}

	groupes, err := r.groupesByFiliere(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Groupes = groupes

	return f, nil
}

// GetAllFilieres retrieves all filières ordered by code
func (r *FiliereRepo) GetAllFilieres(ctx context.Context) ([]*models.Filiere, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, code_filiere, intitule_filiere, secteur, created_at, updated_at FROM filieres ORDER BY code_filiere`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query all filieres: %w", err)
	}
	defer closeRows(rows)

	filieres := []*models.Filiere{}
	byID := make(map[string]*models.Filiere)
	for rows.Next() {
		f := &models.Filiere{Groupes: []string{}}
		if err := rows.Scan(&f.ID, &f.CodeFiliere, &f.IntituleFiliere, &f.Secteur, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan filiere: %w", err)
		}
		filieres = append(filieres, f)
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating filieres: %w", err)
	}

	groupRows, err := r.db.QueryContext(ctx,
		`SELECT filiere_id, nom FROM filiere_groupes ORDER BY filiere_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query groupes: %w", err)
	}
	defer closeRows(groupRows)

	for groupRows.Next() {
		var filiereID, nom string
		if err := groupRows.Scan(&filiereID, &nom); err != nil {
			return nil, fmt.Errorf("failed to scan groupe: %w", err)
		}
		if f, ok := byID[filiereID]; ok {
			f.Groupes = append(f.Groupes, nom)
		}
	}
	if err := groupRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groupes: %w", err)
	}

	return filieres, nil
}

// UpdateFiliere overwrites the fields of an existing filière and replaces its
// groups in a single transaction.
func (r *FiliereRepo) UpdateFiliere(ctx context.Context, f models.Filiere) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE filieres
			 SET code_filiere = ?, intitule_filiere = ?, secteur = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			f.CodeFiliere, f.IntituleFiliere, f.Secteur, f.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("failed to update filiere %s: %w", f.ID, ErrDuplicateCode)
			}
			return fmt.Errorf("failed to update filiere %s: %w", f.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("failed to update filiere %s: %w", f.ID, ErrNotFound)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM filiere_groupes WHERE filiere_id = ?`, f.ID); err != nil {
			return fmt.Errorf("failed to clear groupes of filiere %s: %w", f.ID, err)
		}
		return insertGroupes(ctx, tx, f.ID, f.Groupes)
	})
}

// DeleteFiliere removes a filière; its groups go with it through the
// cascading foreign key.
func (r *FiliereRepo) DeleteFiliere(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM filieres WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete filiere %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to delete filiere %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountFilieres returns the number of stored filières
func (r *FiliereRepo) CountFilieres(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM filieres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count filieres: %w", err)
	}
	return count, nil
}

func (r *FiliereRepo) groupesByFiliere(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT nom FROM filiere_groupes WHERE filiere_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query groupes of filiere %s: %w", id, err)
	}
	defer closeRows(rows)

	groupes := []string{}
	for rows.Next() {
		var nom string
		if err := rows.Scan(&nom); err != nil {
			return nil, fmt.Errorf("failed to scan groupe: %w", err)
		}
		groupes = append(groupes, nom)
	}
	return groupes, rows.Err()
}

func insertGroupes(ctx context.Context, tx *sql.Tx, filiereID string, groupes []string) error {
	for i, nom := range groupes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO filiere_groupes (filiere_id, position, nom) VALUES (?, ?, ?)`,
			filiereID, i, nom,
		)
		if err != nil {
			return fmt.Errorf("failed to insert groupe '%s' for filiere %s: %w", nom, filiereID, err)
		}
	}
	return nil
}
