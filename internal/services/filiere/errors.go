package filiere

import "errors"

// Domain errors for the filière service. Messages are shown to the user as is.
var (
	ErrInvalidFiliereID = errors.New("identifiant de filière invalide")
	ErrFiliereNotFound  = errors.New("filière introuvable")
	ErrDuplicateCode    = errors.New("une filière avec ce code existe déjà")

	errStorage = errors.New("erreur de stockage")
)
