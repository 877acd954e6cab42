package cli

import (
	"errors"
	"log/slog"

	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// Fail reports err through the formatter and returns it wrapped with the
// matching exit code. code is the machine readable error code used in JSON
// output when err is not a known service error.
func (f *OutputFormatter) Fail(code string, err error) error {
	exit := ExitError
	switch {
	case errors.Is(err, filiereservice.ErrFiliereNotFound):
		code, exit = "FILIERE_NOT_FOUND", ExitNotFound
	case errors.Is(err, filiereservice.ErrDuplicateCode):
		code, exit = "DUPLICATE_CODE", ExitConflict
	case errors.Is(err, filiereservice.ErrInvalidFiliereID):
		code, exit = "INVALID_ID", ExitUsage
	default:
		var exitErr *ExitCodeError
		if errors.As(err, &exitErr) {
			exit = exitErr.Code
		}
	}

	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(exit, err)
}
