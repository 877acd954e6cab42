package filiere

import (
	"strings"
	"unicode"

	"github.com/thenoetrevino/filieres/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips diacritics so that "Génie" matches "genie".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Matches reports whether query appears in the code, title, sector or any
// group of f, ignoring case and accents. An empty query matches everything.
func Matches(f *models.Filiere, query string) bool {
	q := Fold(query)
	if q == "" {
		return true
	}
	if f == nil {
		return false
	}
	for _, s := range []string{f.CodeFiliere, f.IntituleFiliere, f.Secteur} {
		if strings.Contains(Fold(s), q) {
			return true
		}
	}
	for _, g := range f.Groupes {
		if strings.Contains(Fold(g), q) {
			return true
		}
	}
	return false
}
