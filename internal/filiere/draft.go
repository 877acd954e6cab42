// Package filiere holds the UI-independent half of the filière form: the
// draft record, its validation rules and the conversion into the shape that
// gets persisted.
package filiere

import "github.com/thenoetrevino/filieres/internal/models"

// Field identifies a form field. FieldSubmit is reserved for errors that are
// not tied to a single input.
type Field string

const (
	FieldCode     Field = "code_filiere"
	FieldIntitule Field = "intitule_filiere"
	FieldSecteur  Field = "secteur"
	FieldGroupes  Field = "groupes"
	FieldSubmit   Field = "submit"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldCode, FieldIntitule, FieldSecteur, FieldGroupes}

// Mode is fixed for the lifetime of a form.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// ModeFor returns the mode implied by the presence of an existing record.
func ModeFor(f *models.Filiere) Mode {
	if f != nil {
		return ModeEdit
	}
	return ModeCreate
}

// Draft is the user-editable representation of a filière. Groupes is kept in
// its comma-separated display form until the record is submitted.
type Draft struct {
	ID              string
	CodeFiliere     string
	IntituleFiliere string
	Secteur         string
	Groupes         string
}

// NewDraft builds a draft from an existing record, or a blank draft when f is
// nil.
func NewDraft(f *models.Filiere) Draft {
	if f == nil {
		return Draft{}
	}
	return Draft{
		ID:              f.ID,
		CodeFiliere:     f.CodeFiliere,
		IntituleFiliere: f.IntituleFiliere,
		Secteur:         f.Secteur,
		Groupes:         JoinGroupes(f.Groupes),
	}
}

// Get returns the value of a single field. Unknown fields read as "".
func (d Draft) Get(field Field) string {
	switch field {
	case FieldCode:
		return d.CodeFiliere
	case FieldIntitule:
		return d.IntituleFiliere
	case FieldSecteur:
		return d.Secteur
	case FieldGroupes:
		return d.Groupes
	}
	return ""
}

// With returns a copy of d with exactly one field overwritten.
func (d Draft) With(field Field, value string) Draft {
	switch field {
	case FieldCode:
		d.CodeFiliere = value
	case FieldIntitule:
		d.IntituleFiliere = value
	case FieldSecteur:
		d.Secteur = value
	case FieldGroupes:
		d.Groupes = value
	}
	return d
}

// ToRecord converts the draft into the persisted shape. In edit mode the id
// is always taken from originalID, never from the draft; in create mode the
// record carries no id at all.
func ToRecord(d Draft, mode Mode, originalID string) models.Filiere {
	rec := models.Filiere{
		CodeFiliere:     d.CodeFiliere,
		IntituleFiliere: d.IntituleFiliere,
		Secteur:         d.Secteur,
		Groupes:         ParseGroupes(d.Groupes),
	}
	if mode == ModeEdit {
		rec.ID = originalID
	}
	return rec
}
