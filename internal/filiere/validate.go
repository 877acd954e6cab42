package filiere

import "strings"

// Errors maps a field to a human-readable message. A missing key means the
// field has no error.
type Errors map[Field]string

// Validation messages, in the display language of the form.
const (
	MsgCodeRequired     = "Le code est requis"
	MsgIntituleRequired = "L'intitulé est requis"
	MsgSecteurRequired  = "Le secteur est requis"
	MsgSaveFailed       = "Une erreur est survenue lors de l'enregistrement"
)

// Validate checks the required fields of a draft. The returned map is built
// from scratch on every call; ok is true when it is empty. Groupes is never
// required.
func Validate(d Draft) (Errors, bool) {
	errs := Errors{}
	if strings.TrimSpace(d.CodeFiliere) == "" {
		errs[FieldCode] = MsgCodeRequired
	}
	if strings.TrimSpace(d.IntituleFiliere) == "" {
		errs[FieldIntitule] = MsgIntituleRequired
	}
	if strings.TrimSpace(d.Secteur) == "" {
		errs[FieldSecteur] = MsgSecteurRequired
	}
	return errs, len(errs) == 0
}

// Clone returns an independent copy of e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
