package filiere

import (
	"strings"

	"github.com/thenoetrevino/filieres/internal/cli"
	draft "github.com/thenoetrevino/filieres/internal/filiere"
)

// validate applies the form's required-field rules to d, reporting every
// failing field in form order.
func validate(d draft.Draft) error {
	errs, ok := draft.Validate(d)
	if ok {
		return nil
	}

	var msgs []string
	for _, field := range draft.Fields {
		if msg, found := errs[field]; found {
			msgs = append(msgs, msg)
		}
	}
	return cli.Exitf(cli.ExitValidation, "%s", strings.Join(msgs, "; "))
}
