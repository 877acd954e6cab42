package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter writes command results in one of three modes. JSON wins
// over Quiet when both are set; with neither the output is for humans.
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

type identified interface{ GetID() string }

// Success reports the result of a single-record command. Quiet mode prints
// only the id of records that have one.
func (f *OutputFormatter) Success(data any) error {
	if f.JSON {
		return writeJSON(map[string]any{"success": true, "data": data})
	}
	if rec, ok := data.(identified); ok && f.Quiet {
		fmt.Fprintln(os.Stdout, rec.GetID())
		return nil
	}
	return f.prettyPrint(data)
}

// List reports a collection: a JSON array, one id per line, or whatever
// human prints.
func List[T identified](f *OutputFormatter, items []T, human func() error) error {
	switch {
	case f.JSON:
		if items == nil {
			items = []T{}
		}
		return writeJSON(items)
	case f.Quiet:
		for _, item := range items {
			fmt.Fprintln(os.Stdout, item.GetID())
		}
		return nil
	default:
		return human()
	}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion writes the error to stdout as JSON, or to stderr with
// an optional hint for humans.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		body := map[string]any{"code": code, "message": message}
		if suggestion != "" {
			body["suggestion"] = suggestion
		}
		return writeJSON(map[string]any{"success": false, "error": body})
	}

	fmt.Fprintf(os.Stderr, "❌ Erreur : %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion : %s\n", suggestion)
	}
	return nil
}

func writeJSON(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Fprintln(os.Stdout, s.String())
		return nil
	}
	fmt.Fprintf(os.Stdout, "%+v\n", data)
	return nil
}
