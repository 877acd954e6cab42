package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFiliere_HasID(t *testing.T) {
	var nilFiliere *Filiere
	if nilFiliere.HasID() {
		t.Error("nil filiere should not have an id")
	}
	if (&Filiere{CodeFiliere: "INF"}).HasID() {
		t.Error("unsaved filiere should not have an id")
	}
	f := &Filiere{ID: "abc"}
	if !f.HasID() || f.GetID() != "abc" {
		t.Errorf("expected id abc, got %q", f.GetID())
	}
}

func TestFiliere_JSONOmitsUnsavedFields(t *testing.T) {
	data, err := json.Marshal(Filiere{CodeFiliere: "INF", Groupes: []string{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"id"`, `"created_at"`, `"updated_at"`} {
		if strings.Contains(s, key) {
			t.Errorf("expected %s to be omitted from %s", key, s)
		}
	}
	if !strings.Contains(s, `"groupes":[]`) {
		t.Errorf("expected empty groupes array in %s", s)
	}
}
