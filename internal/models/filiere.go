package models

import "time"

// Filiere represents an academic program (track) administered by the tool.
// ID is opaque and stays empty until the record has been persisted.
type Filiere struct {
	ID              string    `json:"id,omitempty"`
	CodeFiliere     string    `json:"code_filiere"`
	IntituleFiliere string    `json:"intitule_filiere"`
	Secteur         string    `json:"secteur"`
	Groupes         []string  `json:"groupes"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
	UpdatedAt       time.Time `json:"updated_at,omitzero"`
}

// HasID reports whether the record has already been persisted
func (f *Filiere) HasID() bool {
	return f != nil && f.ID != ""
}

// GetID returns the record id
func (f *Filiere) GetID() string {
	return f.ID
}
