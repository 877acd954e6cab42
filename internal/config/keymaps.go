package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// List
	AddFiliere    string `yaml:"add_filiere"`
	EditFiliere   string `yaml:"edit_filiere"`
	DeleteFiliere string `yaml:"delete_filiere"`
	Search        string `yaml:"search"`
	Reload        string `yaml:"reload"`

	// Navigation
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Forms
	SaveForm   string `yaml:"save_form"`
	CancelForm string `yaml:"cancel_form"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddFiliere:    "a",
		EditFiliere:   "e",
		DeleteFiliere: "d",
		Search:        "/",
		Reload:        "r",

		PrevItem: "k",
		NextItem: "j",

		SaveForm:   "ctrl+s",
		CancelForm: "esc",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddFiliere == "" {
		k.AddFiliere = defaults.AddFiliere
	}
	if k.EditFiliere == "" {
		k.EditFiliere = defaults.EditFiliere
	}
	if k.DeleteFiliere == "" {
		k.DeleteFiliere = defaults.DeleteFiliere
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.CancelForm == "" {
		k.CancelForm = defaults.CancelForm
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
