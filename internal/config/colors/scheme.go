// Package colors holds the configurable palettes of the terminal UI.
package colors

// ColorScheme defines all configurable color values. Any field left empty
// in the config file is taken from Preset.
type ColorScheme struct {
	Preset string `yaml:"preset"`

	// selections, focused borders, highlighted text
	Accent string `yaml:"accent"`

	// Form and dialog borders by intent. Delete also colors field errors.
	Create string `yaml:"create"`
	Edit   string `yaml:"edit"`
	Delete string `yaml:"delete"`

	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// status line notifications
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// ApplyDefaults fills empty values from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	base := GetPreset(c.Preset)

	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Preset, base.Preset},
		{&c.Accent, base.Accent},
		{&c.Create, base.Create},
		{&c.Edit, base.Edit},
		{&c.Delete, base.Delete},
		{&c.Border, base.Border},
		{&c.SelectedBg, base.SelectedBg},
		{&c.Title, base.Title},
		{&c.Subtle, base.Subtle},
		{&c.Normal, base.Normal},
		{&c.InfoFg, base.InfoFg},
		{&c.InfoBg, base.InfoBg},
		{&c.ErrorFg, base.ErrorFg},
		{&c.ErrorBg, base.ErrorBg},
	}
	for _, p := range pairs {
		if *p.dst == "" {
			*p.dst = p.src
		}
	}
}
