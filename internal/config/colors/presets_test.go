package colors

import "testing"

func TestGetPreset_UnknownFallsBackToDefault(t *testing.T) {
	if got := GetPreset("nope"); got.Preset != "default" {
		t.Errorf("Expected default preset, got %q", got.Preset)
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	p := GetPreset("campus")
	p.Accent = "#000000"
	if GetPreset("campus").Accent == "#000000" {
		t.Error("Modifying a returned preset must not change the registry")
	}
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	cs := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	cs.ApplyDefaults()

	if cs.Accent != "#123456" {
		t.Errorf("Expected override to survive, got %q", cs.Accent)
	}
	if cs.Title != Monochrome().Title {
		t.Errorf("Expected monochrome title, got %q", cs.Title)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	want := []string{"campus", "default", "monochrome"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, names)
		}
	}
}
