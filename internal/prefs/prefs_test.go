package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p.Volume != DefaultVolume {
		t.Fatalf("Volume = %v, want %v", p.Volume, DefaultVolume)
	}
	if p.WelcomeSeen {
		t.Fatal("WelcomeSeen should default to false")
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	body := "volume = 0.4\nwelcome_seen = true\ntheme = \"Midnight\"\n"
	if err := os.WriteFile(prefsFile, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.Volume != 0.4 {
		t.Fatalf("Volume = %v, want 0.4", p.Volume)
	}
	if !p.WelcomeSeen {
		t.Fatal("WelcomeSeen = false, want true")
	}
}

func TestLoad_ClampsVolume(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("volume = 3.5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.Volume != 1 {
		t.Fatalf("Volume = %v, want clamp to 1", p.Volume)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(prefsFile)
	if p.Volume != DefaultVolume {
		t.Fatalf("Volume = %v, want %v", p.Volume, DefaultVolume)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Volume: 0.6, WelcomeSeen: true, Theme: "Midnight"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(prefsFile)
	if loaded.Volume != 0.6 || !loaded.WelcomeSeen {
		t.Fatalf("round-trip = %+v", loaded)
	}
}
