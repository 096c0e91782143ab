package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDriveConfig()) {
		t.Errorf("embedded defaults differ from DefaultDriveConfig():\n%+v\n%+v", cfg, DefaultDriveConfig())
	}
}

func TestLoadDriveCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("road:\n  lanes: 4\nworld:\n  speed_cap: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrive(path)
	if err != nil {
		t.Fatalf("LoadDrive() failed: %v", err)
	}

	if cfg.Road.Lanes != 4 {
		t.Errorf("Road.Lanes = %d, expected 4", cfg.Road.Lanes)
	}
	if cfg.World.SpeedCap != 20 {
		t.Errorf("World.SpeedCap = %g, expected 20", cfg.World.SpeedCap)
	}

	// Keys not in the file keep their defaults
	if cfg.World.BaseSpeed != 6 {
		t.Errorf("World.BaseSpeed = %g, expected default 6", cfg.World.BaseSpeed)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("Palette length = %d, expected default 5", len(cfg.Palette))
	}
}

func TestLoadDriveCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDrive(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("road: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDrive(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("road:\n  lanes: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDrive(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for zero lanes, got %v", err)
	}
}

func TestLoadDriveSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default
	cfg, err := LoadDrive("")
	if err != nil {
		t.Fatalf("LoadDrive() failed: %v", err)
	}
	if cfg.Road.Lanes != 3 {
		t.Errorf("expected embedded default lanes 3, got %d", cfg.Road.Lanes)
	}

	// Local ./configs/drive.yaml
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", ConfigFile), []byte("road:\n  lanes: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadDrive("")
	if cfg.Road.Lanes != 5 {
		t.Errorf("expected local config lanes 5, got %d", cfg.Road.Lanes)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".neondrive", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, ConfigFile), []byte("road:\n  lanes: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadDrive("")
	if cfg.Road.Lanes != 2 {
		t.Errorf("expected user config lanes 2, got %d", cfg.Road.Lanes)
	}

	// A broken user config falls through to the local one
	if err := os.WriteFile(filepath.Join(userDir, ConfigFile), []byte("road:\n  lanes: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadDrive("")
	if cfg.Road.Lanes != 5 {
		t.Errorf("expected fallback to local config lanes 5, got %d", cfg.Road.Lanes)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDriveConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() of marshalled config failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDriveConfig()) {
		t.Error("marshalled config does not parse back to the defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DriveConfig)
	}{
		{"no lanes", func(c *DriveConfig) { c.Road.Lanes = 0 }},
		{"max width below min", func(c *DriveConfig) { c.Road.MaxWidth = 100 }},
		{"friction above one", func(c *DriveConfig) { c.Player.Friction = 1.5 }},
		{"speed cap below base", func(c *DriveConfig) { c.World.SpeedCap = 3 }},
		{"zero min cooldown", func(c *DriveConfig) { c.Spawn.MinCooldown = 0 }},
		{"obstacles slower than scroll", func(c *DriveConfig) { c.Spawn.SpeedFactorMin = 0.5 }},
		{"empty palette", func(c *DriveConfig) { c.Palette = nil }},
		{"zero display units", func(c *DriveConfig) { c.Display.UnitsPerRow = 0 }},
	}

	if err := DefaultDriveConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDriveConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
