package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if base() != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", base(), Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "road:\n  length: 25\ninput:\n  enable_delay: 250ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Road.Length != 25 {
		t.Errorf("Road.Length = %d, expected 25", cfg.Road.Length)
	}
	if cfg.Input.EnableDelay != 250*time.Millisecond {
		t.Errorf("EnableDelay = %s, expected 250ms", cfg.Input.EnableDelay)
	}
	// Unset fields keep their defaults
	if cfg.Road.TileSize != Default().Road.TileSize {
		t.Errorf("TileSize = %d, expected default %d", cfg.Road.TileSize, Default().Road.TileSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	bad := writeFile(t, dir, "bad.yaml", "road: [not, a, map")
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "road:\n  length: 0\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(length 0) error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "road:\n  length: 11\n")
	local := writeFile(t, dir, "local.yaml", "road:\n  length: 12\n")
	broken := writeFile(t, dir, "broken.yaml", "road: [")

	tests := []struct {
		name      string
		userPath  string
		localPath string
		expected  int
	}{
		{"user wins", user, local, 11},
		{"local when no user file", filepath.Join(dir, "none.yaml"), local, 12},
		{"broken user falls through", broken, local, 12},
		{"embedded default", "", filepath.Join(dir, "none.yaml"), Default().Road.Length},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := load("", tc.userPath, tc.localPath)
			if err != nil {
				t.Fatalf("load() failed: %v", err)
			}
			if cfg.Road.Length != tc.expected {
				t.Errorf("Road.Length = %d, expected %d", cfg.Road.Length, tc.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero length", func(c *Config) { c.Road.Length = 0 }},
		{"zero tile size", func(c *Config) { c.Road.TileSize = 0 }},
		{"negative delay", func(c *Config) { c.Input.EnableDelay = -time.Millisecond }},
		{"negative jump ticks", func(c *Config) { c.Player.JumpTicks = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative runs", func(c *Config) { c.Sim.Runs = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		preset, err := ParsePreset(name)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", name, err)
		}
		cfg := Default()
		ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced invalid config: %v", name, err)
		}
	}

	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}

	normal := Default()
	normal.Road.Length, normal.Player.JumpTicks = 40, 1
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Road.Length != Default().Road.Length || normal.Player.JumpTicks != Default().Player.JumpTicks {
		t.Errorf("normal preset = length %d, jump ticks %d; expected the defaults",
			normal.Road.Length, normal.Player.JumpTicks)
	}

	easy, hard := Default(), Default()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)
	if easy.Road.Length >= hard.Road.Length {
		t.Errorf("easy road (%d) should be shorter than hard (%d)", easy.Road.Length, hard.Road.Length)
	}
}
