package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default config failed validation: %v", err)
	}

	if len(cfg.Presets) == 0 {
		t.Fatal("default config has no board presets")
	}
	if cfg.Physics.Gravity != 900.0 {
		t.Errorf("expected default gravity 900, got %v", cfg.Physics.Gravity)
	}
	if cfg.Launch.ShotsPerRound <= 0 {
		t.Errorf("shots per round must be positive, got %d", cfg.Launch.ShotsPerRound)
	}
}

func TestLoadCustomPathMissingIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config path")
	}
}

func TestLoadCustomPathMalformedIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed custom config")
	}
}

func TestLoadCustomPathInvalidValuesAreFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	// Parses fine but gravity is zero, which the simulation cannot run with.
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for zero gravity")
	}
}

func TestLoadCustomPathValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed for valid custom config: %v", err)
	}
	if cfg.Arena.Width != 480.0 {
		t.Errorf("expected arena width 480, got %v", cfg.Arena.Width)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"inverted speed bounds", func(c *Config) { c.Physics.MinSpeed = 2000 }},
		{"damping above one", func(c *Config) { c.Physics.WallDamping = 1.2 }},
		{"drag rate above one", func(c *Config) { c.Physics.DragRate = 1.5 }},
		{"zero orb radius", func(c *Config) { c.Physics.OrbRadius = 0 }},
		{"inverted angle range", func(c *Config) { c.Launch.MinAngleDeg = -10 }},
		{"zero shots", func(c *Config) { c.Launch.ShotsPerRound = 0 }},
		{"probability above one", func(c *Config) { c.Flow.BaseProbability = 1.5 }},
		{"no presets", func(c *Config) { c.Presets = nil }},
		{"bad restitution", func(c *Config) { c.Presets[0].Panels[0].Restitution = 0 }},
		{"unknown zone kind", func(c *Config) { c.Presets[0].Zones[0].Kind = "sideways" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() accepted config with %s", tc.name)
			}
		})
	}
}
