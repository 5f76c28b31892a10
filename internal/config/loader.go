package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the tuning configuration.
//
// Search order: customPath -> ~/.orbfall/configs/orbfall.yaml ->
// ./configs/orbfall.yaml -> embedded default. A customPath that cannot
// be read, parsed or validated is a fatal error: the simulation's
// constants all come from here, so silently defaulting would change
// gameplay behind the player's back. The fallback locations are only
// used when they parse and validate cleanly.
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return &cfg, nil
	}

	for _, path := range []string{userConfigPath("orbfall.yaml"), "configs/orbfall.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if yaml.Unmarshal(data, &cfg) == nil && cfg.Validate() == nil {
			return &cfg, nil
		}
	}

	return Default(), nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbfall", "configs", filename)
}

// Validate checks the configuration for values the simulation cannot
// run with.
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("physics.gravity must be positive, got %v", p.Gravity)
	case p.MinSpeed < 0 || p.MaxSpeed <= 0 || p.MinSpeed >= p.MaxSpeed:
		return fmt.Errorf("physics speed bounds invalid: min=%v max=%v", p.MinSpeed, p.MaxSpeed)
	case p.WallDamping <= 0 || p.WallDamping > 1:
		return fmt.Errorf("physics.wall_damping must be in (0,1], got %v", p.WallDamping)
	case p.AccelRate <= 1:
		return fmt.Errorf("physics.accel_rate must exceed 1, got %v", p.AccelRate)
	case p.DragRate <= 0 || p.DragRate >= 1:
		return fmt.Errorf("physics.drag_rate must be in (0,1), got %v", p.DragRate)
	case p.OrbRadius <= 0:
		return fmt.Errorf("physics.orb_radius must be positive, got %v", p.OrbRadius)
	case p.WarpCooldown < 0:
		return fmt.Errorf("physics.warp_cooldown must not be negative, got %v", p.WarpCooldown)
	case p.MaxStep <= 0:
		return fmt.Errorf("physics.max_step must be positive, got %v", p.MaxStep)
	}

	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("arena dimensions invalid: %vx%v", a.Width, a.Height)
	}
	if a.PortalWidth <= 0 || a.PortalHeight <= 0 {
		return fmt.Errorf("portal dimensions invalid: %vx%v", a.PortalWidth, a.PortalHeight)
	}

	l := c.Launch
	if l.MinAngleDeg >= l.MaxAngleDeg {
		return fmt.Errorf("launch angle range invalid: [%v, %v]", l.MinAngleDeg, l.MaxAngleDeg)
	}
	if l.MinPower <= 0 || l.MinPower >= l.MaxPower {
		return fmt.Errorf("launch power range invalid: [%v, %v]", l.MinPower, l.MaxPower)
	}
	if l.ShotsPerRound <= 0 {
		return fmt.Errorf("launch.shots_per_round must be positive, got %d", l.ShotsPerRound)
	}

	f := c.Flow
	for name, v := range map[string]float64{
		"flow.base_probability":   f.BaseProbability,
		"flow.probability_cap":    f.ProbabilityCap,
		"flow.extend_probability": f.ExtendProbability,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, v)
		}
	}
	if f.Duration <= 0 || f.ScoreMultiplier < 1 {
		return fmt.Errorf("flow duration/multiplier invalid: %v/%v", f.Duration, f.ScoreMultiplier)
	}

	if len(c.Presets) == 0 {
		return fmt.Errorf("at least one board preset is required")
	}
	for i, preset := range c.Presets {
		for j, panel := range preset.Panels {
			if panel.Restitution <= 0 || panel.Restitution > 1 {
				return fmt.Errorf("preset %d panel %d restitution must be in (0,1], got %v",
					i, j, panel.Restitution)
			}
		}
		for j, zone := range preset.Zones {
			if zone.Kind != ZoneKindAccelerate && zone.Kind != ZoneKindDecelerate {
				return fmt.Errorf("preset %d zone %d has unknown kind %q", i, j, zone.Kind)
			}
		}
		if preset.PortalCount < 0 {
			return fmt.Errorf("preset %d portal_count must not be negative", i)
		}
	}

	return nil
}
