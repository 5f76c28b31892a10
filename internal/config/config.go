// Package config provides YAML-based tuning configuration for the
// orbfall simulation. Every physics and scoring constant originates
// here; the game core never hardcodes gameplay numbers.
package config

// Config is the complete tuning configuration for one round.
type Config struct {
	Physics Physics  `yaml:"physics"`
	Arena   Arena    `yaml:"arena"`
	Launch  Launch   `yaml:"launch"`
	Scoring Scoring  `yaml:"scoring"`
	Energy  Energy   `yaml:"energy"`
	Flow    Flow     `yaml:"flow"`
	Presets []Preset `yaml:"presets"`
}

// Physics defines the continuous-time simulation constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Units/s^2, positive is down
	MinSpeed     float64 `yaml:"min_speed"`     // Sustained minimum momentum
	MaxSpeed     float64 `yaml:"max_speed"`     // Terminal speed cap
	WallDamping  float64 `yaml:"wall_damping"`  // Velocity scale on wall reflection
	AccelRate    float64 `yaml:"accel_rate"`    // Per-nominal-frame scale in accelerate zones
	DragRate     float64 `yaml:"drag_rate"`     // Per-nominal-frame scale in decelerate zones
	OrbRadius    float64 `yaml:"orb_radius"`
	WarpCooldown float64 `yaml:"warp_cooldown"` // Seconds before warp re-entry
	MaxStep      float64 `yaml:"max_step"`      // Tick size ceiling in seconds
}

// Arena defines the playfield dimensions and fixed layout constants.
type Arena struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PortalWidth  float64 `yaml:"portal_width"`
	PortalHeight float64 `yaml:"portal_height"`
	LaunchX      float64 `yaml:"launch_x"`
	LaunchY      float64 `yaml:"launch_y"`
}

// Launch defines the shot input mapping.
type Launch struct {
	MinAngleDeg      float64 `yaml:"min_angle_deg"` // Most upward allowed angle
	MaxAngleDeg      float64 `yaml:"max_angle_deg"` // Most horizontal allowed angle
	MinPower         float64 `yaml:"min_power"`
	MaxPower         float64 `yaml:"max_power"`
	GestureThreshold float64 `yaml:"gesture_threshold"` // Input magnitude below this is ignored
	ShotsPerRound    int     `yaml:"shots_per_round"`
}

// Scoring defines the point values per event.
type Scoring struct {
	Tier1 int `yaml:"tier1"`
	Tier2 int `yaml:"tier2"`
	Tier3 int `yaml:"tier3"`
	Gate  int `yaml:"gate"`
}

// Energy defines the meter gain per event. All gains are clamped so
// the meter stays in [0, 100].
type Energy struct {
	Tier1 float64 `yaml:"tier1"`
	Tier2 float64 `yaml:"tier2"`
	Tier3 float64 `yaml:"tier3"`
	Gate  float64 `yaml:"gate"`
	Miss  float64 `yaml:"miss"`
}

// Flow defines the bonus multiplier mode entered by winning the
// energy-meter draw.
type Flow struct {
	BaseProbability   float64 `yaml:"base_probability"`
	ProbabilityCap    float64 `yaml:"probability_cap"`
	Duration          float64 `yaml:"duration"` // Seconds
	ScoreMultiplier   float64 `yaml:"score_multiplier"`
	EnergyMultiplier  float64 `yaml:"energy_multiplier"`
	ExtendProbability float64 `yaml:"extend_probability"`
	ExtendSeconds     float64 `yaml:"extend_seconds"`
	ExtendCap         float64 `yaml:"extend_cap"` // Max remaining seconds after an extend
}

// Preset is one board template. Panel endpoints are jittered at
// generation time; zones, warps and gates are placed exactly.
type Preset struct {
	Name        string        `yaml:"name"`
	Panels      []PanelDef    `yaml:"panels"`
	Zones       []ZoneDef     `yaml:"zones"`
	WarpPairs   []WarpPairDef `yaml:"warp_pairs"`
	Gates       []GateDef     `yaml:"gates"`
	PortalCount int           `yaml:"portal_count"`
}

// PanelDef is a reflecting segment template.
type PanelDef struct {
	X1          float64 `yaml:"x1"`
	Y1          float64 `yaml:"y1"`
	X2          float64 `yaml:"x2"`
	Y2          float64 `yaml:"y2"`
	Restitution float64 `yaml:"restitution"`
}

// Zone kind names accepted in YAML.
const (
	ZoneKindAccelerate = "accelerate"
	ZoneKindDecelerate = "decelerate"
)

// ZoneDef is an axis-aligned velocity-modifier rectangle.
type ZoneDef struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Kind   string  `yaml:"kind"` // "accelerate" or "decelerate"
}

// WarpPairDef is a linked pair of teleport circles.
type WarpPairDef struct {
	AX      float64 `yaml:"ax"`
	AY      float64 `yaml:"ay"`
	ARadius float64 `yaml:"a_radius"`
	BX      float64 `yaml:"bx"`
	BY      float64 `yaml:"by"`
	BRadius float64 `yaml:"b_radius"`
}

// GateDef is a one-shot scoring segment.
type GateDef struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}
