// Package config provides YAML-based game configuration loading and
// difficulty management for the planets game.
package config

// PlanetsConfig contains all configuration for the game.
type PlanetsConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Session    SessionConfig    `yaml:"session"`
	Effect     EffectConfig     `yaml:"effect"`
	Scenes     ScenesConfig     `yaml:"scenes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the draggable planet.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"` // World units (one unit = one cell width)
	Tag    string  `yaml:"tag"`
}

// HazardConfig defines the planets flying across the screen.
type HazardConfig struct {
	Tag           string  `yaml:"tag"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns at difficulty 0
	MinSpeed      float64 `yaml:"min_speed"`      // World units per second
	MaxSpeed      float64 `yaml:"max_speed"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MaxActive     int     `yaml:"max_active"`
	Margin        float64 `yaml:"margin"` // Distance outside the screen where hazards spawn and are culled
}

// SessionConfig defines score and game-over behaviour.
type SessionConfig struct {
	RestartDelay float64 `yaml:"restart_delay"` // Seconds between game over and the restart panel
	HighScoreKey string  `yaml:"high_score_key"`
}

// EffectConfig defines the death burst.
type EffectConfig struct {
	Particles int     `yaml:"particles"`
	Duration  float64 `yaml:"duration"` // Seconds
	Spread    float64 `yaml:"spread"`   // Final burst radius in world units
}

// ScenesConfig defines the scene build list. The index of a scene in Build
// is its build index.
type ScenesConfig struct {
	Build []string `yaml:"build"`
}

// DifficultyConfig defines how hazards ramp up over a run.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	InitialLevel      float64 `yaml:"initial_level"`      // 0.0 = easy, 1.0 = hard
	MaxAt             float64 `yaml:"max_at"`             // Seconds at which max difficulty is reached
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to hazard speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PlanetsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
