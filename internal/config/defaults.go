package config

import (
	_ "embed"
)

//go:embed defaults/planets.yaml
var defaultPlanetsYAML []byte

// DefaultPlanetsConfig returns the built-in configuration.
func DefaultPlanetsConfig() PlanetsConfig {
	return PlanetsConfig{
		Player: PlayerConfig{
			Radius: 2.5,
			Tag:    "Player",
		},
		Hazards: HazardConfig{
			Tag:           "Planet",
			SpawnInterval: 1.2,
			MinSpeed:      6,
			MaxSpeed:      14,
			MinRadius:     1.5,
			MaxRadius:     4,
			MaxActive:     12,
			Margin:        6,
		},
		Session: SessionConfig{
			RestartDelay: 1.5,
			HighScoreKey: "Highscore",
		},
		Effect: EffectConfig{
			Particles: 16,
			Duration:  0.9,
			Spread:    9,
		},
		Scenes: ScenesConfig{
			Build: []string{"Menu", "Game"},
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialLevel:      0.0,
			MaxAt:             90,
			SpeedMultiplier:   1.0,
			IntervalReduction: 0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlanetsYAML
}
