package config

import "github.com/vovakirdan/tiny-planets/internal/core"

// DifficultyManager calculates hazard parameters based on elapsed run time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) after elapsed seconds.
func (d *DifficultyManager) Level(elapsed float64) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := d.cfg.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := core.ClampF(elapsed/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a hazard base speed by the current level.
func (d *DifficultyManager) Speed(baseSpeed, elapsed float64) float64 {
	return baseSpeed * (1.0 + d.Level(elapsed)*d.cfg.SpeedMultiplier)
}

// SpawnInterval shrinks the base spawn interval as difficulty increases.
// The result never drops below a tenth of the base interval.
func (d *DifficultyManager) SpawnInterval(baseInterval, elapsed float64) float64 {
	reduction := core.ClampF(d.Level(elapsed)*d.cfg.IntervalReduction, 0.0, 0.9)
	return baseInterval * (1.0 - reduction)
}
