// Package effects renders the particle burst played when the player planet
// is destroyed. Radius and fade are driven by gween tweens.
package effects

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
)

// Burst is one playing particle effect.
type Burst struct {
	Origin core.Vec2
	Radius float64
	Alpha  float64
	Done   bool

	dirs   []core.Vec2
	radius *gween.Tween
	fade   *gween.Tween
}

// Update advances the burst's tweens by dt seconds.
func (b *Burst) Update(dt float64) {
	if b.Done {
		return
	}
	r, rDone := b.radius.Update(float32(dt))
	a, aDone := b.fade.Update(float32(dt))
	b.Radius = float64(r)
	b.Alpha = float64(a)
	b.Done = rDone && aDone
}

// Particles returns the current particle positions.
func (b *Burst) Particles() []core.Vec2 {
	out := make([]core.Vec2, len(b.dirs))
	for i, d := range b.dirs {
		out[i] = b.Origin.Add(d.Scale(b.Radius))
	}
	return out
}

// System owns every burst of a scene.
type System struct {
	cfg    config.EffectConfig
	bursts []*Burst
}

// NewSystem creates a burst system. Non-positive settings fall back to a
// small visible burst.
func NewSystem(cfg config.EffectConfig) *System {
	if cfg.Particles <= 0 {
		cfg.Particles = 8
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.5
	}
	if cfg.Spread <= 0 {
		cfg.Spread = 4
	}
	return &System{cfg: cfg}
}

// SpawnAndPlay starts a new burst centred on pos.
func (s *System) SpawnAndPlay(pos core.Vec2) {
	s.Spawn(pos)
}

// Spawn starts a new burst centred on pos and returns it.
func (s *System) Spawn(pos core.Vec2) *Burst {
	n := s.cfg.Particles
	dirs := make([]core.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		dirs[i] = core.V(math.Cos(angle), math.Sin(angle))
	}
	d := float32(s.cfg.Duration)
	b := &Burst{
		Origin: pos,
		Alpha:  1,
		dirs:   dirs,
		radius: gween.New(0, float32(s.cfg.Spread), d, ease.OutQuad),
		fade:   gween.New(1, 0, d, ease.Linear),
	}
	s.bursts = append(s.bursts, b)
	return b
}

// Update advances all bursts and drops finished ones.
func (s *System) Update(dt float64) {
	live := s.bursts[:0]
	for _, b := range s.bursts {
		b.Update(dt)
		if !b.Done {
			live = append(live, b)
		}
	}
	s.bursts = live
}

// Active returns the number of bursts still playing.
func (s *System) Active() int {
	return len(s.bursts)
}

// Render draws every burst. Particles dim as the burst fades.
func (s *System) Render(screen *core.Screen, cam core.Camera) {
	for _, b := range s.bursts {
		glyph, color := particleGlyph(b.Alpha)
		for _, p := range b.Particles() {
			x, y := cam.WorldToScreen(p)
			screen.SetColor(x, y, glyph, color)
		}
	}
}

func particleGlyph(alpha float64) (rune, core.Color) {
	switch {
	case alpha > 0.66:
		return '*', core.ColorBrightYellow
	case alpha > 0.33:
		return '+', core.ColorOrange
	default:
		return '.', core.ColorRed
	}
}
