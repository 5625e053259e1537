package effects

import (
	"math"
	"testing"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
)

func TestBurstExpandsAndFades(t *testing.T) {
	s := NewSystem(config.EffectConfig{Particles: 4, Duration: 1, Spread: 8})
	b := s.Spawn(core.V(10, 10))

	if s.Active() != 1 {
		t.Fatalf("Active() = %d, expected 1", s.Active())
	}
	if b.Radius != 0 || b.Alpha != 1 {
		t.Errorf("fresh burst radius=%v alpha=%v, expected 0 and 1", b.Radius, b.Alpha)
	}

	s.Update(0.5)
	if b.Radius <= 0 || b.Radius >= 8 {
		t.Errorf("Radius mid-way = %v, expected between 0 and 8", b.Radius)
	}
	if b.Alpha <= 0 || b.Alpha >= 1 {
		t.Errorf("Alpha mid-way = %v, expected between 0 and 1", b.Alpha)
	}

	s.Update(0.5)
	if !b.Done {
		t.Error("burst should be done after its duration")
	}
	if math.Abs(b.Radius-8) > 0.01 {
		t.Errorf("final Radius = %v, expected 8", b.Radius)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d after finish, expected 0", s.Active())
	}
}

func TestBurstParticlesSurroundOrigin(t *testing.T) {
	s := NewSystem(config.EffectConfig{Particles: 4, Duration: 1, Spread: 2})
	b := s.Spawn(core.V(5, 5))
	s.Update(1)

	for _, p := range b.Particles() {
		if d := p.Dist(b.Origin); math.Abs(d-2) > 0.01 {
			t.Errorf("particle %v at distance %v, expected 2", p, d)
		}
	}
}

func TestSystemDefaults(t *testing.T) {
	s := NewSystem(config.EffectConfig{})
	b := s.Spawn(core.V(0, 0))
	if len(b.Particles()) != 8 {
		t.Errorf("default particle count = %d, expected 8", len(b.Particles()))
	}
}

func TestRenderDrawsParticles(t *testing.T) {
	s := NewSystem(config.EffectConfig{Particles: 1, Duration: 1, Spread: 4})
	s.SpawnAndPlay(core.V(10, 10))
	screen := core.NewScreen(20, 10)

	s.Render(screen, core.DefaultCamera())

	// Fresh burst: the single particle sits on the origin cell.
	x, y := core.DefaultCamera().WorldToScreen(core.V(10, 10))
	if got := screen.Get(x, y); got != '*' {
		t.Errorf("cell at origin = %q, expected '*'", got)
	}
}
