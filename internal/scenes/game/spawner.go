package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/physics"
)

// hazardColors are cycled through for newly spawned hazards.
var hazardColors = []core.Color{
	core.ColorOrange,
	core.ColorMagenta,
	core.ColorBrightRed,
	core.ColorYellow,
	core.ColorBlue,
}

// Spawner launches hazards from outside the screen edges toward the play
// area.
type Spawner struct {
	cfg        config.HazardConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	size       core.Vec2
	untilNext  float64
	spawned    int
	colors     map[int]core.Color
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, size core.Vec2, cfg config.HazardConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:        cfg,
		difficulty: diff,
		rng:        rand.New(rand.NewSource(seed)),
		size:       size,
		untilNext:  cfg.SpawnInterval,
		colors:     make(map[int]core.Color),
	}
}

// Resize updates the play area.
func (s *Spawner) Resize(size core.Vec2) {
	s.size = size
}

// Update counts down to the next spawn and adds hazards to world.
// elapsed is the run time used for difficulty scaling.
func (s *Spawner) Update(world *physics.World, dt, elapsed float64) {
	s.untilNext -= dt
	for s.untilNext <= 0 {
		s.untilNext += math.Max(s.difficulty.SpawnInterval(s.cfg.SpawnInterval, elapsed), 0.05)
		if s.cfg.MaxActive > 0 && world.Count(s.cfg.Tag) >= s.cfg.MaxActive {
			continue
		}
		s.spawn(world, elapsed)
	}
}

// Spawned returns how many hazards have been launched.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// ColorOf returns the display color of a hazard.
func (s *Spawner) ColorOf(b *physics.Body) core.Color {
	if c, ok := s.colors[b.ID]; ok {
		return c
	}
	return core.ColorOrange
}

// Prune forgets the colors of hazards no longer in world.
func (s *Spawner) Prune(world *physics.World) {
	if len(s.colors) == 0 {
		return
	}
	live := make(map[int]bool, len(s.colors))
	for _, b := range world.Bodies() {
		live[b.ID] = true
	}
	for id := range s.colors {
		if !live[id] {
			delete(s.colors, id)
		}
	}
}

func (s *Spawner) spawn(world *physics.World, elapsed float64) {
	radius := s.between(s.cfg.MinRadius, s.cfg.MaxRadius)
	start := s.edgePoint(radius + s.cfg.Margin*0.5)

	// Aim somewhere in the middle half of the screen so hazards cross it.
	target := core.V(
		s.size.X*(0.25+0.5*s.rng.Float64()),
		s.size.Y*(0.25+0.5*s.rng.Float64()),
	)
	dir := target.Sub(start)
	if l := dir.Len(); l > 0 {
		dir = dir.Scale(1 / l)
	}
	speed := s.difficulty.Speed(s.between(s.cfg.MinSpeed, s.cfg.MaxSpeed), elapsed)

	b := world.Add(&physics.Body{
		Tag:    s.cfg.Tag,
		Pos:    start,
		Vel:    dir.Scale(speed),
		Radius: radius,
	})
	s.colors[b.ID] = hazardColors[s.spawned%len(hazardColors)]
	s.spawned++
}

// edgePoint returns a random point just outside one of the four edges.
func (s *Spawner) edgePoint(offset float64) core.Vec2 {
	switch s.rng.Intn(4) {
	case 0: // top
		return core.V(s.rng.Float64()*s.size.X, -offset)
	case 1: // bottom
		return core.V(s.rng.Float64()*s.size.X, s.size.Y+offset)
	case 2: // left
		return core.V(-offset, s.rng.Float64()*s.size.Y)
	default: // right
		return core.V(s.size.X+offset, s.rng.Float64()*s.size.Y)
	}
}

func (s *Spawner) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
