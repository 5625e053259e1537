// Package drag implements touch-drag control of the player planet and the
// death sequence triggered when it touches a hazard.
package drag

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/logging"
	"github.com/vovakirdan/tiny-planets/internal/physics"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

// PointQuery finds the topmost collider at a world position.
type PointQuery interface {
	OverlapPoint(p core.Vec2) *physics.Body
}

// Destroyer removes bodies from the scene.
type Destroyer interface {
	Destroy(b *physics.Body)
}

// GameOverNotifier is told when the player dies.
type GameOverNotifier interface {
	GameOver() error
}

// SurfaceSwitcher toggles UI surfaces.
type SurfaceSwitcher interface {
	SetActive(name string, active bool)
}

// EffectSpawner starts the death effect at a position.
type EffectSpawner interface {
	SpawnAndPlay(pos core.Vec2)
}

// Deps are the collaborators of a Controller. All fields are required
// except Logger.
type Deps struct {
	Query     PointQuery
	Destroyer Destroyer
	Session   GameOverNotifier
	Surfaces  SurfaceSwitcher
	Effects   EffectSpawner
	HazardTag string
	Logger    *log.Logger
}

// Controller moves one draggable body with the primary pointer.
type Controller struct {
	body *physics.Body
	deps Deps
	held bool
	dead bool
}

// New creates a controller for body and registers it as the body's contact
// handler.
func New(body *physics.Body, deps Deps) *Controller {
	deps.Logger = logging.OrDiscard(deps.Logger)
	c := &Controller{body: body, deps: deps}
	body.OnContact = c.OnContactBegin
	return c
}

// HandlePointer processes one pointer sample.
func (c *Controller) HandlePointer(ev core.PointerEvent) {
	if c.dead {
		return
	}
	switch ev.Phase {
	case core.PointerBegin:
		if c.deps.Query.OverlapPoint(ev.Pos) == c.body {
			c.held = true
		}
	case core.PointerMove:
		if c.held {
			c.body.Pos = ev.Pos
		}
	case core.PointerEnd:
		c.held = false
	}
}

// OnContactBegin runs the death sequence when other is a hazard.
func (c *Controller) OnContactBegin(other *physics.Body) {
	if c.dead || other == nil || other.Tag != c.deps.HazardTag {
		return
	}
	c.dead = true
	c.held = false

	c.deps.Effects.SpawnAndPlay(c.body.Pos)
	c.deps.Surfaces.SetActive(ui.SurfaceRestart, true)
	c.deps.Surfaces.SetActive(ui.SurfaceGame, false)
	if err := c.deps.Session.GameOver(); err != nil {
		c.deps.Logger.Error("game over could not be recorded", "err", err)
	}
	c.deps.Destroyer.Destroy(other)
	c.deps.Destroyer.Destroy(c.body)
	c.deps.Logger.Debug("player destroyed", "hazard", other.ID, "x", c.body.Pos.X, "y", c.body.Pos.Y)
}

// Held reports whether the pointer currently holds the body.
func (c *Controller) Held() bool {
	return c.held
}

// Dead reports whether the death sequence has run.
func (c *Controller) Dead() bool {
	return c.dead
}

// Body returns the controlled body.
func (c *Controller) Body() *physics.Body {
	return c.body
}
