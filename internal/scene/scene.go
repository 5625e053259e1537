// Package scene defines the scenes of the game, the registry they are
// discovered through, and the manager and navigator that switch between
// them.
package scene

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
)

// Scene names in the default build list.
const (
	NameMenu = "Menu"
	NameGame = "Game"
)

// ErrNotFound is returned when a scene is not in the build list or has no
// registered factory.
var ErrNotFound = errors.New("scene not found")

// Scene is one screen of the game. Scenes contain pure logic and never talk
// to the terminal; the platform feeds them input and renders them.
type Scene interface {
	// Name returns the scene's build-list name.
	Name() string

	// Update advances the scene by dt seconds. The returned action is a
	// navigation request (Confirm, Restart, Menu, Quit) or ActionNone.
	Update(in core.InputFrame, dt float64) core.Action

	// Render draws the scene into a pre-cleared screen.
	Render(dst *core.Screen)

	// Exit releases the scene. Pending timers must not fire afterwards.
	Exit()
}

// Prefs is integer key-value persistence shared by all scenes.
type Prefs interface {
	GetInt(key string, def int) (int, error)
	SetInt(key string, value int) error
}

// RunStore keeps the history of finished runs.
type RunStore interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Env is everything a scene factory may depend on.
type Env struct {
	Runtime core.RuntimeConfig
	Config  config.PlanetsConfig
	Camera  core.Camera
	Prefs   Prefs
	Runs    RunStore // optional
	Logger  *log.Logger
}
