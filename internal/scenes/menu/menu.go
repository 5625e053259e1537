// Package menu implements the "Menu" scene: the title screen showing the
// persisted high score and a Start button.
package menu

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/logging"
	"github.com/vovakirdan/tiny-planets/internal/scene"
	"github.com/vovakirdan/tiny-planets/internal/session"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

const title = "T I N Y   P L A N E T S"

func init() {
	scene.Register(scene.NameMenu, "Title screen with the high score", func(env scene.Env) scene.Scene {
		return New(env)
	})
}

// Menu is the title screen.
type Menu struct {
	env       scene.Env
	cam       core.Camera
	surfaces  *ui.Surfaces
	highScore int
	screenW   int
	screenH   int
	t         float64
}

// New creates the menu and reads the high score once.
func New(env scene.Env) *Menu {
	env.Logger = logging.OrDiscard(env.Logger)
	cam := env.Camera
	if cam.Aspect <= 0 {
		cam = core.DefaultCamera()
	}
	m := &Menu{env: env, cam: cam, surfaces: ui.NewSurfaces()}

	key := env.Config.Session.HighScoreKey
	if key == "" {
		key = session.DefaultHighScoreKey
	}
	if env.Prefs != nil {
		hs, err := env.Prefs.GetInt(key, 0)
		if err != nil {
			env.Logger.Warn("cannot read high score", "err", err)
		}
		m.highScore = hs
	}
	env.Logger.Info("high score", "value", m.highScore)

	panel := m.surfaces.Add(ui.SurfaceMenu, true)
	panel.Draw = m.drawTitle
	panel.AddButton("Start", core.Rect{}, core.ActionConfirm, core.ColorGreen)
	panel.AddButton("Quit", core.Rect{}, core.ActionQuit, core.ColorGray)
	m.Resize(env.Runtime.ScreenW, env.Runtime.ScreenH)
	return m
}

// Name returns the scene name.
func (m *Menu) Name() string {
	return scene.NameMenu
}

// HighScore returns the high score read when the menu was loaded.
func (m *Menu) HighScore() int {
	return m.highScore
}

// Surfaces exposes the UI surfaces.
func (m *Menu) Surfaces() *ui.Surfaces {
	return m.surfaces
}

// Update handles button presses and keyboard shortcuts.
func (m *Menu) Update(in core.InputFrame, dt float64) core.Action {
	m.t += dt

	if in.Has(core.ActionQuit) {
		return core.ActionQuit
	}
	if in.Has(core.ActionConfirm) {
		return core.ActionConfirm
	}
	if in.Pointer != nil && in.Pointer.Phase == core.PointerBegin {
		x, y := m.cam.WorldToScreen(in.Pointer.Pos)
		return m.surfaces.HitTest(x, y)
	}
	return core.ActionNone
}

// Render draws the title screen.
func (m *Menu) Render(dst *core.Screen) {
	m.drawOrbit(dst)
	m.surfaces.Render(dst)
}

// Resize lays the screen out again.
func (m *Menu) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	m.screenW, m.screenH = w, h
	panel := m.surfaces.Get(ui.SurfaceMenu)
	y := h/2 + 1
	panel.Buttons[0].Rect = ui.CenteredRect(w, y, 15, 3)
	panel.Buttons[1].Rect = ui.CenteredRect(w, y+3, 15, 3)
}

// Exit does nothing; the menu holds no timers.
func (m *Menu) Exit() {}

func (m *Menu) drawTitle(dst *core.Screen) {
	y := m.screenH/2 - 5
	dst.DrawTextCentered(y, title, core.ColorBrightCyan)
	dst.DrawTextCentered(y+2, fmt.Sprintf("High score: %d", m.highScore), core.ColorYellow)
	dst.DrawTextCentered(y+3, "Drag your planet with the mouse, dodge the rest", core.ColorGray)
}

// drawOrbit animates a small planet circling the title.
func (m *Menu) drawOrbit(dst *core.Screen) {
	size := m.cam.WorldSize(m.screenW, m.screenH)
	center := size.Scale(0.5)
	r := math.Min(size.X, size.Y) * 0.4
	p := center.Add(core.V(math.Cos(m.t*0.6)*r, math.Sin(m.t*0.6)*r))
	dst.DrawCircle(m.cam, core.Circle{Center: p, Radius: 1.5}, 'o', core.ColorOrange)
}
