// Package game implements the "Game" scene: the player drags a planet
// around the screen and must avoid the hazards flying across it.
package game

import (
	"fmt"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/drag"
	"github.com/vovakirdan/tiny-planets/internal/effects"
	"github.com/vovakirdan/tiny-planets/internal/logging"
	"github.com/vovakirdan/tiny-planets/internal/physics"
	"github.com/vovakirdan/tiny-planets/internal/scene"
	"github.com/vovakirdan/tiny-planets/internal/session"
	"github.com/vovakirdan/tiny-planets/internal/storage"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

// GameID is the key runs are stored under in the score history.
const GameID = "planets"

// SurfaceRestartButtons holds the Restart and Menu buttons. The session
// shows it once the restart delay has passed.
const SurfaceRestartButtons = "restart.buttons"

// Visual characters for rendering
const (
	PlayerChar = '●'
	HazardChar = 'o'
)

func init() {
	scene.Register(scene.NameGame, "Drag the planet, dodge the others", func(env scene.Env) scene.Scene {
		return New(env)
	})
}

// Game is one run. Restarting loads a fresh instance.
type Game struct {
	env      scene.Env
	cfg      config.PlanetsConfig
	cam      core.Camera
	size     core.Vec2
	screenW  int
	screenH  int
	world    *physics.World
	player   *physics.Body
	ctrl     *drag.Controller
	session  *session.Session
	effects  *effects.System
	surfaces *ui.Surfaces
	spawner  *Spawner
	diff     *config.DifficultyManager
	runTime  float64
	ended    bool
}

// New creates a running game scene.
func New(env scene.Env) *Game {
	env.Logger = logging.OrDiscard(env.Logger)
	if env.Prefs == nil {
		env.Prefs = storage.NewMemoryPrefs()
	}
	cam := env.Camera
	if cam.Aspect <= 0 {
		cam = core.DefaultCamera()
	}

	g := &Game{
		env:      env,
		cfg:      env.Config,
		cam:      cam,
		world:    physics.NewWorld(),
		effects:  effects.NewSystem(env.Config.Effect),
		surfaces: ui.NewSurfaces(),
		diff:     config.NewDifficultyManager(env.Config.Difficulty),
	}
	g.layout(env.Runtime.ScreenW, env.Runtime.ScreenH)

	var recorder session.RunRecorder
	if env.Runs != nil {
		recorder = session.RecorderFunc(func(score int) error {
			_, err := env.Runs.SaveScore(GameID, score)
			return err
		})
	}
	g.session = session.New(session.Options{
		Prefs:          env.Prefs,
		Surfaces:       g.surfaces,
		Recorder:       recorder,
		HighScoreKey:   g.cfg.Session.HighScoreKey,
		RestartDelay:   g.cfg.Session.RestartDelay,
		RestartSurface: SurfaceRestartButtons,
		Logger:         env.Logger,
	})

	g.player = g.world.Add(&physics.Body{
		Tag:    g.cfg.Player.Tag,
		Pos:    g.size.Scale(0.5),
		Radius: g.cfg.Player.Radius,
	})
	g.ctrl = drag.New(g.player, drag.Deps{
		Query:     g.world,
		Destroyer: g.world,
		Session:   g.session,
		Surfaces:  g.surfaces,
		Effects:   g.effects,
		HazardTag: g.cfg.Hazards.Tag,
		Logger:    env.Logger,
	})
	g.spawner = NewSpawner(env.Runtime.Seed, g.size, g.cfg.Hazards, g.diff)

	return g
}

// layout sizes the world and places the surfaces for a screen.
func (g *Game) layout(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	g.screenW, g.screenH = w, h
	g.size = g.cam.WorldSize(w, h)

	buttons := g.surfaces.Get(SurfaceRestartButtons)
	if buttons == nil {
		hud := g.surfaces.Add(ui.SurfaceGame, true)
		hud.Draw = g.drawHUD
		over := g.surfaces.Add(ui.SurfaceRestart, false)
		over.Draw = g.drawGameOver
		buttons = g.surfaces.Add(SurfaceRestartButtons, false)
		buttons.AddButton("Restart", core.Rect{}, core.ActionRestart, core.ColorGreen)
		buttons.AddButton("Menu", core.Rect{}, core.ActionMenu, core.ColorCyan)
	}
	// Narrow terminals push the pair against the left edge.
	x := core.Clamp(w/2-15, 0, w)
	y := h/2 + 2
	buttons.Buttons[0].Rect = core.NewRect(x, y, 13, 3)
	buttons.Buttons[1].Rect = core.NewRect(x+17, y, 13, 3)
}

// Name returns the scene name.
func (g *Game) Name() string {
	return scene.NameGame
}

// Update advances the run by dt seconds.
func (g *Game) Update(in core.InputFrame, dt float64) core.Action {
	if in.Has(core.ActionQuit) {
		return core.ActionQuit
	}
	for _, a := range []core.Action{core.ActionRestart, core.ActionMenu} {
		if in.Has(a) && g.surfaces.Offers(a) {
			return a
		}
	}

	if in.Pointer != nil {
		ev := *in.Pointer
		if ev.Phase == core.PointerBegin {
			x, y := g.cam.WorldToScreen(ev.Pos)
			if a := g.surfaces.HitTest(x, y); a != core.ActionNone {
				return a
			}
		}
		g.ctrl.HandlePointer(ev)
	}

	g.session.Tick(dt)
	if g.session.State() == session.StateRunning {
		g.runTime += dt
		g.spawner.Update(g.world, dt, g.runTime)
	}

	g.world.Step(dt)
	if g.world.Cull(g.cfg.Hazards.Tag, g.size, g.cfg.Hazards.Margin) > 0 {
		g.spawner.Prune(g.world)
	}
	g.effects.Update(dt)

	if g.ctrl.Dead() && !g.ended {
		g.ended = true
		g.env.Logger.Info("run ended", "score", g.session.FinalScore(), "hazards", g.spawner.Spawned())
	}
	return core.ActionNone
}

// Render draws the planets, effects and surfaces.
func (g *Game) Render(dst *core.Screen) {
	for _, b := range g.world.Bodies() {
		if b == g.player {
			continue
		}
		dst.DrawCircle(g.cam, b.Circle(), HazardChar, g.spawner.ColorOf(b))
	}
	if !g.player.Destroyed() {
		color := core.ColorBrightCyan
		if g.ctrl.Held() {
			color = core.ColorWhite
		}
		dst.DrawCircle(g.cam, g.player.Circle(), PlayerChar, color)
	}
	g.effects.Render(dst, g.cam)
	g.surfaces.Render(dst)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, " "+g.session.DisplayScore()+" ", core.ColorWhite)
	if g.diff.IsEnabled() {
		lvl := fmt.Sprintf(" Lvl: %.0f%% ", g.diff.Level(g.runTime)*100)
		dst.DrawTextColor(dst.Width()-len(lvl)-1, 0, lvl, core.ColorGray)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	y := g.screenH/2 - 3
	dst.DrawTextCentered(y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d", g.session.FinalScore()), core.ColorWhite)
	if best, err := g.session.HighScore(); err == nil {
		dst.DrawTextCentered(y+3, fmt.Sprintf("Best: %d", best), core.ColorYellow)
	}
}

// Resize adapts the play area to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.layout(w, h)
	g.spawner.Resize(g.size)
}

// Exit tears the run down. A pending restart panel never appears.
func (g *Game) Exit() {
	g.session.Close()
}

// Session exposes the run's session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Controller exposes the drag controller.
func (g *Game) Controller() *drag.Controller {
	return g.ctrl
}

// World exposes the physics world.
func (g *Game) World() *physics.World {
	return g.world
}

// Surfaces exposes the UI surfaces.
func (g *Game) Surfaces() *ui.Surfaces {
	return g.surfaces
}
