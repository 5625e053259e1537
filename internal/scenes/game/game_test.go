package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tiny-planets/internal/config"
	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/physics"
	"github.com/vovakirdan/tiny-planets/internal/scene"
	"github.com/vovakirdan/tiny-planets/internal/session"
	"github.com/vovakirdan/tiny-planets/internal/storage"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

type fakeRuns struct {
	scores []int
}

func (f *fakeRuns) SaveScore(gameID string, score int) (int64, error) {
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), nil
}

func newTestGame(t *testing.T) (*Game, *storage.MemoryPrefs, *fakeRuns) {
	t.Helper()
	cfg := config.DefaultPlanetsConfig()
	cfg.Hazards.SpawnInterval = 1000 // keep the field empty unless a test spawns
	prefs := storage.NewMemoryPrefs()
	runs := &fakeRuns{}
	g := New(scene.Env{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42},
		Config:  cfg,
		Camera:  core.DefaultCamera(),
		Prefs:   prefs,
		Runs:    runs,
	})
	return g, prefs, runs
}

func step(g *Game, n int) core.Action {
	var last core.Action
	for range n {
		last = g.Update(core.NewInputFrame(), 0.1)
	}
	return last
}

func pointer(phase core.PointerPhase, pos core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = &core.PointerEvent{Phase: phase, Pos: pos}
	return in
}

func TestNewGameStartsRunning(t *testing.T) {
	g, _, _ := newTestGame(t)

	if g.Name() != scene.NameGame {
		t.Errorf("Name() = %q", g.Name())
	}
	if g.Session().State() != session.StateRunning {
		t.Error("session should start running")
	}
	if !g.Surfaces().IsActive(ui.SurfaceGame) || g.Surfaces().IsActive(ui.SurfaceRestart) {
		t.Error("only the game surface should be active at start")
	}
	center := core.V(40, 24)
	if g.Controller().Body().Pos != center {
		t.Errorf("player at %v, expected %v", g.Controller().Body().Pos, center)
	}
}

func TestDragMovesPlayer(t *testing.T) {
	g, _, _ := newTestGame(t)
	start := g.Controller().Body().Pos

	g.Update(pointer(core.PointerBegin, start), 0.1)
	if !g.Controller().Held() {
		t.Fatal("pressing on the player should hold it")
	}
	g.Update(pointer(core.PointerMove, core.V(10, 10)), 0.1)
	if g.Controller().Body().Pos != core.V(10, 10) {
		t.Errorf("player at %v, expected (10, 10)", g.Controller().Body().Pos)
	}
	g.Update(pointer(core.PointerEnd, core.V(10, 10)), 0.1)
	if g.Controller().Held() {
		t.Error("release should drop the player")
	}
}

func TestHazardCollisionEndsRun(t *testing.T) {
	g, prefs, runs := newTestGame(t)
	step(g, 30)

	player := g.Controller().Body()
	g.World().Add(&physics.Body{Tag: "Planet", Pos: player.Pos, Radius: 1})
	g.Update(core.NewInputFrame(), 0.1)

	if !g.Controller().Dead() {
		t.Fatal("player should die on hazard contact")
	}
	if g.Session().State() != session.StateGameOver {
		t.Error("session should be over")
	}
	if g.Session().Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", g.Session().Elapsed())
	}
	if !g.Surfaces().IsActive(ui.SurfaceRestart) || g.Surfaces().IsActive(ui.SurfaceGame) {
		t.Error("restart surface should replace the game surface")
	}
	if best, _ := prefs.GetInt("Highscore", 0); best != 3 {
		t.Errorf("high score = %d, expected 3", best)
	}
	if len(runs.scores) != 1 || runs.scores[0] != 3 {
		t.Errorf("recorded runs = %v, expected [3]", runs.scores)
	}
	if len(g.World().Bodies()) != 0 {
		t.Errorf("world still has %d bodies", len(g.World().Bodies()))
	}
}

func TestRestartButtonsAppearAfterDelay(t *testing.T) {
	g, _, _ := newTestGame(t)
	player := g.Controller().Body()
	g.World().Add(&physics.Body{Tag: "Planet", Pos: player.Pos, Radius: 1})
	g.Update(core.NewInputFrame(), 0.1)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	step(g, 10)
	if got := g.Update(restart, 0); got != core.ActionNone {
		t.Errorf("Restart before the delay = %v, expected None", got)
	}

	step(g, 10)
	if !g.Surfaces().IsActive(SurfaceRestartButtons) {
		t.Fatal("restart buttons should be visible after the delay")
	}
	if got := g.Update(restart, 0); got != core.ActionRestart {
		t.Errorf("Restart key = %v, expected Restart", got)
	}

	btn := g.Surfaces().Get(SurfaceRestartButtons).Buttons[1]
	pos := g.cam.ScreenToWorld(btn.Rect.X+1, btn.Rect.Y+1)
	if got := g.Update(pointer(core.PointerBegin, pos), 0); got != core.ActionMenu {
		t.Errorf("clicking Menu = %v, expected Menu", got)
	}
}

func TestExitCancelsRestartPanel(t *testing.T) {
	g, _, _ := newTestGame(t)
	player := g.Controller().Body()
	g.World().Add(&physics.Body{Tag: "Planet", Pos: player.Pos, Radius: 1})
	g.Update(core.NewInputFrame(), 0.1)

	g.Exit()
	step(g, 30)

	if g.Surfaces().IsActive(SurfaceRestartButtons) {
		t.Error("restart buttons appeared after Exit")
	}
}

func TestSpawnerLaunchesHazards(t *testing.T) {
	cfg := config.DefaultPlanetsConfig()
	g := New(scene.Env{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
		Config:  cfg,
	})

	// Park the player in a corner so hazards aimed at the middle miss it.
	g.Controller().Body().Pos = core.V(-100, -100)
	step(g, 50)

	if g.spawner.Spawned() == 0 {
		t.Error("no hazards spawned after 5s")
	}
	if n := g.World().Count(cfg.Hazards.Tag); n > cfg.Hazards.MaxActive {
		t.Errorf("%d active hazards, limit is %d", n, cfg.Hazards.MaxActive)
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultPlanetsConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	size := core.V(80, 48)

	run := func() []core.Vec2 {
		w := physics.NewWorld()
		s := NewSpawner(99, size, cfg.Hazards, diff)
		for range 40 {
			s.Update(w, 0.1, 0)
		}
		var out []core.Vec2
		for _, b := range w.Bodies() {
			out = append(out, b.Pos)
		}
		return out
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("spawn counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("hazard %d at %v vs %v with the same seed", i, a[i], b[i])
		}
	}
}

func TestSpawnerForgetsRemovedHazards(t *testing.T) {
	cfg := config.DefaultPlanetsConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	size := core.V(80, 48)

	w := physics.NewWorld()
	s := NewSpawner(3, size, cfg.Hazards, diff)
	for range 30 {
		s.Update(w, 0.1, 0)
	}
	if len(s.colors) == 0 || len(s.colors) != w.Count(cfg.Hazards.Tag) {
		t.Fatalf("tracked %d colors for %d hazards", len(s.colors), w.Count(cfg.Hazards.Tag))
	}

	bodies := append([]*physics.Body(nil), w.Bodies()...)
	kept := bodies[0]
	for _, b := range bodies[1:] {
		w.Destroy(b)
	}
	s.Prune(w)

	if len(s.colors) != 1 {
		t.Errorf("tracked %d colors after removal, expected 1", len(s.colors))
	}
	if _, ok := s.colors[kept.ID]; !ok {
		t.Error("live hazard lost its color")
	}
}

func TestCullPrunesHazardColors(t *testing.T) {
	g, _, _ := newTestGame(t)
	far := g.World().Add(&physics.Body{Tag: g.cfg.Hazards.Tag, Pos: core.V(-500, -500), Radius: 1})
	g.spawner.colors[far.ID] = core.ColorBlue

	step(g, 1)

	if _, ok := g.spawner.colors[far.ID]; ok {
		t.Error("culled hazard still has a color")
	}
}

func TestRestartButtonsStayOnNarrowScreen(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Resize(20, 10)

	buttons := g.Surfaces().Get(SurfaceRestartButtons).Buttons
	if buttons[0].Rect.X != 0 {
		t.Errorf("Restart X = %d, expected 0", buttons[0].Rect.X)
	}
	if buttons[1].Rect.X <= buttons[0].Rect.Right() {
		t.Errorf("Menu X = %d overlaps Restart ending at %d", buttons[1].Rect.X, buttons[0].Rect.Right())
	}
}

func TestRenderShowsScore(t *testing.T) {
	g, _, _ := newTestGame(t)
	step(g, 20)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if row := dst.Row(0); !strings.Contains(row, " 2 ") {
		t.Errorf("HUD row = %q, expected score 2", row)
	}
}

func TestQuitAlwaysWins(t *testing.T) {
	g, _, _ := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	if got := g.Update(in, 0.1); got != core.ActionQuit {
		t.Errorf("Update() = %v, expected Quit", got)
	}
}
