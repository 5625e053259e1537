package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/logging"
	"github.com/vovakirdan/tiny-planets/internal/scene"
)

// Model is the Bubble Tea model hosting the game's scenes.
type Model struct {
	manager    *scene.Manager
	nav        *scene.Navigator
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	mouse      *PointerMapper
	pointer    *core.PointerQueue
	inputFrame core.InputFrame
	logger     *log.Logger
	err        error
	quitting   bool
}

// NewModel creates the host and loads the first scene of the build list.
// A nil registry means the scenes registered from init().
func NewModel(reg *scene.Registry, env scene.Env) (Model, error) {
	// Use time-based seed if not specified
	if env.Runtime.Seed == 0 {
		env.Runtime.Seed = time.Now().UnixNano()
	}
	if env.Camera.Aspect <= 0 {
		env.Camera = core.DefaultCamera()
	}
	env.Logger = logging.OrDiscard(env.Logger)

	build := env.Config.Scenes.Build
	if len(build) == 0 {
		build = []string{scene.NameMenu, scene.NameGame}
	}
	manager := scene.NewManager(reg, build, env)
	if err := manager.LoadByIndex(0); err != nil {
		return Model{}, err
	}

	return Model{
		manager:    manager,
		nav:        scene.NewNavigator(manager),
		screen:     core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		config:     env.Runtime,
		keys:       NewKeyMapper(),
		mouse:      NewPointerMapper(env.Camera),
		pointer:    &core.PointerQueue{},
		inputFrame: core.NewInputFrame(),
		logger:     env.Logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.mouse.Map(msg); ok {
			m.pointer.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Scenes keep their state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.manager.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame: at most one pointer sample, the key actions
// collected since the last tick, then any scene transition requested.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if ev, ok := m.pointer.Pop(); ok {
		m.inputFrame.Pointer = &ev
	}

	action := m.manager.Update(m.inputFrame, m.config.Delta())
	m.inputFrame.Clear()

	if action != core.ActionNone {
		m.logger.Debug("scene action", "action", action, "scene", m.manager.Active().Name())
		// Samples aimed at the old scene must not leak into the new one.
		m.pointer.Reset()
	}

	quit, err := m.nav.Dispatch(action)
	if err != nil {
		m.logger.Error("scene transition failed", "action", action, "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.manager.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".planets", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("planets_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the active scene.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.manager.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Close exits the active scene.
func (m Model) Close() {
	m.manager.Close()
}

// Scene returns the active scene.
func (m Model) Scene() scene.Scene {
	return m.manager.Active()
}

// Run starts the Bubble Tea program with the scenes registered from init().
func Run(env scene.Env) error {
	model, err := NewModel(nil, env)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
