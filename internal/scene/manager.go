package scene

import (
	"fmt"

	"github.com/vovakirdan/tiny-planets/internal/core"
	"github.com/vovakirdan/tiny-planets/internal/logging"
)

// Loader loads scenes by name or build index.
type Loader interface {
	LoadByName(name string) error
	LoadByIndex(index int) error
	ActiveIndex() int
}

// Manager owns the active scene. Loading a scene exits the previous one and
// enters a fresh instance, so a reload starts from scratch.
type Manager struct {
	registry *Registry
	build    []string
	env      Env

	active      Scene
	activeIndex int
}

// NewManager creates a manager over the build list. A nil registry means
// the default one.
func NewManager(reg *Registry, build []string, env Env) *Manager {
	if reg == nil {
		reg = defaultRegistry
	}
	env.Logger = logging.OrDiscard(env.Logger)
	return &Manager{
		registry:    reg,
		build:       append([]string(nil), build...),
		env:         env,
		activeIndex: -1,
	}
}

// Build returns the build list.
func (m *Manager) Build() []string {
	return m.build
}

// IndexOf returns the build index of a scene name, or -1.
func (m *Manager) IndexOf(name string) int {
	for i, n := range m.build {
		if n == name {
			return i
		}
	}
	return -1
}

// LoadByName loads the scene with the given build-list name.
func (m *Manager) LoadByName(name string) error {
	i := m.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("scene: %q is not in the build list: %w", name, ErrNotFound)
	}
	return m.LoadByIndex(i)
}

// LoadByIndex loads the scene at the given build index.
func (m *Manager) LoadByIndex(index int) error {
	if index < 0 || index >= len(m.build) {
		return fmt.Errorf("scene: build index %d: %w", index, ErrNotFound)
	}
	name := m.build[index]

	next, err := m.registry.Create(name, m.env)
	if err != nil {
		return err
	}

	if m.active != nil {
		m.active.Exit()
	}
	m.active = next
	m.activeIndex = index
	m.env.Logger.Debug("scene loaded", "name", name, "index", index)
	return nil
}

// ActiveIndex returns the build index of the active scene, or -1.
func (m *Manager) ActiveIndex() int {
	return m.activeIndex
}

// Active returns the active scene, or nil before the first load.
func (m *Manager) Active() Scene {
	return m.active
}

// Update forwards to the active scene.
func (m *Manager) Update(in core.InputFrame, dt float64) core.Action {
	if m.active == nil {
		return core.ActionNone
	}
	return m.active.Update(in, dt)
}

// Render forwards to the active scene.
func (m *Manager) Render(dst *core.Screen) {
	if m.active != nil {
		m.active.Render(dst)
	}
}

// Resize updates the screen size handed to scenes loaded from now on.
// The active scene is told if it cares.
func (m *Manager) Resize(width, height int) {
	m.env.Runtime.ScreenW = width
	m.env.Runtime.ScreenH = height
	if r, ok := m.active.(interface{ Resize(w, h int) }); ok {
		r.Resize(width, height)
	}
}

// Close exits the active scene.
func (m *Manager) Close() {
	if m.active != nil {
		m.active.Exit()
		m.active = nil
	}
	m.activeIndex = -1
}
