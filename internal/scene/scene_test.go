package scene

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tiny-planets/internal/core"
)

type fakeScene struct {
	name   string
	serial int
	exited bool
	next   core.Action
}

func (s *fakeScene) Name() string                                      { return s.name }
func (s *fakeScene) Update(in core.InputFrame, dt float64) core.Action { return s.next }
func (s *fakeScene) Render(dst *core.Screen)                           {}
func (s *fakeScene) Exit()                                             { s.exited = true }

type fixture struct {
	reg     *Registry
	created []*fakeScene
}

func newFixture(names ...string) *fixture {
	f := &fixture{reg: NewRegistry()}
	for _, n := range names {
		f.reg.Register(n, n+" scene", func(env Env) Scene {
			s := &fakeScene{name: n, serial: len(f.created)}
			f.created = append(f.created, s)
			return s
		})
	}
	return f
}

func TestRegistryListSorted(t *testing.T) {
	f := newFixture("Menu", "Game")

	list := f.reg.List()
	if len(list) != 2 || list[0].Name != "Game" || list[1].Name != "Menu" {
		t.Errorf("List() = %v, expected Game then Menu", list)
	}
	if !f.reg.Exists("Menu") || f.reg.Exists("Credits") {
		t.Error("Exists() wrong")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	f := newFixture("Menu")
	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate name should panic")
		}
	}()
	f.reg.Register("Menu", "", func(Env) Scene { return nil })
}

func TestManagerLoadByName(t *testing.T) {
	f := newFixture("Menu", "Game")
	m := NewManager(f.reg, []string{NameMenu, NameGame}, Env{})

	if m.ActiveIndex() != -1 || m.Active() != nil {
		t.Fatal("fresh manager should have no active scene")
	}

	if err := m.LoadByName(NameGame); err != nil {
		t.Fatalf("LoadByName() error = %v", err)
	}
	if m.ActiveIndex() != 1 || m.Active().Name() != NameGame {
		t.Errorf("active = %d/%s, expected 1/Game", m.ActiveIndex(), m.Active().Name())
	}

	first := f.created[0]
	if err := m.LoadByName(NameMenu); err != nil {
		t.Fatalf("LoadByName() error = %v", err)
	}
	if !first.exited {
		t.Error("previous scene was not exited")
	}
}

func TestManagerNotFound(t *testing.T) {
	f := newFixture("Menu")
	m := NewManager(f.reg, []string{NameMenu, NameGame}, Env{})

	tests := []struct {
		name string
		load func() error
	}{
		{"not in build list", func() error { return m.LoadByName("Credits") }},
		{"not registered", func() error { return m.LoadByName(NameGame) }},
		{"index out of range", func() error { return m.LoadByIndex(5) }},
		{"negative index", func() error { return m.LoadByIndex(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.load(); !errors.Is(err, ErrNotFound) {
				t.Errorf("error = %v, expected ErrNotFound", err)
			}
		})
	}
}

func TestManagerFailedLoadKeepsActive(t *testing.T) {
	f := newFixture("Menu")
	m := NewManager(f.reg, []string{NameMenu, NameGame}, Env{})
	m.LoadByName(NameMenu) //nolint:errcheck

	m.LoadByName(NameGame) //nolint:errcheck

	if m.Active() == nil || m.Active().Name() != NameMenu || f.created[0].exited {
		t.Error("a failed load must leave the active scene running")
	}
}

func TestNavigator(t *testing.T) {
	f := newFixture("Menu", "Game")
	m := NewManager(f.reg, []string{NameMenu, NameGame}, Env{})
	nav := NewNavigator(m)

	if err := nav.MainMenu(); err != nil {
		t.Fatal(err)
	}
	if m.Active().Name() != NameMenu {
		t.Errorf("MainMenu() loaded %s", m.Active().Name())
	}

	if err := nav.Start(); err != nil {
		t.Fatal(err)
	}
	if m.Active().Name() != NameGame {
		t.Errorf("Start() loaded %s", m.Active().Name())
	}
	before := m.Active()

	if err := nav.Restart(); err != nil {
		t.Fatal(err)
	}
	if m.Active() == before {
		t.Error("Restart() should create a fresh instance")
	}
	if m.Active().Name() != NameGame || m.ActiveIndex() != 1 {
		t.Errorf("Restart() loaded %s at %d, expected Game at 1", m.Active().Name(), m.ActiveIndex())
	}
	if !before.(*fakeScene).exited {
		t.Error("Restart() should exit the old instance")
	}
}

func TestNavigatorRestartWithoutActive(t *testing.T) {
	f := newFixture("Menu")
	nav := NewNavigator(NewManager(f.reg, []string{NameMenu}, Env{}))

	if err := nav.Restart(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restart() with nothing loaded = %v, expected ErrNotFound", err)
	}
}

func TestNavigatorDispatch(t *testing.T) {
	f := newFixture("Menu", "Game")
	m := NewManager(f.reg, []string{NameMenu, NameGame}, Env{})
	nav := NewNavigator(m)

	tests := []struct {
		action   core.Action
		expected string
		quit     bool
	}{
		{core.ActionConfirm, NameGame, false},
		{core.ActionMenu, NameMenu, false},
		{core.ActionNone, NameMenu, false},
		{core.ActionQuit, NameMenu, true},
	}
	for _, tt := range tests {
		quit, err := nav.Dispatch(tt.action)
		if err != nil {
			t.Fatalf("Dispatch(%v) error = %v", tt.action, err)
		}
		if quit != tt.quit {
			t.Errorf("Dispatch(%v) quit = %v, expected %v", tt.action, quit, tt.quit)
		}
		if got := m.Active().Name(); got != tt.expected {
			t.Errorf("after Dispatch(%v) active = %s, expected %s", tt.action, got, tt.expected)
		}
	}
}

func TestManagerUpdateForwards(t *testing.T) {
	f := newFixture("Menu")
	m := NewManager(f.reg, []string{NameMenu}, Env{})

	if got := m.Update(core.NewInputFrame(), 0.1); got != core.ActionNone {
		t.Errorf("Update() with no scene = %v", got)
	}

	m.LoadByIndex(0) //nolint:errcheck
	f.created[0].next = core.ActionConfirm
	if got := m.Update(core.NewInputFrame(), 0.1); got != core.ActionConfirm {
		t.Errorf("Update() = %v, expected Confirm", got)
	}

	m.Close()
	if !f.created[0].exited || m.Active() != nil {
		t.Error("Close() should exit the active scene")
	}
}
