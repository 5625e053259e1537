package ui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tiny-planets/internal/core"
)

func newTestSurfaces() *Surfaces {
	s := NewSurfaces()
	game := s.Add(SurfaceGame, true)
	game.AddButton("Menu", core.NewRect(0, 0, 6, 3), core.ActionMenu, core.ColorWhite)

	restart := s.Add(SurfaceRestart, false)
	restart.AddButton("Restart", core.NewRect(10, 5, 11, 3), core.ActionRestart, core.ColorGreen)
	return s
}

func TestSurfacesActivation(t *testing.T) {
	s := newTestSurfaces()

	if !s.IsActive(SurfaceGame) || s.IsActive(SurfaceRestart) {
		t.Fatal("initial activation wrong")
	}

	s.SetActive(SurfaceRestart, true)
	s.SetActive(SurfaceGame, false)
	s.SetActive("unknown", true)

	if s.IsActive(SurfaceGame) || !s.IsActive(SurfaceRestart) {
		t.Error("SetActive() did not toggle surfaces")
	}
	if s.IsActive("unknown") {
		t.Error("unknown surface must never be active")
	}
}

func TestSurfacesAddExisting(t *testing.T) {
	s := NewSurfaces()
	a := s.Add("x", false)
	b := s.Add("x", true)
	if a != b {
		t.Error("Add() with an existing name should return the same surface")
	}
	if b.Active {
		t.Error("Add() with an existing name should not change activation")
	}
}

func TestHitTest(t *testing.T) {
	s := newTestSurfaces()

	tests := []struct {
		name     string
		x, y     int
		expected core.Action
	}{
		{"active button", 2, 1, core.ActionMenu},
		{"inactive button", 12, 6, core.ActionNone},
		{"empty cell", 30, 20, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitTest(tt.x, tt.y); got != tt.expected {
				t.Errorf("HitTest(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}

	s.SetActive(SurfaceRestart, true)
	if got := s.HitTest(12, 6); got != core.ActionRestart {
		t.Errorf("HitTest() after activation = %v, expected Restart", got)
	}
}

func TestOffers(t *testing.T) {
	s := newTestSurfaces()
	if s.Offers(core.ActionRestart) {
		t.Error("hidden restart button should not be offered")
	}
	s.SetActive(SurfaceRestart, true)
	if !s.Offers(core.ActionRestart) {
		t.Error("visible restart button should be offered")
	}
}

func TestRenderSkipsInactive(t *testing.T) {
	s := newTestSurfaces()
	screen := core.NewScreen(30, 10)

	s.Render(screen)
	if strings.Contains(screen.String(), "Restart") {
		t.Error("inactive surface was drawn")
	}
	if !strings.Contains(screen.String(), "Menu") {
		t.Error("active surface was not drawn")
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 10, 20, 3)
	if r.X != 30 || r.Y != 10 || r.W != 20 || r.H != 3 {
		t.Errorf("CenteredRect() = %+v", r)
	}
}
