// Package ui holds named screen surfaces (panels) that scenes toggle on and
// off, together with their buttons.
package ui

import (
	"github.com/vovakirdan/tiny-planets/internal/core"
)

// Surface names used by the game scene.
const (
	SurfaceGame    = "game"
	SurfaceRestart = "restart"
	SurfaceMenu    = "menu"
)

// Button is a clickable rectangle that triggers an action.
type Button struct {
	Label  string
	Rect   core.Rect
	Action core.Action
	Color  core.Color
}

// Surface is a named panel. Inactive surfaces are neither drawn nor
// hit-tested.
type Surface struct {
	Name    string
	Active  bool
	Buttons []Button

	// Draw renders surface content besides its buttons. Optional.
	Draw func(s *core.Screen)
}

// AddButton appends a button to the surface.
func (s *Surface) AddButton(label string, r core.Rect, action core.Action, c core.Color) {
	s.Buttons = append(s.Buttons, Button{Label: label, Rect: r, Action: action, Color: c})
}

// Surfaces is the set of panels of one scene, kept in draw order.
type Surfaces struct {
	byName map[string]*Surface
	order  []*Surface
}

// NewSurfaces creates an empty set.
func NewSurfaces() *Surfaces {
	return &Surfaces{byName: make(map[string]*Surface)}
}

// Add registers a surface. Adding an existing name returns the existing one.
func (s *Surfaces) Add(name string, active bool) *Surface {
	if sf, ok := s.byName[name]; ok {
		return sf
	}
	sf := &Surface{Name: name, Active: active}
	s.byName[name] = sf
	s.order = append(s.order, sf)
	return sf
}

// Get returns the named surface or nil.
func (s *Surfaces) Get(name string) *Surface {
	return s.byName[name]
}

// SetActive shows or hides a surface. Unknown names are ignored.
func (s *Surfaces) SetActive(name string, active bool) {
	if sf, ok := s.byName[name]; ok {
		sf.Active = active
	}
}

// IsActive reports whether the named surface is shown.
func (s *Surfaces) IsActive(name string) bool {
	sf, ok := s.byName[name]
	return ok && sf.Active
}

// HitTest returns the action of the topmost active button covering the
// cell, or ActionNone.
func (s *Surfaces) HitTest(x, y int) core.Action {
	for i := len(s.order) - 1; i >= 0; i-- {
		sf := s.order[i]
		if !sf.Active {
			continue
		}
		for _, b := range sf.Buttons {
			if b.Rect.Contains(x, y) {
				return b.Action
			}
		}
	}
	return core.ActionNone
}

// Offers reports whether any active surface has a button for the action.
// Keyboard shortcuts only fire when the matching button is visible.
func (s *Surfaces) Offers(a core.Action) bool {
	for _, sf := range s.order {
		if !sf.Active {
			continue
		}
		for _, b := range sf.Buttons {
			if b.Action == a {
				return true
			}
		}
	}
	return false
}

// Render draws active surfaces in registration order.
func (s *Surfaces) Render(screen *core.Screen) {
	for _, sf := range s.order {
		if !sf.Active {
			continue
		}
		if sf.Draw != nil {
			sf.Draw(screen)
		}
		for _, b := range sf.Buttons {
			drawButton(screen, b)
		}
	}
}

func drawButton(screen *core.Screen, b Button) {
	screen.DrawRect(b.Rect, ' ')
	screen.DrawBox(b.Rect, b.Color)
	x := b.Rect.X + (b.Rect.W-len(b.Label))/2
	y := b.Rect.Y + b.Rect.H/2
	screen.DrawTextColor(x, y, b.Label, b.Color)
}

// CenteredRect returns a w×h rectangle centred horizontally on a screen of
// the given width, with its top edge at y.
func CenteredRect(screenW, y, w, h int) core.Rect {
	return core.NewRect((screenW-w)/2, y, w, h)
}
