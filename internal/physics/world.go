// Package physics is the smallest collision layer the game needs: circular
// bodies, a point-containment query and contact-begin notifications.
// There is no force integration beyond constant velocities.
package physics

import (
	"github.com/vovakirdan/tiny-planets/internal/core"
)

// ContactFunc is called when a body starts overlapping another.
type ContactFunc func(other *Body)

// Body is a circular collision boundary attached to a game entity.
type Body struct {
	ID        int
	Tag       string
	Pos       core.Vec2
	Vel       core.Vec2
	Radius    float64
	OnContact ContactFunc

	destroyed bool
}

// Circle returns the body's boundary in world space.
func (b *Body) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Destroyed reports whether the body has been removed from its world.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

type pair struct {
	a, b int // a < b
}

func makePair(x, y *Body) pair {
	if x.ID < y.ID {
		return pair{x.ID, y.ID}
	}
	return pair{y.ID, x.ID}
}

// World owns the bodies of one scene.
type World struct {
	bodies   []*Body
	contacts map[pair]bool
	pending  []*Body // destroyed during Step, removed afterwards
	stepping bool
	nextID   int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		contacts: make(map[pair]bool),
	}
}

// Add inserts a body and assigns it an ID. Later bodies are on top for
// OverlapPoint.
func (w *World) Add(b *Body) *Body {
	w.nextID++
	b.ID = w.nextID
	b.destroyed = false
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns the live bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Count returns the number of live bodies with the given tag.
func (w *World) Count(tag string) int {
	n := 0
	for _, b := range w.bodies {
		if b.Tag == tag && !b.destroyed {
			n++
		}
	}
	return n
}

// OverlapPoint returns the topmost body whose boundary contains p, or nil.
func (w *World) OverlapPoint(p core.Vec2) *Body {
	for i := len(w.bodies) - 1; i >= 0; i-- {
		b := w.bodies[i]
		if !b.destroyed && b.Circle().Contains(p) {
			return b
		}
	}
	return nil
}

// Destroy removes a body. Inside Step the removal is deferred until the step
// finishes so callbacks never see a shrinking slice.
func (w *World) Destroy(b *Body) {
	if b == nil || b.destroyed {
		return
	}
	b.destroyed = true
	if w.stepping {
		w.pending = append(w.pending, b)
		return
	}
	w.remove(b)
}

// Step moves bodies by their velocity and reports new contacts.
// Each newly overlapping pair fires OnContact on both bodies once; the pair
// fires again only after it has separated.
func (w *World) Step(dt float64) {
	w.stepping = true

	for _, b := range w.bodies {
		if !b.destroyed {
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		}
	}

	current := make(map[pair]bool, len(w.contacts))
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.destroyed || b.destroyed {
				continue
			}
			if !a.Circle().Overlaps(b.Circle()) {
				continue
			}
			p := makePair(a, b)
			current[p] = true
			if w.contacts[p] {
				continue
			}
			if a.OnContact != nil {
				a.OnContact(b)
			}
			if b.OnContact != nil && !b.destroyed {
				b.OnContact(a)
			}
		}
	}
	w.contacts = current

	w.stepping = false
	for _, b := range w.pending {
		w.remove(b)
	}
	w.pending = w.pending[:0]
}

// Cull destroys bodies with the given tag that are fully outside bounds
// grown by margin.
func (w *World) Cull(tag string, size core.Vec2, margin float64) int {
	n := 0
	for _, b := range append([]*Body(nil), w.bodies...) {
		if b.Tag != tag || b.destroyed {
			continue
		}
		r := b.Radius + margin
		if b.Pos.X < -r || b.Pos.Y < -r || b.Pos.X > size.X+r || b.Pos.Y > size.Y+r {
			w.Destroy(b)
			n++
		}
	}
	return n
}

func (w *World) remove(b *Body) {
	for i, x := range w.bodies {
		if x == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for p := range w.contacts {
		if p.a == b.ID || p.b == b.ID {
			delete(w.contacts, p)
		}
	}
}
