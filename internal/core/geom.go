// Package core provides fundamental types and utilities for the planets game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Circle is a circular collision boundary.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains returns true if p lies inside the circle. Points on the edge are inside.
func (c Circle) Contains(p Vec2) bool {
	return c.Center.Dist(p) <= c.Radius
}

// Overlaps returns true if the two circles intersect.
// Circles that only touch are not considered overlapping.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Camera maps terminal cells to world coordinates.
// Terminal cells are roughly twice as tall as they are wide, so one row
// spans Aspect world units vertically while one column spans one unit.
type Camera struct {
	Aspect float64
}

// DefaultCamera returns a camera tuned for typical terminal fonts.
func DefaultCamera() Camera {
	return Camera{Aspect: 2}
}

// ScreenToWorld returns the world position of the center of cell (col, row).
func (c Camera) ScreenToWorld(col, row int) Vec2 {
	return Vec2{
		X: float64(col) + 0.5,
		Y: (float64(row) + 0.5) * c.aspect(),
	}
}

// WorldToScreen returns the cell containing world position p.
func (c Camera) WorldToScreen(p Vec2) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / c.aspect()))
}

// WorldSize returns the world extent covered by a screen of w x h cells.
func (c Camera) WorldSize(w, h int) Vec2 {
	return Vec2{X: float64(w), Y: float64(h) * c.aspect()}
}

func (c Camera) aspect() float64 {
	if c.Aspect <= 0 {
		return 1
	}
	return c.Aspect
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
