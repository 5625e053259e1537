package core

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	c := Circle{Center: V(10, 10), Radius: 2}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", V(10, 10), true},
		{"inside", V(11, 11), true},
		{"on edge", V(12, 10), true},
		{"outside right", V(12.1, 10), false},
		{"outside diagonal", V(11.5, 11.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same center", Circle{V(0, 0), 1}, Circle{V(0, 0), 1}, true},
		{"overlapping", Circle{V(0, 0), 2}, Circle{V(3, 0), 2}, true},
		{"touching", Circle{V(0, 0), 1}, Circle{V(2, 0), 1}, false},
		{"apart", Circle{V(0, 0), 1}, Circle{V(5, 5), 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Math(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if got := a.Add(V(1, 1)); got != V(4, 5) {
		t.Errorf("Add() = %v, expected (4, 5)", got)
	}
	if got := a.Sub(V(1, 1)); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if d := V(0, 0).Dist(V(0, 7)); d != 7 {
		t.Errorf("Dist() = %f, expected 7", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := DefaultCamera()

	for _, cell := range [][2]int{{0, 0}, {5, 3}, {79, 23}} {
		p := cam.ScreenToWorld(cell[0], cell[1])
		x, y := cam.WorldToScreen(p)
		if x != cell[0] || y != cell[1] {
			t.Errorf("WorldToScreen(ScreenToWorld(%d, %d)) = (%d, %d)", cell[0], cell[1], x, y)
		}
	}

	p := cam.ScreenToWorld(2, 3)
	if p.X != 2.5 || p.Y != 7 {
		t.Errorf("ScreenToWorld(2, 3) = %v, expected (2.5, 7)", p)
	}

	size := cam.WorldSize(80, 24)
	if size.X != 80 || size.Y != 48 {
		t.Errorf("WorldSize(80, 24) = %v, expected (80, 48)", size)
	}
}

func TestCameraZeroAspect(t *testing.T) {
	cam := Camera{}
	p := cam.ScreenToWorld(1, 1)
	if math.Abs(p.Y-1.5) > 1e-9 {
		t.Errorf("zero aspect should behave as 1, got %v", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
