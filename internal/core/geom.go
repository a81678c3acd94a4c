// Package core provides fundamental types and utilities for the scene kernel.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// RectF is an axis-aligned box in canvas coordinates (origin top-left, y down).
// Bounding boxes of actors and tiles are RectF values.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// RectFromCenter builds a box of size w x h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the box.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the box has no area. Empty boxes never collide.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Expand grows the box by m on every side.
func (r RectF) Expand(m float64) RectF {
	return RectF{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Touches reports whether two boxes overlap or share an edge.
// Used by the bounds resolver, where touching an edge counts as crossing it.
func (r RectF) Touches(o RectF) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// Intersects reports whether two boxes strictly overlap.
// Adjacent boxes do not intersect.
func (r RectF) Intersects(o RectF) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsPoint returns true if (x, y) lies inside the box (right/bottom exclusive).
func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
