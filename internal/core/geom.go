// Package core provides fundamental types and utilities for the snake
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "fmt"

// Position is a discrete grid coordinate.
// It has no inherent bounds; validity is relative to an Arena.
type Position struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Offset()
	return p.Add(dx, dy)
}

// String returns the position formatted as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Arena is the fixed-size grid the simulation occupies.
// Row 0 is the bottom row; y grows upwards.
type Arena struct {
	Width  int
	Height int
}

// NewArena creates an arena with the given dimensions.
func NewArena(width, height int) Arena {
	return Arena{Width: width, Height: height}
}

// Contains returns true if p lies inside [0, Width) x [0, Height).
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// Rect represents an axis-aligned screen rectangle used by the presentation layer.
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
