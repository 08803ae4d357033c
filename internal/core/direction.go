package core

import "fmt"

// Direction is the heading of the snake's head.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{DirLeft, DirUp, DirRight, DirDown}

// Opposite returns the reverse heading. Left<->Right, Up<->Down.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	panic(fmt.Sprintf("core: invalid direction %d", int(d)))
}

// Offset returns the unit grid offset for the heading.
// Up is y+1 and Down is y-1.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	}
	panic(fmt.Sprintf("core: invalid direction %d", int(d)))
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
