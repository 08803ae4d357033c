package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the snake board.
const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorFood
	ColorBorder
	ColorHUD
)
