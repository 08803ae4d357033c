package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Board glyphs. Every grid cell is two terminal columns wide so the arena
// looks square.
const (
	cellWidth = 2
	glyphHead = "██"
	glyphBody = "▓▓"
	glyphFood = "()"
)

// Styles maps core.Color to lipgloss styles for one renderer. SSH sessions
// each get their own renderer so colour detection follows the client.
type Styles struct {
	colors map[core.Color]lipgloss.Style
}

// NewStyles creates the board palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{colors: map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorHead:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		core.ColorBody:    r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorFood:    r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBorder:  r.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorHUD:     r.NewStyle().Foreground(lipgloss.Color("14")),
	}}
}

// DefaultStyles returns the palette for the local terminal.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

func (s Styles) style(c core.Color) lipgloss.Style {
	if st, ok := s.colors[c]; ok {
		return st
	}
	return s.colors[core.ColorDefault]
}

// BoardSize returns the screen size needed for arena including the border
// and the HUD line.
func BoardSize(a core.Arena) (w, h int) {
	return a.Width*cellWidth + 2, a.Height + 3
}

// CellToScreen maps a grid cell to the screen column and row of its left
// half. Grid y grows upwards, screen rows grow downwards.
func CellToScreen(a core.Arena, p core.Position) (col, row int) {
	return 1 + p.X*cellWidth, 1 + (a.Height - 1 - p.Y)
}

// DrawBoard draws the arena border, food, snake and HUD line onto screen.
// Cells outside the arena are skipped.
func DrawBoard(screen *core.Screen, snap snake.Snapshot) {
	a := snap.Arena
	screen.Clear()
	screen.DrawBox(core.NewRect(0, 0, a.Width*cellWidth+2, a.Height+2), core.ColorBorder)

	draw := func(p core.Position, glyph string, c core.Color) {
		if !a.Contains(p) {
			return
		}
		col, row := CellToScreen(a, p)
		screen.DrawTextColored(col, row, glyph, c)
	}

	for _, f := range snap.Food {
		draw(f, glyphFood, core.ColorFood)
	}
	for i := len(snap.Segments) - 1; i >= 1; i-- {
		draw(snap.Segments[i], glyphBody, core.ColorBody)
	}
	if len(snap.Segments) > 0 {
		draw(snap.Head(), glyphHead, core.ColorHead)
	}

	hud := fmt.Sprintf("round %d  length %d  food %d", snap.Round, snap.Len(), len(snap.Food))
	screen.DrawTextColored(0, a.Height+2, hud, core.ColorHUD)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
