package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim j", runeKey('j'), core.ActionDown},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim l", runeKey('l'), core.ActionRight},
		{"wasd a", runeKey('a'), core.ActionLeft},
		{"wasd s", runeKey('s'), core.ActionDown},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestCellToScreen(t *testing.T) {
	a := core.NewArena(10, 10)

	tests := []struct {
		p        core.Position
		col, row int
	}{
		{core.Position{X: 0, Y: 0}, 1, 10},
		{core.Position{X: 0, Y: 9}, 1, 1},
		{core.Position{X: 9, Y: 0}, 19, 10},
		{core.Position{X: 3, Y: 3}, 7, 7},
	}

	for _, tc := range tests {
		col, row := CellToScreen(a, tc.p)
		if col != tc.col || row != tc.row {
			t.Errorf("CellToScreen(%v) = (%d,%d), expected (%d,%d)", tc.p, col, row, tc.col, tc.row)
		}
	}

	if w, h := BoardSize(a); w != 22 || h != 13 {
		t.Errorf("BoardSize = %dx%d, expected 22x13", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	a := core.NewArena(10, 10)
	w, h := BoardSize(a)
	screen := core.NewScreen(w, h)

	snap := snake.Snapshot{
		Round:    2,
		Arena:    a,
		Segments: []core.Position{{X: 3, Y: 4}, {X: 3, Y: 3}},
		Food:     []core.Position{{X: 0, Y: 0}, {X: -1, Y: 5}},
	}
	DrawBoard(screen, snap)

	col, row := CellToScreen(a, snap.Segments[0])
	if cell := screen.GetCell(col, row); cell.Rune != '█' || cell.Color != core.ColorHead {
		t.Errorf("head cell = %+v", cell)
	}
	col, row = CellToScreen(a, snap.Segments[1])
	if cell := screen.GetCell(col+1, row); cell.Rune != '▓' || cell.Color != core.ColorBody {
		t.Errorf("body cell = %+v", cell)
	}
	col, row = CellToScreen(a, snap.Food[0])
	if cell := screen.GetCell(col, row); cell.Rune != '(' || cell.Color != core.ColorFood {
		t.Errorf("food cell = %+v", cell)
	}

	if screen.Get(0, 0) != '┌' || screen.Get(w-1, a.Height+1) != '┘' {
		t.Error("border corners not drawn")
	}
	if hud := screen.Row(h - 1); !strings.Contains(hud, "round 2") || !strings.Contains(hud, "length 2") {
		t.Errorf("HUD = %q", hud)
	}
	// Food outside the arena is not drawn over the border
	if screen.Get(0, 1+(a.Height-1-5)) != '│' {
		t.Error("out-of-arena food overwrote the border")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	screen := core.NewScreen(4, 2)
	screen.DrawText(0, 0, "ab")
	screen.DrawText(0, 1, "cd")

	if got := RenderScreen(screen, DefaultStyles()); got != "ab  \ncd  " {
		t.Errorf("RenderScreen = %q", got)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	s, err := session.New(cfg, session.Options{})
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	return NewModel(s, DefaultStyles())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelAppliesInputOnMove(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.session.Game().Direction() != core.DirUp {
		t.Fatal("input must not apply before the move tick")
	}

	m = update(t, m, FrameMsg{})
	m = update(t, m, MoveMsg{})

	game := m.session.Game()
	if game.Direction() != core.DirRight {
		t.Errorf("direction = %v, expected right", game.Direction())
	}
	if head := game.Segments()[0]; head != (core.Position{X: 4, Y: 3}) {
		t.Errorf("head = %v, expected (4,3)", head)
	}
}

func TestModelLastSampleWins(t *testing.T) {
	m := newTestModel(t)

	// Two frames before one move: only the later sample is applied
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, FrameMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, FrameMsg{})
	m = update(t, m, FrameMsg{}) // empty frame keeps the sample
	m = update(t, m, MoveMsg{})

	if d := m.session.Game().Direction(); d != core.DirRight {
		t.Errorf("direction = %v, expected right", d)
	}

	// The sample is consumed by the move
	m = update(t, m, MoveMsg{})
	if head := m.session.Game().Segments()[0]; head != (core.Position{X: 5, Y: 3}) {
		t.Errorf("head = %v, expected (5,3)", head)
	}
}

func TestModelFoodAndQuit(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, FoodMsg{})
	if n := len(m.session.Game().FoodPositions()); n != 1 {
		t.Errorf("food on board = %d, expected 1", n)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).Quitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if view := m.View(); !strings.Contains(view, "round 1") {
		t.Errorf("view missing HUD:\n%s", view)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if view := m.View(); !strings.Contains(view, "too small") {
		t.Errorf("expected a size warning, got:\n%s", view)
	}
}
