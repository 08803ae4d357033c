package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Model is the Bubble Tea model for one snake session.
//
// Key presses accumulate into the current input frame. Each frame tick
// latches a non-empty frame as the latest sample, and each move tick applies
// that sample before stepping, so at most one heading change lands per move.
type Model struct {
	session *session.Session
	config  core.RuntimeConfig
	screen  *core.Screen
	styles  Styles
	keys    KeyMap
	help    help.Model

	input   core.InputFrame // Keys pressed since the last frame tick
	sampled core.InputFrame // Latest non-empty frame, applied on the next move

	lastRound *snake.RoundSummary
	width     int
	height    int
	quitting  bool
}

// NewModel creates a Bubble Tea model driving s.
func NewModel(s *session.Session, styles Styles) Model {
	cfg := s.Game().Config()
	w, h := BoardSize(cfg.Arena)

	return Model{
		session: s,
		config:  cfg,
		screen:  core.NewScreen(w, h),
		styles:  styles,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		sampled: core.NewInputFrame(),
	}
}

// Init starts the frame, movement and food loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.config.FPS),
		moveCmd(m.config.MoveInterval),
		foodCmd(m.config.FoodInterval),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.sample()
		return m, frameCmd(m.config.FPS)

	case MoveMsg:
		return m.handleMove()

	case FoodMsg:
		m.session.FoodTick()
		return m, foodCmd(m.config.FoodInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// sample latches the current frame if any key was pressed during it.
func (m *Model) sample() {
	if m.input.Empty() {
		return
	}
	m.sampled = m.input.Clone()
	m.input.Clear()
}

// handleMove applies the latest sample and runs one movement tick.
func (m Model) handleMove() (tea.Model, tea.Cmd) {
	m.sample()
	m.session.ApplyInput(m.sampled)
	m.sampled.Clear()

	if res := m.session.MoveTick(); res.Summary != nil {
		m.lastRound = res.Summary
	}
	return m, moveCmd(m.config.MoveInterval)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardW, boardH := BoardSize(m.config.Arena)
	if m.width > 0 && (m.width < boardW || m.height < boardH+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", boardW, boardH+1, m.width, m.height)
	}

	DrawBoard(m.screen, m.session.Game().Snapshot())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen, m.styles))
	sb.WriteByte('\n')
	if m.lastRound != nil {
		sb.WriteString(m.styles.style(core.ColorHUD).Render(roundLine(*m.lastRound)))
		sb.WriteString("  ")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func roundLine(s snake.RoundSummary) string {
	causes := make([]string, len(s.Causes))
	for i, c := range s.Causes {
		causes[i] = string(c)
	}
	return fmt.Sprintf("last: round %d, length %d, %s", s.Round, s.Length, strings.Join(causes, "+"))
}

// Run starts the Bubble Tea program for s on the local terminal.
func Run(s *session.Session) error {
	p := tea.NewProgram(NewModel(s, DefaultStyles()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
