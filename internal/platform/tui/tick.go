// Package tui provides the Bubble Tea front end for the snake simulation.
// It samples keyboard input, drives the movement and food cadences and
// draws the board, both on a local terminal and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame to sample input.
type FrameMsg time.Time

// MoveMsg triggers a movement tick.
type MoveMsg time.Time

// FoodMsg triggers a food tick.
type FoodMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func moveCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return MoveMsg(t)
	})
}

func foodCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FoodMsg(t)
	})
}
