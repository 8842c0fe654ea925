// Package tui provides the Bubble Tea host for the runner.
// It owns the terminal UI loop, maps input to runner actions and journals runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-run/internal/games/dino"
)

// FrameMsg is the frame callback requested from the runner loop.
type FrameMsg struct {
	ID dino.FrameID
}

// frameCmd returns a Bubble Tea command that delivers frame id after one
// frame interval at the given rate.
func frameCmd(tickRate int, id dino.FrameID) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
