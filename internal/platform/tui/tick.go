// Package tui provides the Bubble Tea integration for the map coloring game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
// Tag identifies the model whose loop scheduled it.
type TickMsg struct {
	Time time.Time
	Tag  uint64
}

var tickTags atomic.Uint64

// newTickTag returns a tag unique to one tick loop.
func newTickTag() uint64 {
	return tickTags.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, tag uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Tag: tag}
	})
}
