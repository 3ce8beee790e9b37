// Package tui runs Silverball in a terminal with Bubble Tea, locally or
// per SSH session through Wish. It owns key mapping, the tick loop,
// score persistence and the menu and scoreboard screens.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// model that scheduled it, so a stale tick from a closed game is dropped
// instead of doubling the next game's tick rate.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 50
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
