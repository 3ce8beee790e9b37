package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{runeKey("w"), core.ActionTiltUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionTiltUp, false},
		{runeKey("s"), core.ActionTiltDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTiltLeft, false},
		{runeKey("d"), core.ActionTiltRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionLevel, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("a"), &frame)
	km.MapKeyToFrame(runeKey("w"), &frame)
	if !frame.Has(core.ActionTiltLeft) || !frame.Has(core.ActionTiltUp) {
		t.Error("frame should hold both tilt actions")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"up":    {tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		"j":     {runeKey("j"), MenuActionDown},
		"left":  {tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		"l":     {runeKey("l"), MenuActionRight},
		"enter": {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"tab":   {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"esc":   {tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		"q":     {runeKey("q"), MenuActionQuit},
	}
	for name, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: got %v, want %v", name, got, tt.want)
		}
	}
}
