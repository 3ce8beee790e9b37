package core

import (
	"math"
	"sync/atomic"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltUp           // W, Up arrow - tilt the board away from the player
	ActionTiltDown         // S, Down arrow - tilt the board toward the player
	ActionTiltLeft         // A, Left arrow
	ActionTiltRight        // D, Right arrow
	ActionLevel            // Space - level the board (zero tilt)
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltUp:
		return "TiltUp"
	case ActionTiltDown:
		return "TiltDown"
	case ActionTiltLeft:
		return "TiltLeft"
	case ActionTiltRight:
		return "TiltRight"
	case ActionLevel:
		return "Level"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Tilt holds the current board tilt as an acceleration vector.
// Writers (keyboard, scripts, sensors) may run on any goroutine; the
// simulation reads one snapshot per tick. Each component is stored as
// float bits in its own atomic word, so a read racing a write may pair an
// old X with a new Y. That is acceptable: the next tick sees both.
type Tilt struct {
	x atomic.Uint64
	y atomic.Uint64
}

// Set stores a new tilt vector.
func (t *Tilt) Set(v Vector2) {
	t.x.Store(math.Float64bits(v.X))
	t.y.Store(math.Float64bits(v.Y))
}

// Nudge adds d to the current tilt, clamping each axis to [-limit, limit].
func (t *Tilt) Nudge(d Vector2, limit float64) {
	cur := t.Acceleration()
	t.Set(Vector2{
		X: ClampF(cur.X+d.X, -limit, limit),
		Y: ClampF(cur.Y+d.Y, -limit, limit),
	})
}

// Acceleration returns the latest tilt vector.
func (t *Tilt) Acceleration() Vector2 {
	return Vector2{
		X: math.Float64frombits(t.x.Load()),
		Y: math.Float64frombits(t.y.Load()),
	}
}
