// Package engine implements the tilt-ball simulation: collision resolution,
// per-tick ball integration and the level-run state machine.
// It does no I/O and never blocks; a driver calls Run.Tick at a fixed rate.
package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-silverball/internal/config"
)

// CollisionPolicy selects how obstacles reflect the ball.
type CollisionPolicy int

const (
	PolicyCorner CollisionPolicy = iota // Corner-aware reflection (default)
	PolicyAxis                          // Axis-only fallback for coarse obstacles
)

// String returns the config spelling of the policy.
func (p CollisionPolicy) String() string {
	switch p {
	case PolicyCorner:
		return config.PolicyCorner
	case PolicyAxis:
		return config.PolicyAxis
	default:
		return "unknown"
	}
}

// Tuning holds every simulation constant. It is passed to the simulator at
// construction so tests can vary parameters freely.
type Tuning struct {
	BounceFactor              float64       // Restitution for faces and walls
	HaltBallThreshold         float64       // Velocity delta above which the ball stays at its previous position
	BounceSoundThreshold      float64       // Min wall impact speed for a bounce sound
	BounceAngleSoundThreshold float64       // Radians of direction change for an obstacle bounce sound
	AccelerationScale         float64       // Tilt to world acceleration factor
	TickInterval              time.Duration // Fixed dt per tick
	TimeScale                 float64       // Multiplier on level time limits
	Policy                    CollisionPolicy
}

// DefaultTuning returns the stock constants for a 100-unit base dimension.
func DefaultTuning() Tuning {
	return TuningFromConfig(config.DefaultSilverballConfig(), 1)
}

// TuningFromConfig converts a loaded config into simulator constants.
// scale is the ratio between the layout's base dimension and the config's
// reference base; speed-like values are multiplied by it.
func TuningFromConfig(cfg config.SilverballConfig, scale float64) Tuning {
	policy := PolicyCorner
	if cfg.Collision.Policy == config.PolicyAxis {
		policy = PolicyAxis
	}
	timeScale := cfg.Gameplay.TimeScale
	if timeScale <= 0 {
		timeScale = 1
	}

	return Tuning{
		BounceFactor:              cfg.Physics.BounceFactor,
		HaltBallThreshold:         cfg.Physics.HaltBallThreshold * scale,
		BounceSoundThreshold:      cfg.Physics.BounceSoundThreshold * scale,
		BounceAngleSoundThreshold: cfg.Physics.BounceAngleSoundThreshold * math.Pi / 180,
		AccelerationScale:         cfg.Physics.AccelerationScale * scale,
		TickInterval:              cfg.Timing.TickInterval(),
		TimeScale:                 timeScale,
		Policy:                    policy,
	}
}

// dt returns the tick interval in seconds.
func (t Tuning) dt() float64 {
	return t.TickInterval.Seconds()
}
