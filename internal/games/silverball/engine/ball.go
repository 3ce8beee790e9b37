package engine

import (
	"math"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

// Ball is the simulated ball. Position and Velocity persist across ticks;
// Acceleration is overwritten from the input every tick.
type Ball struct {
	Position     core.Vector2
	Velocity     core.Vector2
	Acceleration core.Vector2
	Radius       float64
}

// Speed returns the length of the velocity.
func (b Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Outcome is what a single simulator step decided.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeFailed
	OutcomeSucceeded
)

// String returns a readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeFailed:
		return "failed"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// FailureReason explains a failed outcome.
type FailureReason int

const (
	FailNone FailureReason = iota
	FailTimeout
	FailDeadlyObstacle
	FailTrap
)

// String returns a readable reason.
func (r FailureReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailTimeout:
		return "timeout"
	case FailDeadlyObstacle:
		return "deadly obstacle"
	case FailTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// StepReport is the result of one Simulator.Step.
type StepReport struct {
	Outcome Outcome
	Reason  FailureReason // Set when Outcome is OutcomeFailed
	Bounces int           // Bounces loud enough to deserve a sound
}

// Simulator owns the ball and steps it through a playfield.
type Simulator struct {
	ball   Ball
	field  Playfield
	tuning Tuning
}

// NewSimulator places a resting ball at the playfield start.
func NewSimulator(field Playfield, radius float64, tuning Tuning) *Simulator {
	return &Simulator{
		ball:   Ball{Position: field.Start, Radius: radius},
		field:  field,
		tuning: tuning,
	}
}

// Ball returns a copy of the current ball state.
func (s *Simulator) Ball() Ball {
	return s.ball
}

// SetBall replaces the ball state. Used to restore snapshots and in tests.
func (s *Simulator) SetBall(b Ball) {
	s.ball = b
}

// Playfield returns the placed level geometry.
func (s *Simulator) Playfield() Playfield {
	return s.field
}

// Step advances the ball by dt seconds under the given acceleration.
//
// Order: integrate, clamp to bounds, obstacles in declaration order,
// traps, then the goal. Failure stops evaluation, so a ball that is both
// in a trap and in the hole fails.
func (s *Simulator) Step(dt float64, acceleration core.Vector2) StepReport {
	var report StepReport
	b := &s.ball
	t := s.tuning

	b.Acceleration = acceleration
	b.Velocity = b.Velocity.AddScaled(acceleration, dt)
	prev := b.Position
	b.Position = b.Position.AddScaled(b.Velocity, dt)

	if bounced, impact := s.field.Bounds.ClampAndReflect(b, t.BounceFactor); bounced && impact > t.BounceSoundThreshold {
		report.Bounces++
	}

	for _, o := range s.field.Obstacles {
		res := t.Policy.Resolve(o.Rect, b.Position, b.Velocity, b.Radius, t.BounceFactor)
		if !res.Collided {
			continue
		}

		if math.Abs(res.Velocity.X-b.Velocity.X) > t.HaltBallThreshold ||
			math.Abs(res.Velocity.Y-b.Velocity.Y) > t.HaltBallThreshold {
			b.Position = prev
		}
		if turnAngle(b.Velocity, res.Velocity) > t.BounceAngleSoundThreshold {
			report.Bounces++
		}
		b.Velocity = res.Velocity

		if o.Kind == KindDeadly {
			report.Outcome = OutcomeFailed
			report.Reason = FailDeadlyObstacle
			return report
		}
	}

	for _, trap := range s.field.Traps {
		if trap.Contains(b.Position) {
			report.Outcome = OutcomeFailed
			report.Reason = FailTrap
			return report
		}
	}

	if b.Position.Dist(s.field.Hole.Center) < s.field.Hole.Radius {
		report.Outcome = OutcomeSucceeded
	}
	return report
}
