package engine

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

// State is the level-run state. Succeeded and Failed are terminal.
type State int

const (
	StateRunning State = iota
	StateSucceeded
	StateFailed
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will be processed.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// InputSource supplies the current tilt. It may be written concurrently;
// the run reads it once per tick.
type InputSource interface {
	Acceleration() core.Vector2
}

// Renderer receives the ball position and points once per tick.
type Renderer interface {
	SetBallPosition(p core.Vector2)
	SetPoints(points int)
}

// Sound is a discrete audio event.
type Sound int

const (
	SoundBounce Sound = iota
	SoundSuccess
	SoundFailure
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundSuccess:
		return "success"
	case SoundFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// AudioSink plays sounds. Calls are fire-and-forget.
type AudioSink interface {
	Play(s Sound)
}

// Listener is told how the run ended. Exactly one method is called, once.
type Listener interface {
	OnSuccess(score int)
	OnFailure(reason FailureReason)
}

// RunConfig bundles a level with its collaborators. Renderer, Audio,
// Listener and Logger are optional.
type RunConfig struct {
	Level    Level
	Layout   Layout
	Tuning   Tuning
	Input    InputSource
	Renderer Renderer
	Audio    AudioSink
	Listener Listener
	Logger   *log.Logger
}

// Run is the state machine for one attempt at one level.
type Run struct {
	cfg         RunConfig
	sim         *Simulator
	state       State
	reason      FailureReason
	started     time.Time
	deadline    time.Time
	total       time.Duration
	pointsStart int
	points      int
	ticks       int
}

// NewRun starts a run at the given time. The deadline is start plus the
// level's time limit scaled by the tuning.
func NewRun(cfg RunConfig, start time.Time) *Run {
	total := time.Duration(float64(cfg.Level.TimeLimit) * cfg.Tuning.TimeScale * float64(time.Second))
	field := cfg.Layout.Place(cfg.Level)

	r := &Run{
		cfg:         cfg,
		sim:         NewSimulator(field, cfg.Layout.BallRadius, cfg.Tuning),
		state:       StateRunning,
		started:     start,
		deadline:    start.Add(total),
		total:       total,
		pointsStart: cfg.Level.Points,
		points:      cfg.Level.Points,
	}

	if r.cfg.Renderer != nil {
		r.cfg.Renderer.SetBallPosition(field.Start)
		r.cfg.Renderer.SetPoints(r.points)
	}
	if r.cfg.Logger != nil {
		r.cfg.Logger.Debug("run started",
			"level", cfg.Level.Number,
			"time_limit", total,
			"points", r.pointsStart,
		)
	}
	return r
}

// Tick processes one scheduler tick. now must not decrease between calls.
// Once the run is terminal, ticks are ignored.
func (r *Run) Tick(now time.Time) State {
	if r.state.Terminal() {
		return r.state
	}

	if now.After(r.deadline) {
		r.points = 0
		r.fail(FailTimeout)
		return r.state
	}

	r.ticks++
	r.updatePoints(now)

	accel := core.Vector2{}
	if r.cfg.Input != nil {
		accel = r.cfg.Input.Acceleration().Scale(r.cfg.Tuning.AccelerationScale)
	}
	report := r.sim.Step(r.cfg.Tuning.dt(), accel)

	if report.Bounces > 0 {
		r.play(SoundBounce)
	}
	if r.cfg.Renderer != nil {
		r.cfg.Renderer.SetBallPosition(r.sim.Ball().Position)
		r.cfg.Renderer.SetPoints(r.points)
	}

	switch report.Outcome {
	case OutcomeFailed:
		r.play(SoundFailure)
		r.fail(report.Reason)
	case OutcomeSucceeded:
		r.succeed()
	}
	return r.state
}

// updatePoints decays points linearly with the remaining time. Points never
// increase, even if the clock jitters.
func (r *Run) updatePoints(now time.Time) {
	if r.total <= 0 {
		r.points = 0
		return
	}
	remaining := r.deadline.Sub(now)
	p := int(math.Round(float64(remaining) * float64(r.pointsStart) / float64(r.total)))
	r.points = core.Clamp(p, 0, r.points)
}

func (r *Run) succeed() {
	r.state = StateSucceeded
	r.play(SoundSuccess)
	if r.cfg.Logger != nil {
		r.cfg.Logger.Debug("run succeeded", "level", r.cfg.Level.Number, "score", r.points, "ticks", r.ticks)
	}
	if r.cfg.Listener != nil {
		r.cfg.Listener.OnSuccess(r.points)
	}
}

func (r *Run) fail(reason FailureReason) {
	r.state = StateFailed
	r.reason = reason
	if r.cfg.Logger != nil {
		r.cfg.Logger.Debug("run failed", "level", r.cfg.Level.Number, "reason", reason, "ticks", r.ticks)
	}
	if r.cfg.Listener != nil {
		r.cfg.Listener.OnFailure(reason)
	}
}

func (r *Run) play(s Sound) {
	if r.cfg.Audio != nil {
		r.cfg.Audio.Play(s)
	}
}

// State returns the current state.
func (r *Run) State() State { return r.state }

// Reason returns why the run failed, or FailNone.
func (r *Run) Reason() FailureReason { return r.reason }

// Points returns the current (or final) points.
func (r *Run) Points() int { return r.points }

// Ticks returns how many simulator steps have run.
func (r *Run) Ticks() int { return r.ticks }

// Deadline returns the absolute timeout.
func (r *Run) Deadline() time.Time { return r.deadline }

// Started returns the run start time.
func (r *Run) Started() time.Time { return r.started }

// Ball returns the current ball state.
func (r *Run) Ball() Ball { return r.sim.Ball() }

// Playfield returns the placed level geometry.
func (r *Run) Playfield() Playfield { return r.sim.Playfield() }

// Level returns the level being played.
func (r *Run) Level() Level { return r.cfg.Level }

// Simulator exposes the underlying simulator.
func (r *Run) Simulator() *Simulator { return r.sim }
