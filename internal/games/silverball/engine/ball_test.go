package engine

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

func testTuning() Tuning {
	return Tuning{
		BounceFactor:              0.25,
		HaltBallThreshold:         1,
		BounceSoundThreshold:      500,
		BounceAngleSoundThreshold: 30 * math.Pi / 180,
		AccelerationScale:         400,
		TickInterval:              20 * time.Millisecond,
		TimeScale:                 1,
		Policy:                    PolicyCorner,
	}
}

func openField() Playfield {
	return Playfield{
		Bounds: Bounds{MinX: -100, MinY: -100, MaxX: 100, MaxY: 100},
		Hole:   WorldHole{Center: core.Vec(90, 90), Radius: 1},
	}
}

func TestStepIntegration(t *testing.T) {
	sim := NewSimulator(openField(), 1, testTuning())

	report := sim.Step(0.02, core.Vec(100, 0))
	if report.Outcome != OutcomeContinue {
		t.Fatalf("outcome = %v, want continue", report.Outcome)
	}

	b := sim.Ball()
	if !approx(b.Velocity.X, 2.0) {
		t.Errorf("velocity.x = %v, want 2.0", b.Velocity.X)
	}
	if !approx(b.Position.X, 0.04) {
		t.Errorf("position.x = %v, want 0.04", b.Position.X)
	}
	if b.Acceleration != core.Vec(100, 0) {
		t.Errorf("acceleration = %+v", b.Acceleration)
	}
}

func TestStepAtRest(t *testing.T) {
	field := openField()
	field.Obstacles = []WorldObstacle{{Rect: core.NewRectF(40, 40, 10, 10), Kind: KindBenign}}
	sim := NewSimulator(field, 1, testTuning())
	rest := Ball{Position: core.Vec(3, 4), Radius: 1}
	sim.SetBall(rest)

	for i := range 50 {
		if report := sim.Step(0.02, core.Vector2{}); report.Outcome != OutcomeContinue || report.Bounces != 0 {
			t.Fatalf("tick %d: report = %+v", i, report)
		}
	}

	b := sim.Ball()
	if b.Position != rest.Position || !b.Velocity.IsZero() {
		t.Errorf("ball moved: position %+v velocity %+v", b.Position, b.Velocity)
	}
}

func TestStepReachesHole(t *testing.T) {
	field := openField()
	field.Hole = WorldHole{Center: core.Vec(10, 10), Radius: 5}
	sim := NewSimulator(field, 1, testTuning())
	sim.SetBall(Ball{Position: core.Vec(10+5-0.01, 10), Radius: 1})

	if report := sim.Step(0.02, core.Vector2{}); report.Outcome != OutcomeSucceeded {
		t.Errorf("outcome = %v, want succeeded", report.Outcome)
	}

	sim.SetBall(Ball{Position: core.Vec(15, 10), Radius: 1})
	if report := sim.Step(0.02, core.Vector2{}); report.Outcome != OutcomeContinue {
		t.Errorf("ball on the hole edge: outcome = %v, want continue", report.Outcome)
	}
}

func TestStepTrap(t *testing.T) {
	field := openField()
	field.Traps = []core.RectF{core.NewRectF(0, 0, 10, 10)}

	for _, v := range []core.Vector2{{}, core.Vec(40, -30), core.Vec(-400, 400)} {
		sim := NewSimulator(field, 1, testTuning())
		sim.SetBall(Ball{Position: core.Vec(5, 5), Velocity: v, Radius: 1})
		report := sim.Step(0.001, core.Vector2{})
		if report.Outcome != OutcomeFailed || report.Reason != FailTrap {
			t.Errorf("velocity %+v: report = %+v, want trap failure", v, report)
		}
	}
}

func TestStepFailureBeforeSuccess(t *testing.T) {
	field := openField()
	field.Traps = []core.RectF{core.NewRectF(0, 0, 10, 10)}
	field.Hole = WorldHole{Center: core.Vec(5, 5), Radius: 3}

	sim := NewSimulator(field, 1, testTuning())
	sim.SetBall(Ball{Position: core.Vec(5, 5), Radius: 1})

	report := sim.Step(0.02, core.Vector2{})
	if report.Outcome != OutcomeFailed {
		t.Errorf("outcome = %v, want failed", report.Outcome)
	}
}

func TestStepObstacleHaltsBall(t *testing.T) {
	field := openField()
	field.Obstacles = []WorldObstacle{{Rect: core.NewRectF(10, 0, 10, 10), Kind: KindBenign}}

	sim := NewSimulator(field, 2, testTuning())
	sim.SetBall(Ball{Position: core.Vec(7.9, 5), Velocity: core.Vec(50, 0), Radius: 2})

	report := sim.Step(0.02, core.Vector2{})
	if report.Outcome != OutcomeContinue {
		t.Fatalf("outcome = %v", report.Outcome)
	}
	if report.Bounces != 1 {
		t.Errorf("bounces = %d, want 1", report.Bounces)
	}

	b := sim.Ball()
	if !approx(b.Position.X, 7.9) {
		t.Errorf("position.x = %v, want previous 7.9", b.Position.X)
	}
	if !approx(b.Velocity.X, -12.5) {
		t.Errorf("velocity.x = %v, want -12.5", b.Velocity.X)
	}
}

func TestStepDeadlyObstacle(t *testing.T) {
	field := openField()
	field.Obstacles = []WorldObstacle{{Rect: core.NewRectF(10, 0, 10, 10), Kind: KindDeadly}}

	sim := NewSimulator(field, 2, testTuning())
	sim.SetBall(Ball{Position: core.Vec(7.9, 5), Velocity: core.Vec(50, 0), Radius: 2})

	report := sim.Step(0.02, core.Vector2{})
	if report.Outcome != OutcomeFailed || report.Reason != FailDeadlyObstacle {
		t.Errorf("report = %+v, want deadly failure", report)
	}
}

func TestStepQuietWallBounce(t *testing.T) {
	sim := NewSimulator(openField(), 1, testTuning())
	sim.SetBall(Ball{Position: core.Vec(99.9, 0), Velocity: core.Vec(10, 0), Radius: 1})

	report := sim.Step(0.02, core.Vector2{})
	if report.Bounces != 0 {
		t.Errorf("slow wall hit should be silent, bounces = %d", report.Bounces)
	}
	b := sim.Ball()
	if b.Position.X != 100 || !approx(b.Velocity.X, -2.5) {
		t.Errorf("ball = %+v", b)
	}

	sim.SetBall(Ball{Position: core.Vec(90, 0), Velocity: core.Vec(1000, 0), Radius: 1})
	if report := sim.Step(0.02, core.Vector2{}); report.Bounces != 1 {
		t.Errorf("fast wall hit bounces = %d, want 1", report.Bounces)
	}
}

func TestStepDeterministic(t *testing.T) {
	layout := NewLayout(1600, 900)
	field := layout.Place(sampleLevel())

	run := func() Ball {
		sim := NewSimulator(field, layout.BallRadius, testTuning())
		for i := 0; i < 500; i++ {
			accel := core.Vec(float64(i%7)-3, float64(i%5)-2).Scale(400)
			if sim.Step(0.02, accel).Outcome != OutcomeContinue {
				break
			}
		}
		return sim.Ball()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}
