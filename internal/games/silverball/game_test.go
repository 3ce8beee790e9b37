package silverball

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}
}

func newTestGame(t *testing.T, practice bool, start int) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	SetLevelsDir("")
	SetStartLevel(start)
	t.Cleanup(func() { SetStartLevel(0) })

	g := New()
	if practice {
		g = NewPractice()
	}
	g.Reset(testConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, false, 0)

	st := g.State()
	if st.Level != 1 || st.GameOver || st.Score != 0 {
		t.Errorf("state after reset = %+v", st)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v", g.Phase())
	}
	if g.Campaign().Len() < 5 {
		t.Errorf("campaign has %d levels", g.Campaign().Len())
	}
	if g.ID() != "silverball" || NewPractice().ID() != "silverball_practice" {
		t.Error("unexpected IDs")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%40 < 6:
			inputs[i] = frame(core.ActionTiltRight)
		case i%40 < 9:
			inputs[i] = frame(core.ActionTiltDown)
		case i%97 == 0:
			inputs[i] = frame(core.ActionLevel)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	play := func() Snapshot {
		g := newTestGame(t, false, 0)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := play(), play()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Tick == 0 {
		t.Error("game never ticked")
	}
}

func TestGameTiltKeys(t *testing.T) {
	g := newTestGame(t, false, 0)
	step := g.cfg.Gameplay.TiltStep

	g.Step(frame(core.ActionTiltRight))
	if got := g.Tilt().Acceleration(); got.X != step || got.Y != 0 {
		t.Errorf("tilt = %+v, want (%v, 0)", got, step)
	}

	g.Step(frame(core.ActionTiltUp))
	if got := g.Tilt().Acceleration(); got.Y != -step {
		t.Errorf("tilt.y = %v, want %v", got.Y, -step)
	}

	for range 50 {
		g.Step(frame(core.ActionTiltRight))
	}
	if got := g.Tilt().Acceleration(); got.X != g.cfg.Gameplay.MaxTilt {
		t.Errorf("tilt.x = %v, want clamped to %v", got.X, g.cfg.Gameplay.MaxTilt)
	}

	g.Step(frame(core.ActionLevel))
	if got := g.Tilt().Acceleration(); !got.IsZero() {
		t.Errorf("tilt after level = %+v", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, false, 0)
	g.Step(core.NewInputFrame())

	if !g.Step(frame(core.ActionPause)).State.Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Tick
	g.Step(frame(core.ActionTiltRight))
	if g.Snapshot().Tick != tick {
		t.Error("ticks advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameClearLevelAndContinue(t *testing.T) {
	g := newTestGame(t, false, 0)

	hole := g.Run().Playfield().Hole.Center
	g.Run().Simulator().SetBall(engine.Ball{Position: hole, Radius: g.layout.BallRadius})

	res := g.Step(core.NewInputFrame())
	if g.Phase() != PhaseCleared {
		t.Fatalf("phase = %v, want cleared", g.Phase())
	}
	if len(res.Finished) != 1 || res.Finished[0].Outcome != "succeeded" || res.Finished[0].Level != 1 {
		t.Errorf("finished = %+v", res.Finished)
	}
	if res.State.Score != 999 {
		t.Errorf("score = %d, want 999", res.State.Score)
	}
	if res.State.GameOver {
		t.Error("clearing a level is not game over")
	}

	// Waiting for confirmation does not tick.
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseCleared {
		t.Error("cleared phase should wait for input")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying || g.State().Level != 2 {
		t.Errorf("phase = %v level = %d, want playing level 2", g.Phase(), g.State().Level)
	}
}

func TestGameTimeoutEndsCampaign(t *testing.T) {
	g := newTestGame(t, false, 0)

	var finished []core.LevelRecord
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		finished = append(finished, g.Step(core.NewInputFrame()).Finished...)
	}

	st := g.State()
	if !st.GameOver || st.Won {
		t.Fatalf("state = %+v, want game over", st)
	}
	if len(finished) != 1 || finished[0].Reason != "timeout" || finished[0].Points != 0 {
		t.Errorf("finished = %+v", finished)
	}
	if g.Run().Ticks() != 1500 {
		t.Errorf("run ticks = %d, want 1500 for a 30s level at 20ms", g.Run().Ticks())
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver || g.Phase() != PhasePlaying {
		t.Error("restart should start a new campaign")
	}
}

func TestPracticeSingleLevel(t *testing.T) {
	g := newTestGame(t, true, 3)

	if g.State().Level != 3 || g.Campaign().Len() != 1 {
		t.Fatalf("practice level = %d, len = %d", g.State().Level, g.Campaign().Len())
	}

	hole := g.Run().Playfield().Hole.Center
	g.Run().Simulator().SetBall(engine.Ball{Position: hole, Radius: g.layout.BallRadius})
	g.Step(core.NewInputFrame())

	if !g.State().Won || g.Phase() != PhaseWon {
		t.Errorf("practice clear should win, phase = %v", g.Phase())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, false, 0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{string(BallChar), string(HoleChar), string(WallChar), "Level 1/"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Level 2 has a deadly obstacle.
	g.Run().Simulator().SetBall(engine.Ball{Position: g.Run().Playfield().Hole.Center, Radius: 1})
	g.Step(core.NewInputFrame())
	g.Step(frame(core.ActionConfirm))
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), string(DeadlyChar)) {
		t.Error("deadly obstacle not rendered")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 50})

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
	if g.Step(frame(core.ActionTiltRight)).State.GameOver {
		t.Error("too-small game should not advance")
	}
}

func TestTiltArrow(t *testing.T) {
	g := New()
	if g.tiltArrow() != '·' {
		t.Error("level board should show a dot")
	}
	g.Tilt().Set(core.Vec(0, 3))
	if g.tiltArrow() != '↓' {
		t.Errorf("arrow = %c, want ↓", g.tiltArrow())
	}
	g.Tilt().Set(core.Vec(-2, -2))
	if g.tiltArrow() != '↖' {
		t.Errorf("arrow = %c, want ↖", g.tiltArrow())
	}
}

func TestGameSelectLevelAndResize(t *testing.T) {
	SetStartLevel(0)
	g := New()
	g.SelectLevel(2)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 50})
	if g.State().Level != 2 {
		t.Errorf("level = %d, want 2", g.State().Level)
	}

	g.Step(frame(core.ActionTiltRight))
	if g.Snapshot().Tick != 0 {
		t.Error("too-small game should not tick")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionTiltRight))
	if g.Snapshot().Tick != 1 || g.State().Level != 2 {
		t.Errorf("after resize tick = %d level = %d", g.Snapshot().Tick, g.State().Level)
	}
}

func TestGameTickRateSetsClock(t *testing.T) {
	SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 25})

	if g.tuning.TickInterval != 40*time.Millisecond {
		t.Fatalf("tick interval = %v, want 40ms at 25 ticks/s", g.tuning.TickInterval)
	}
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Run().Ticks() != 750 {
		t.Errorf("run ticks = %d, want 750 for a 30s level at 40ms", g.Run().Ticks())
	}
}
