package silverball

import (
	"testing"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

func threeLevels() []engine.Level {
	return []engine.Level{{Number: 1}, {Number: 2}, {Number: 3}}
}

func TestCampaignWin(t *testing.T) {
	c, err := NewCampaign(threeLevels(), 0)
	if err != nil {
		t.Fatal(err)
	}

	for i, pts := range []int{100, 200, 300} {
		lvl, ok := c.Current()
		if !ok || lvl.Number != i+1 {
			t.Fatalf("step %d: current = %d, ok = %v", i, lvl.Number, ok)
		}
		c.Record(LevelResult{Number: lvl.Number, State: engine.StateSucceeded, Points: pts})
	}

	if !c.Done() || !c.Won() {
		t.Errorf("done = %v, won = %v", c.Done(), c.Won())
	}
	if c.Total() != 600 {
		t.Errorf("total = %d, want 600", c.Total())
	}
	if _, ok := c.Current(); ok {
		t.Error("finished campaign has no current level")
	}
	if len(c.Results()) != 3 {
		t.Errorf("results = %d", len(c.Results()))
	}
}

func TestCampaignFailureEnds(t *testing.T) {
	c, _ := NewCampaign(threeLevels(), 0)
	c.Record(LevelResult{Number: 1, State: engine.StateSucceeded, Points: 100})
	c.Record(LevelResult{Number: 2, State: engine.StateFailed, Reason: engine.FailTrap, Points: 40})

	if !c.Done() || c.Won() {
		t.Errorf("done = %v, won = %v", c.Done(), c.Won())
	}
	if c.Total() != 100 {
		t.Errorf("failed level points must not count, total = %d", c.Total())
	}

	c.Record(LevelResult{Number: 3, State: engine.StateSucceeded, Points: 999})
	if c.Total() != 100 || len(c.Results()) != 2 {
		t.Error("records after the end must be ignored")
	}
}

func TestCampaignStartLevel(t *testing.T) {
	c, err := NewCampaign(threeLevels(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if lvl, _ := c.Current(); lvl.Number != 3 {
		t.Errorf("current = %d, want 3", lvl.Number)
	}
	c.Record(LevelResult{Number: 3, State: engine.StateSucceeded, Points: 10})
	if !c.Won() {
		t.Error("clearing the last level should win")
	}

	if _, err := NewCampaign(threeLevels(), 9); err == nil {
		t.Error("unknown start level should fail")
	}
	if _, err := NewCampaign(nil, 0); err == nil {
		t.Error("empty campaign should fail")
	}
}

func TestLevelResultRecord(t *testing.T) {
	rec := LevelResult{Number: 2, State: engine.StateFailed, Reason: engine.FailDeadlyObstacle, Points: 12, Ticks: 40}.Record()
	if rec.Level != 2 || rec.Outcome != "failed" || rec.Reason != "deadly obstacle" || rec.Ticks != 40 {
		t.Errorf("record = %+v", rec)
	}

	ok := LevelResult{Number: 1, State: engine.StateSucceeded, Points: 5}.Record()
	if ok.Outcome != "succeeded" || ok.Reason != "" {
		t.Errorf("record = %+v", ok)
	}
}
