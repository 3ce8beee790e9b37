package silverball

import (
	"fmt"

	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// LevelResult is the outcome of one level attempt.
type LevelResult struct {
	Number int
	State  engine.State
	Reason engine.FailureReason
	Points int
	Ticks  int
}

// Record converts the result for persistence.
func (r LevelResult) Record() core.LevelRecord {
	rec := core.LevelRecord{
		Level:   r.Number,
		Outcome: r.State.String(),
		Points:  r.Points,
		Ticks:   r.Ticks,
	}
	if r.State == engine.StateFailed {
		rec.Reason = r.Reason.String()
	}
	return rec
}

// Campaign sequences levels: clearing a level adds its points to the total
// and moves on, the first failure ends the campaign, and clearing the last
// level wins it.
type Campaign struct {
	levels  []engine.Level
	index   int
	total   int
	results []LevelResult
	done    bool
	won     bool
}

// NewCampaign starts at the level with the given number, or the first
// level when start is 0.
func NewCampaign(levels []engine.Level, start int) (*Campaign, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("campaign: no levels")
	}

	c := &Campaign{levels: levels}
	if start == 0 {
		return c, nil
	}
	for i, lvl := range levels {
		if lvl.Number == start {
			c.index = i
			return c, nil
		}
	}
	return nil, fmt.Errorf("campaign: level %d not found", start)
}

// Current returns the level to play. ok is false once the campaign is over.
func (c *Campaign) Current() (engine.Level, bool) {
	if c.done {
		return engine.Level{}, false
	}
	return c.levels[c.index], true
}

// Record applies the outcome of the current level.
func (c *Campaign) Record(res LevelResult) {
	if c.done {
		return
	}
	c.results = append(c.results, res)

	if res.State != engine.StateSucceeded {
		c.done = true
		return
	}

	c.total += res.Points
	c.index++
	if c.index >= len(c.levels) {
		c.index = len(c.levels) - 1
		c.done = true
		c.won = true
	}
}

// Total returns the accumulated points.
func (c *Campaign) Total() int { return c.total }

// Done reports whether the campaign is over.
func (c *Campaign) Done() bool { return c.done }

// Won reports whether every level was cleared.
func (c *Campaign) Won() bool { return c.won }

// Index returns the position of the current level.
func (c *Campaign) Index() int { return c.index }

// Len returns the number of levels in the campaign.
func (c *Campaign) Len() int { return len(c.levels) }

// Results returns every recorded attempt in order.
func (c *Campaign) Results() []LevelResult { return c.results }
