// Package silverball adapts the tilt-ball engine to the platform's game
// contract: keyboard tilt, a virtual tick clock, campaign sequencing and
// character-cell rendering.
package silverball

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-silverball/internal/config"
	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/levels"
	"github.com/vovakirdan/tui-silverball/internal/registry"
)

// The simulation runs in a fixed world independent of the terminal size;
// the renderer scales it into the available cells.
const (
	WorldW = 1600
	WorldH = 900
)

const (
	minScreenW = 34
	minScreenH = 12
)

// Mode selects campaign or single-level practice.
type Mode int

const (
	ModeCampaign Mode = iota // Play every level in order
	ModePractice             // Play one level
)

// Phase is the game-level state around individual runs.
type Phase string

const (
	PhasePlaying Phase = "playing"  // A level run is in progress
	PhaseCleared Phase = "cleared"  // Level won, waiting to continue
	PhaseOver    Phase = "gameover" // A level failed
	PhaseWon     Phase = "won"      // Every level cleared
)

// epoch is the virtual clock origin for each run. Ticks are spaced exactly
// one tick interval apart, so replays are deterministic.
var epoch = time.Unix(0, 0).UTC()

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
	levelsDir        string
	audioSink        engine.AudioSink
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values mean normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetStartLevel selects the first level (campaign) or the only level
// (practice). Zero means the first level of the pack.
func SetStartLevel(n int) {
	startLevel = n
}

// SetLevelsDir loads levels from a directory instead of the builtin pack.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetAudio sets the sink for game sounds. nil disables sound.
func SetAudio(a engine.AudioSink) {
	audioSink = a
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("silverball", func() registry.Game { return New() })
	registry.Register("silverball_practice", func() registry.Game { return NewPractice() })
}

// Game implements registry.Game for Silverball. It is also the engine's
// Renderer and Listener for the run in progress.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.SilverballConfig
	tuning  engine.Tuning
	layout  engine.Layout
	levels  []engine.Level

	campaign *Campaign
	run      *engine.Run
	tilt     core.Tilt
	tick     int

	phase   Phase
	paused  bool
	message string

	// Updated by the run through the Renderer contract.
	ballPos core.Vector2
	points  int

	finished       []core.LevelRecord
	screenTooSmall bool
	selected       int // Per-game start level, overrides SetStartLevel
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a single-level practice game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "silverball_practice"
	}
	return "silverball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Silverball (Practice)"
	}
	return "Silverball"
}

// SelectLevel picks the start level for this game only. Takes effect on
// the next Reset.
func (g *Game) SelectLevel(n int) {
	g.selected = n
}

func (g *Game) startNumber() int {
	if g.selected > 0 {
		return g.selected
	}
	return startLevel
}

// Resize adapts to a new terminal size without restarting the campaign.
// The world is fixed, so only the size check changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// Reset loads config and levels and starts the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.message = ""
	g.paused = false
	g.finished = nil

	cfg, err := config.LoadSilverball(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSilverballConfig()
	}
	config.ApplySilverballPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.layout = engine.NewLayout(WorldW, WorldH)
	g.tuning = engine.TuningFromConfig(cfg, g.layout.Scale(cfg.Physics.ReferenceBase))
	if runtime.TickRate > 0 {
		// One Step is one platform tick, so the virtual clock keeps wall pace.
		g.tuning.TickInterval = time.Second / time.Duration(runtime.TickRate)
	}

	lvls, err := levels.Open(levelsDir).LoadAll()
	if err != nil || len(lvls) == 0 {
		logger.Warn("falling back to builtin levels", "dir", levelsDir, "err", err)
		lvls, err = levels.Builtin().LoadAll()
		if err != nil {
			// builtin levels are covered by tests
			panic(err)
		}
	}
	g.levels = lvls

	g.campaign = g.newCampaign()
	g.startLevel()
}

func (g *Game) newCampaign() *Campaign {
	if g.mode == ModePractice {
		lvl := g.levels[0]
		for _, l := range g.levels {
			if l.Number == g.startNumber() {
				lvl = l
			}
		}
		c, _ := NewCampaign([]engine.Level{lvl}, 0)
		return c
	}

	c, err := NewCampaign(g.levels, g.startNumber())
	if err != nil {
		logger.Warn("starting from the first level", "err", err)
		c, _ = NewCampaign(g.levels, 0)
	}
	return c
}

// startLevel begins a fresh run of the campaign's current level.
func (g *Game) startLevel() {
	lvl, ok := g.campaign.Current()
	if !ok {
		return
	}

	g.tilt.Set(core.Vector2{})
	g.tick = 0
	g.phase = PhasePlaying
	g.message = ""
	g.run = engine.NewRun(engine.RunConfig{
		Level:    lvl,
		Layout:   g.layout,
		Tuning:   g.tuning,
		Input:    &g.tilt,
		Renderer: g,
		Audio:    audioSink,
		Listener: g,
		Logger:   logger,
	}, epoch)

	logger.Info("level started", "game", g.ID(), "level", lvl.Number, "name", lvl.Name)
}

// now is the virtual time of the current tick.
func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.tick) * g.tuning.TickInterval)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.phase == PhaseOver || g.phase == PhaseWon) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}

	if g.phase == PhaseCleared && (in.Has(core.ActionConfirm) || in.Has(core.ActionLevel)) {
		g.startLevel()
		return core.StepResult{State: g.State()}
	}

	if g.phase != PhasePlaying || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyTilt(in)
	g.tick++
	g.run.Tick(g.now())

	res := core.StepResult{State: g.State(), Finished: g.finished}
	g.finished = nil
	return res
}

// applyTilt converts keyboard actions into tilt changes.
func (g *Game) applyTilt(in core.InputFrame) {
	if in.Has(core.ActionLevel) {
		g.tilt.Set(core.Vector2{})
		return
	}

	step := g.cfg.Gameplay.TiltStep
	var d core.Vector2
	if in.Has(core.ActionTiltUp) {
		d.Y -= step
	}
	if in.Has(core.ActionTiltDown) {
		d.Y += step
	}
	if in.Has(core.ActionTiltLeft) {
		d.X -= step
	}
	if in.Has(core.ActionTiltRight) {
		d.X += step
	}
	if !d.IsZero() {
		g.tilt.Nudge(d, g.cfg.Gameplay.MaxTilt)
	}
}

// SetBallPosition implements engine.Renderer.
func (g *Game) SetBallPosition(p core.Vector2) {
	g.ballPos = p
}

// SetPoints implements engine.Renderer.
func (g *Game) SetPoints(points int) {
	g.points = points
}

// OnSuccess implements engine.Listener.
func (g *Game) OnSuccess(score int) {
	g.finish(LevelResult{
		Number: g.run.Level().Number,
		State:  engine.StateSucceeded,
		Points: score,
		Ticks:  g.run.Ticks(),
	})
}

// OnFailure implements engine.Listener.
func (g *Game) OnFailure(reason engine.FailureReason) {
	g.finish(LevelResult{
		Number: g.run.Level().Number,
		State:  engine.StateFailed,
		Reason: reason,
		Points: g.run.Points(),
		Ticks:  g.run.Ticks(),
	})
}

func (g *Game) finish(res LevelResult) {
	g.campaign.Record(res)
	g.finished = append(g.finished, res.Record())

	switch {
	case g.campaign.Won():
		g.phase = PhaseWon
		g.message = fmt.Sprintf("All levels cleared! Total %d", g.campaign.Total())
	case g.campaign.Done():
		g.phase = PhaseOver
		g.message = fmt.Sprintf("Level %d failed: %s", res.Number, res.Reason)
	default:
		g.phase = PhaseCleared
		g.message = fmt.Sprintf("Level %d cleared: +%d", res.Number, res.Points)
	}

	logger.Info("level finished",
		"game", g.ID(),
		"level", res.Number,
		"outcome", res.State,
		"reason", res.Reason,
		"points", res.Points,
		"total", g.campaign.Total(),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.paused,
	}
	if g.campaign == nil {
		return st
	}
	st.Score = g.campaign.Total()
	st.GameOver = g.phase == PhaseOver || g.phase == PhaseWon
	st.Won = g.phase == PhaseWon
	if g.run != nil {
		st.Level = g.run.Level().Number
	}
	return st
}

// Tilt exposes the input source so other writers (scripts, sensors) can
// drive the board.
func (g *Game) Tilt() *core.Tilt { return &g.tilt }

// Run returns the current level run.
func (g *Game) Run() *engine.Run { return g.run }

// Campaign returns the level sequence.
func (g *Game) Campaign() *Campaign { return g.campaign }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Levels returns the loaded levels.
func (g *Game) Levels() []engine.Level { return g.levels }
