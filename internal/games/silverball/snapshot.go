package silverball

import "math"

// Snapshot captures the game state for determinism checks and replays.
// Floats are stored as fixed-point thousandths so hashes are stable.
type Snapshot struct {
	Tick       int
	LevelIndex int
	Level      int
	Phase      string
	Paused     bool
	Points     int
	Total      int

	BallX, BallY int
	VelX, VelY   int
	TiltX, TiltY int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Phase:  string(g.phase),
		Paused: g.paused,
		Points: g.points,
	}
	if g.campaign != nil {
		snap.LevelIndex = g.campaign.Index()
		snap.Total = g.campaign.Total()
	}
	if g.run != nil {
		b := g.run.Ball()
		snap.Level = g.run.Level().Number
		snap.BallX, snap.BallY = milli(b.Position.X), milli(b.Position.Y)
		snap.VelX, snap.VelY = milli(b.Velocity.X), milli(b.Velocity.Y)
	}
	t := g.tilt.Acceleration()
	snap.TiltX, snap.TiltY = milli(t.X), milli(t.Y)
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
//
//#nosec G115 -- hash computation
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.LevelIndex)
	h = h*31 + uint64(snap.Level)
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Points)
	h = h*31 + uint64(snap.Total)
	h = h*31 + uint64(snap.BallX)
	h = h*31 + uint64(snap.BallY)
	h = h*31 + uint64(snap.VelX)
	h = h*31 + uint64(snap.VelY)
	h = h*31 + uint64(snap.TiltX)
	h = h*31 + uint64(snap.TiltY)
	return h
}
