package engine

import (
	"math"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

// Layout maps grid units to world units for a viewport.
type Layout struct {
	Width, Height float64 // Viewport size in world units
	HD, VD        float64 // World units per grid column/row
	BallRadius    float64
}

// NewLayout derives the layout for a width x height viewport.
func NewLayout(width, height float64) Layout {
	hd := width / GridW
	vd := height / GridH
	return Layout{
		Width:      width,
		Height:     height,
		HD:         hd,
		VD:         vd,
		BallRadius: math.Min(hd, vd) / 2,
	}
}

// Base returns the base dimension (the ball diameter).
func (l Layout) Base() float64 {
	return 2 * l.BallRadius
}

// Scale returns the ratio between this layout's base and a reference base,
// used to rescale speed-like tunables.
func (l Layout) Scale(referenceBase float64) float64 {
	if referenceBase <= 0 {
		return 1
	}
	return l.Base() / referenceBase
}

// ToWorld converts a grid point to world coordinates.
func (l Layout) ToWorld(p Point) core.Vector2 {
	return core.Vec(p.X*l.HD, p.Y*l.VD)
}

// RectToWorld converts a grid rectangle to world coordinates.
func (l Layout) RectToWorld(x, y, w, h float64) core.RectF {
	return core.NewRectF(x*l.HD, y*l.VD, w*l.HD, h*l.VD)
}

// Bounds returns the legal ball-center area: the viewport inset by the radius.
func (l Layout) Bounds() Bounds {
	r := l.BallRadius
	return Bounds{MinX: r, MinY: r, MaxX: l.Width - r, MaxY: l.Height - r}
}

// WorldObstacle is an obstacle placed in world units.
type WorldObstacle struct {
	Rect core.RectF
	Kind ObstacleKind
}

// WorldHole is the goal circle in world units.
type WorldHole struct {
	Center core.Vector2
	Radius float64
}

// Playfield is a level placed in world units: everything the simulator
// collides with.
type Playfield struct {
	Bounds    Bounds
	Obstacles []WorldObstacle
	Traps     []core.RectF
	Hole      WorldHole
	Start     core.Vector2
}

// Place converts a level to a playfield for this layout.
func (l Layout) Place(level Level) Playfield {
	pf := Playfield{
		Bounds:    l.Bounds(),
		Obstacles: make([]WorldObstacle, 0, len(level.Obstacles)),
		Traps:     make([]core.RectF, 0, len(level.Traps)),
		Start:     l.ToWorld(level.Ball),
	}

	for _, o := range level.Obstacles {
		pf.Obstacles = append(pf.Obstacles, WorldObstacle{
			Rect: l.RectToWorld(o.X, o.Y, o.W, o.H),
			Kind: o.Kind,
		})
	}
	for _, t := range level.Traps {
		pf.Traps = append(pf.Traps, l.RectToWorld(t.X, t.Y, t.W, t.H))
	}

	radius := l.BallRadius
	if level.Hole.Radius > 0 {
		radius = level.Hole.Radius * l.Base()
	}
	pf.Hole = WorldHole{
		Center: l.ToWorld(Point{X: level.Hole.X, Y: level.Hole.Y}),
		Radius: radius,
	}
	return pf
}
