package engine

import (
	"math"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

// CollisionResult is the outcome of testing the ball against one rectangle.
// The resolver never mutates the ball; callers apply Velocity themselves.
type CollisionResult struct {
	Collided bool
	Corner   bool         // Reflection came from a corner, not a face
	Velocity core.Vector2 // Post-collision velocity (zero when !Collided)
}

// NoCollision is returned when the ball does not touch the rectangle.
var NoCollision = CollisionResult{}

// Resolve dispatches to the resolver selected by the policy.
func (p CollisionPolicy) Resolve(r core.RectF, center, velocity core.Vector2, radius, bounce float64) CollisionResult {
	if p == PolicyAxis {
		return ResolveRectAxis(r, center, velocity, radius, bounce)
	}
	return ResolveRect(r, center, velocity, radius, bounce)
}

// ResolveRect tests a moving circle against a rectangle.
//
// Face hits reflect exactly one velocity component and damp it by bounce.
// When the ball is horizontally within the rectangle body the Y component
// flips; this is checked before the X face so it wins ties. Corner hits
// rotate the velocity around the corner normal (a specular reflection) and
// keep the full speed.
func ResolveRect(r core.RectF, center, velocity core.Vector2, radius, bounce float64) CollisionResult {
	rc := r.Center()
	hw, hh := r.HalfW(), r.HalfH()
	dx := math.Abs(center.X - rc.X)
	dy := math.Abs(center.Y - rc.Y)

	if dx > hw+radius || dy > hh+radius {
		return NoCollision
	}

	if dx <= hw {
		return CollisionResult{Collided: true, Velocity: core.Vec(velocity.X, -velocity.Y*bounce)}
	}
	if dy <= hh {
		return CollisionResult{Collided: true, Velocity: core.Vec(-velocity.X*bounce, velocity.Y)}
	}

	cdx := dx - hw
	cdy := dy - hh
	if cdx*cdx+cdy*cdy > radius*radius {
		return NoCollision
	}
	// atan2(0, 0) has no meaningful direction
	if velocity.IsZero() {
		return NoCollision
	}

	// Corner-to-center vector, signed by the quadrant the ball sits in.
	if center.X < rc.X {
		cdx = -cdx
	}
	if center.Y < rc.Y {
		cdy = -cdy
	}

	// Angles are measured in a y-up frame, so screen Y is negated.
	gamma := math.Atan2(-cdy, cdx)
	rho := math.Atan2(-velocity.Y, velocity.X)
	delta := math.Pi/2 + gamma - rho
	alpha := 2 * delta

	up := core.Rotation(alpha).Multiply(core.Vec(velocity.X, -velocity.Y))
	return CollisionResult{
		Collided: true,
		Corner:   true,
		Velocity: core.Vec(up.X, -up.Y),
	}
}

// ResolveRectAxis is the coarse fallback: corners are treated as the face
// with the deeper overlap, so the result is always a single-axis flip.
func ResolveRectAxis(r core.RectF, center, velocity core.Vector2, radius, bounce float64) CollisionResult {
	rc := r.Center()
	hw, hh := r.HalfW(), r.HalfH()
	dx := math.Abs(center.X - rc.X)
	dy := math.Abs(center.Y - rc.Y)

	if dx > hw+radius || dy > hh+radius {
		return NoCollision
	}

	flip := core.Scaling(-bounce, 1)
	if dx <= hw || (dy > hh && dy-hh >= dx-hw) {
		flip = core.Scaling(1, -bounce)
	}
	return CollisionResult{Collided: true, Velocity: flip.Multiply(velocity)}
}

// Bounds is the legal area for the ball center. It is already inset by the
// ball radius, so min < max on both axes.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ClampAndReflect pushes the ball back inside the bounds. Every violated
// half-plane clamps its coordinate and reflects the matching velocity
// component with damping. impact is the largest pre-bounce speed toward a
// violated wall, used to gate bounce sounds.
func (b Bounds) ClampAndReflect(ball *Ball, bounce float64) (bounced bool, impact float64) {
	if ball.Position.X < b.MinX {
		impact = math.Max(impact, -ball.Velocity.X)
		ball.Position.X = b.MinX
		ball.Velocity.X = -ball.Velocity.X * bounce
		bounced = true
	}
	if ball.Position.Y < b.MinY {
		impact = math.Max(impact, -ball.Velocity.Y)
		ball.Position.Y = b.MinY
		ball.Velocity.Y = -ball.Velocity.Y * bounce
		bounced = true
	}
	if ball.Position.X > b.MaxX {
		impact = math.Max(impact, ball.Velocity.X)
		ball.Position.X = b.MaxX
		ball.Velocity.X = -ball.Velocity.X * bounce
		bounced = true
	}
	if ball.Position.Y > b.MaxY {
		impact = math.Max(impact, ball.Velocity.Y)
		ball.Position.Y = b.MaxY
		ball.Velocity.Y = -ball.Velocity.Y * bounce
		bounced = true
	}
	return bounced, impact
}

// Contains reports whether p is a legal ball center.
func (b Bounds) Contains(p core.Vector2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// turnAngle returns the absolute angle in [0, pi] between two directions.
// Zero-length vectors have no direction and yield 0.
func turnAngle(a, b core.Vector2) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	d := math.Abs(math.Atan2(a.Y, a.X) - math.Atan2(b.Y, b.X))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
