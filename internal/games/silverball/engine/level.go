package engine

import (
	"fmt"
	"strings"
)

// Level geometry is authored on a fixed grid; the layout maps it to world
// units for the actual viewport.
const (
	GridW = 16
	GridH = 9
)

// ObstacleKind tags how an obstacle treats the ball.
type ObstacleKind int

const (
	KindBenign ObstacleKind = iota // Ball bounces off
	KindDeadly                     // Touching it ends the run
)

// String returns the level-file spelling of the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindBenign:
		return "wall"
	case KindDeadly:
		return "deadly"
	default:
		return "unknown"
	}
}

// ParseObstacleKind reads an obstacle type attribute. An empty type is a
// plain wall.
func ParseObstacleKind(s string) (ObstacleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wall", "benign", "plain":
		return KindBenign, nil
	case "deadly", "lava":
		return KindDeadly, nil
	default:
		return KindBenign, fmt.Errorf("unknown obstacle type %q", s)
	}
}

// Point is a position in grid units.
type Point struct {
	X, Y float64
}

// Hole is the goal circle. Radius is in base dimensions; zero means
// "same as the ball".
type Hole struct {
	X, Y   float64
	Radius float64
}

// Obstacle is a static rectangle in grid units. Texture is only used by
// renderers.
type Obstacle struct {
	X, Y, W, H float64
	Kind       ObstacleKind
	Texture    string
}

// Trap is a rectangle that ends the run when the ball center enters it.
type Trap struct {
	X, Y, W, H float64
	Texture    string
}

// Level is an immutable level definition.
type Level struct {
	Number    int
	Name      string
	Ball      Point // Ball start
	Hole      Hole
	TimeLimit int // Seconds
	Points    int // Points available at the start of the run
	Obstacles []Obstacle
	Traps     []Trap
}

// ValidationError contains details about a malformed level.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the level can be simulated. The engine itself
// assumes valid levels and never reports errors at run time.
func (l Level) Validate() error {
	if l.TimeLimit <= 0 {
		return ValidationError{Code: "INVALID_TIME", Message: fmt.Sprintf("level %d: time limit must be positive, got %d", l.Number, l.TimeLimit)}
	}
	if l.Points <= 0 {
		return ValidationError{Code: "INVALID_POINTS", Message: fmt.Sprintf("level %d: points must be positive, got %d", l.Number, l.Points)}
	}
	if !onGrid(l.Ball.X, l.Ball.Y) {
		return ValidationError{Code: "BALL_OFF_GRID", Message: fmt.Sprintf("level %d: ball start (%v, %v) outside the %dx%d grid", l.Number, l.Ball.X, l.Ball.Y, GridW, GridH)}
	}
	if !onGrid(l.Hole.X, l.Hole.Y) {
		return ValidationError{Code: "HOLE_OFF_GRID", Message: fmt.Sprintf("level %d: hole (%v, %v) outside the grid", l.Number, l.Hole.X, l.Hole.Y)}
	}
	if l.Hole.Radius < 0 {
		return ValidationError{Code: "INVALID_HOLE", Message: fmt.Sprintf("level %d: hole radius must not be negative", l.Number)}
	}

	for i, o := range l.Obstacles {
		if err := validateRect(o.X, o.Y, o.W, o.H); err != "" {
			return ValidationError{Code: "INVALID_OBSTACLE", Message: fmt.Sprintf("level %d: obstacle %d %s", l.Number, i, err)}
		}
	}
	for i, t := range l.Traps {
		if err := validateRect(t.X, t.Y, t.W, t.H); err != "" {
			return ValidationError{Code: "INVALID_TRAP", Message: fmt.Sprintf("level %d: trap %d %s", l.Number, i, err)}
		}
	}
	return nil
}

func onGrid(x, y float64) bool {
	return x >= 0 && x <= GridW && y >= 0 && y <= GridH
}

func validateRect(x, y, w, h float64) string {
	if w <= 0 || h <= 0 {
		return fmt.Sprintf("has non-positive size %vx%v", w, h)
	}
	if x < 0 || y < 0 || x+w > GridW || y+h > GridH {
		return fmt.Sprintf("at (%v, %v) size %vx%v leaves the grid", x, y, w, h)
	}
	return ""
}
