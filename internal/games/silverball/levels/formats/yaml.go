// Package formats provides level pack parsers. Every parser returns engine
// levels; validation is left to the caller.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// Pack is a named, ordered list of levels parsed from one file.
type Pack struct {
	Name   string
	Levels []engine.Level
}

// YAMLPack represents the YAML structure of a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level inside a pack.
type YAMLLevel struct {
	Number    int            `yaml:"number"`
	Name      string         `yaml:"name,omitempty"`
	Points    int            `yaml:"points"`
	Time      int            `yaml:"time"`
	Ball      YAMLPoint      `yaml:"ball"`
	Hole      YAMLHole       `yaml:"hole"`
	Obstacles []YAMLObstacle `yaml:"obstacles,omitempty"`
	Traps     []YAMLRect     `yaml:"traps,omitempty"`
}

// YAMLPoint is a grid position.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLHole is the goal position with an optional radius in ball diameters.
type YAMLHole struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius,omitempty"`
}

// YAMLRect is a grid rectangle with an optional texture name.
type YAMLRect struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Texture string  `yaml:"texture,omitempty"`
}

// YAMLObstacle is a rectangle with a kind.
type YAMLObstacle struct {
	YAMLRect `yaml:",inline"`
	Type     string `yaml:"type,omitempty"`
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{Name: yp.Name, Levels: make([]engine.Level, 0, len(yp.Levels))}
	for i, yl := range yp.Levels {
		lvl := engine.Level{
			Number:    yl.Number,
			Name:      yl.Name,
			Ball:      engine.Point{X: yl.Ball.X, Y: yl.Ball.Y},
			Hole:      engine.Hole{X: yl.Hole.X, Y: yl.Hole.Y, Radius: yl.Hole.Radius},
			TimeLimit: yl.Time,
			Points:    yl.Points,
		}

		for _, o := range yl.Obstacles {
			kind, err := engine.ParseObstacleKind(o.Type)
			if err != nil {
				return Pack{}, fmt.Errorf("level %d (entry %d): %w", yl.Number, i, err)
			}
			lvl.Obstacles = append(lvl.Obstacles, engine.Obstacle{
				X: o.X, Y: o.Y, W: o.W, H: o.H,
				Kind:    kind,
				Texture: o.Texture,
			})
		}
		for _, t := range yl.Traps {
			lvl.Traps = append(lvl.Traps, engine.Trap{X: t.X, Y: t.Y, W: t.W, H: t.H, Texture: t.Texture})
		}

		pack.Levels = append(pack.Levels, lvl)
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".xml"}
}
