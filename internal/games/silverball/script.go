package silverball

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-silverball/internal/core"
)

// TiltScript is a timeline of board tilts for headless runs.
type TiltScript struct {
	Steps []TiltStep `yaml:"steps"`
}

// TiltStep sets the tilt to (X, Y) from At seconds after the run starts
// until the next step.
type TiltStep struct {
	At float64 `yaml:"at"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// ParseTiltScript parses a YAML tilt script. Steps are sorted by time.
func ParseTiltScript(data []byte) (TiltScript, error) {
	var s TiltScript
	if err := yaml.Unmarshal(data, &s); err != nil {
		return TiltScript{}, fmt.Errorf("tilt script: %w", err)
	}
	for i, st := range s.Steps {
		if st.At < 0 {
			return TiltScript{}, fmt.Errorf("tilt script: step %d has negative time %v", i, st.At)
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool {
		return s.Steps[i].At < s.Steps[j].At
	})
	return s, nil
}

// LoadTiltScript reads a tilt script file.
func LoadTiltScript(path string) (TiltScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TiltScript{}, fmt.Errorf("tilt script: %w", err)
	}
	return ParseTiltScript(data)
}

// At returns the tilt in effect after elapsed. Before the first step the
// board is level.
func (s TiltScript) At(elapsed time.Duration) core.Vector2 {
	sec := elapsed.Seconds()
	var v core.Vector2
	for _, st := range s.Steps {
		if st.At > sec {
			break
		}
		v = core.Vec(st.X, st.Y)
	}
	return v
}
