package levels_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/levels"
)

// testdataPath returns path to testdata/<name>.
func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(testdataPath("levels"))

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels from yaml and xml, got %d", len(lvls))
	}

	for i, lvl := range lvls {
		if lvl.Number != i+1 {
			t.Errorf("level %d has number %d, expected sorted 1..3", i, lvl.Number)
		}
	}
}

func TestLoaderYAMLFields(t *testing.T) {
	loader := levels.NewLoader(testdataPath("levels"))

	lvl, err := loader.LoadByNumber(2)
	if err != nil {
		t.Fatalf("LoadByNumber failed: %v", err)
	}

	if lvl.Name != "Second" || lvl.Points != 800 || lvl.TimeLimit != 20 {
		t.Errorf("unexpected header: %+v", lvl)
	}
	if lvl.Hole.Radius != 0.75 {
		t.Errorf("hole radius = %v", lvl.Hole.Radius)
	}
	if len(lvl.Obstacles) != 1 || lvl.Obstacles[0].Kind != engine.KindDeadly || lvl.Obstacles[0].Texture != "lava" {
		t.Errorf("obstacles = %+v", lvl.Obstacles)
	}
	if len(lvl.Traps) != 1 {
		t.Errorf("traps = %+v", lvl.Traps)
	}
}

func TestLoaderXMLFields(t *testing.T) {
	loader := levels.NewLoader(testdataPath("levels"))

	lvl, err := loader.LoadByNumber(3)
	if err != nil {
		t.Fatalf("LoadByNumber failed: %v", err)
	}

	if lvl.Ball != (engine.Point{X: 1, Y: 4}) {
		t.Errorf("ball = %+v", lvl.Ball)
	}
	if lvl.Hole.X != 15 || lvl.Hole.Y != 4 || lvl.Hole.Radius != 0 {
		t.Errorf("hole = %+v", lvl.Hole)
	}
	if len(lvl.Obstacles) != 2 {
		t.Fatalf("obstacles = %+v", lvl.Obstacles)
	}
	if lvl.Obstacles[0].Kind != engine.KindBenign || lvl.Obstacles[1].Kind != engine.KindDeadly {
		t.Errorf("kinds = %v, %v", lvl.Obstacles[0].Kind, lvl.Obstacles[1].Kind)
	}
	if len(lvl.Traps) != 1 || lvl.Traps[0].W != 2 || lvl.Traps[0].Texture != "pit" {
		t.Errorf("traps = %+v", lvl.Traps)
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(testdataPath("levels"))
	if _, err := loader.LoadByNumber(42); err == nil {
		t.Error("expected error for missing level")
	}
}

func TestLoaderRejectsInvalidLevels(t *testing.T) {
	loader := levels.NewLoader(testdataPath("broken"))

	_, err := loader.LoadFile("bad.yaml")
	var verr engine.ValidationError
	if !errors.As(err, &verr) || verr.Code != "INVALID_TIME" {
		t.Errorf("bad.yaml: expected INVALID_TIME, got %v", err)
	}

	_, err = loader.LoadFile("spiky.xml")
	if err == nil || !strings.Contains(err.Error(), "spiky") {
		t.Errorf("spiky.xml: expected unknown obstacle type error, got %v", err)
	}

	if _, err := loader.LoadAll(); err == nil {
		t.Error("LoadAll should fail on a broken pack")
	}
}

func TestBuiltinLevels(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("builtin pack failed to load: %v", err)
	}
	if len(lvls) < 5 {
		t.Fatalf("expected at least 5 builtin levels, got %d", len(lvls))
	}

	layout := engine.NewLayout(160, 90)
	for _, lvl := range lvls {
		pf := layout.Place(lvl)
		if !pf.Bounds.Contains(pf.Start) {
			t.Errorf("level %d: start %+v outside bounds", lvl.Number, pf.Start)
		}
		for _, o := range pf.Obstacles {
			if o.Rect.Contains(pf.Start) {
				t.Errorf("level %d: ball starts inside an obstacle", lvl.Number)
			}
		}
		for _, tr := range pf.Traps {
			if tr.Contains(pf.Start) {
				t.Errorf("level %d: ball starts inside a trap", lvl.Number)
			}
			if tr.Contains(pf.Hole.Center) {
				t.Errorf("level %d: hole inside a trap", lvl.Number)
			}
		}
	}
}

func TestOpenEmptyRootIsBuiltin(t *testing.T) {
	if root := levels.Open("").Root(); root != "builtin" {
		t.Errorf("root = %q, want builtin", root)
	}
}
