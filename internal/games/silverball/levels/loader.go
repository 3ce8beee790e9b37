// Package levels loads level packs for Silverball.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader reads level packs from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader for the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// Open returns a loader for root, or the builtin pack when root is empty.
func Open(root string) *Loader {
	if root == "" {
		return Builtin()
	}
	return NewLoader(root)
}

// Root returns a printable name for the level source.
func (l *Loader) Root() string {
	return l.root
}

// LoadAll recursively scans and loads every level file. Each level is
// validated and level numbers must be unique across files.
// Returns levels sorted by number for deterministic ordering.
func (l *Loader) LoadAll() ([]engine.Level, error) {
	var levels []engine.Level
	seen := make(map[int]string)

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		pack, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		for _, lvl := range pack {
			if prev, ok := seen[lvl.Number]; ok {
				return fmt.Errorf("level %d defined in both %s and %s", lvl.Number, prev, path)
			}
			seen[lvl.Number] = path
			levels = append(levels, lvl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading levels from %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})

	return levels, nil
}

// LoadFile loads and validates every level in a single file. path is
// relative to the loader root.
func (l *Loader) LoadFile(path string) ([]engine.Level, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	pack, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}

	for _, lvl := range pack.Levels {
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return pack.Levels, nil
}

// LoadByNumber loads a specific level.
func (l *Loader) LoadByNumber(number int) (engine.Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return engine.Level{}, err
	}

	for _, lvl := range levels {
		if lvl.Number == number {
			return lvl, nil
		}
	}

	return engine.Level{}, fmt.Errorf("level not found: %d", number)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".xml":
		return formats.ParseXML(data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
