// Package tracecmp checks the recorders against JSON fixtures.
//
// A fixture is a script of callbacks and the exact trace they must
// produce:
//
//	{
//	  "name": "group",
//	  "kind": "paint",
//	  "calls": [
//	    {"op": "push_group"},
//	    {"op": "color", "foreground": true, "color": "#0a141eff"},
//	    {"op": "pop_group", "mode": "Clear"}
//	  ],
//	  "want": ["push group", "  solid 10 20 30 255", "pop group mode 0"]
//	}
//
// Paint traces are the want lines, each terminated by a newline. Draw
// traces are the want strings concatenated.
package tracecmp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Fixture kinds.
const (
	KindDraw  = "draw"
	KindPaint = "paint"
)

// Fixture is one recorded session and its expected trace.
type Fixture struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Calls []Call   `json:"calls"`
	Want  []string `json:"want"`

	path string
}

// Call is one callback. Which fields apply depends on Op.
type Call struct {
	Op         string     `json:"op"`
	Args       []float32  `json:"args,omitempty"`
	Glyph      uint32     `json:"glyph,omitempty"`
	Foreground bool       `json:"foreground,omitempty"`
	Color      string     `json:"color,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	Line       *ColorLine `json:"line,omitempty"`
	Format     string     `json:"format,omitempty"`
	Size       [2]uint32  `json:"size"`
	Extents    [4]int32   `json:"extents"`
	Index      uint32     `json:"index,omitempty"`

	// Returns is the expected answer of a query callback.
	Returns *bool `json:"returns,omitempty"`
}

// ColorLine is the JSON form of a gradient colour line.
type ColorLine struct {
	Extend string `json:"extend,omitempty"`
	Stops  []Stop `json:"stops"`
}

// Stop is one colour stop.
type Stop struct {
	Offset     float32 `json:"offset"`
	Color      string  `json:"color"`
	Foreground bool    `json:"foreground,omitempty"`
}

// Path returns the file the fixture was loaded from.
func (f Fixture) Path() string { return f.path }

func (f Fixture) validate() error {
	if f.Name == "" {
		return fmt.Errorf("fixture: name is required")
	}
	if f.Kind != KindDraw && f.Kind != KindPaint {
		return fmt.Errorf("fixture: kind must be %q or %q, got %q", KindDraw, KindPaint, f.Kind)
	}
	if len(f.Calls) == 0 {
		return fmt.Errorf("fixture: calls must not be empty")
	}
	return nil
}

// Expected returns the trace the fixture must produce.
func (f Fixture) Expected() string {
	if f.Kind == KindDraw {
		return strings.Join(f.Want, "")
	}
	var b strings.Builder
	for _, l := range f.Want {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Load reads and validates one fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, err
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, err
	}
	if err := f.validate(); err != nil {
		return Fixture{}, err
	}
	f.path = path
	return f, nil
}

// LoadDir loads every *.json fixture in dir, sorted by file name.
func LoadDir(dir string) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name := e.Name(); strings.HasSuffix(strings.ToLower(name), ".json") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	out := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, fmt.Errorf("load fixture %s: %w", p, err)
		}
		out = append(out, f)
	}
	return out, nil
}
