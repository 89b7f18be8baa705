package tracecmp

import (
	"fmt"
	"strings"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// Trace replays the fixture's calls into a fresh recorder and returns the
// trace. A query whose answer differs from Returns is an error.
func (f Fixture) Trace() (string, error) {
	if f.Kind == KindDraw {
		events, err := f.pathEvents()
		if err != nil {
			return "", err
		}
		rec := draw.NewRecorder()
		draw.Replay(rec, events...)
		return rec.String(), nil
	}
	return f.paintTrace()
}

// Check compares the replayed trace with the expected one byte for byte.
func (f Fixture) Check() error {
	got, err := f.Trace()
	if err != nil {
		return err
	}
	if want := f.Expected(); got != want {
		return &MismatchError{Name: f.Name, Got: got, Want: want}
	}
	return nil
}

// MismatchError reports a trace that differs from the fixture.
type MismatchError struct {
	Name      string
	Got, Want string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("fixture %s: trace mismatch at line %d\ngot:\n%s\nwant:\n%s",
		e.Name, firstDiffLine(e.Got, e.Want), e.Got, e.Want)
}

func firstDiffLine(a, b string) int {
	al, bl := strings.Split(a, "\n"), strings.Split(b, "\n")
	for i := range min(len(al), len(bl)) {
		if al[i] != bl[i] {
			return i + 1
		}
	}
	return min(len(al), len(bl)) + 1
}

func (f Fixture) paintTrace() (trace string, err error) {
	events, err := f.paintEvents()
	if err != nil {
		return "", err
	}
	rec := paint.NewRecorder()
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			trace, err = rec.String(), e
		}
	}()
	for i, ev := range events {
		res := paint.Apply(rec, ev)
		if want := f.Calls[i].Returns; want != nil && res.Handled != *want {
			return "", fmt.Errorf("call %d (%s): returned %v, want %v", i, f.Calls[i].Op, res.Handled, *want)
		}
	}
	return rec.Finish(), nil
}

func (f Fixture) pathEvents() ([]draw.PathEvent, error) {
	out := make([]draw.PathEvent, 0, len(f.Calls))
	for i, c := range f.Calls {
		ev, err := c.pathEvent()
		if err != nil {
			return nil, fmt.Errorf("call %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f Fixture) paintEvents() ([]paint.PaintEvent, error) {
	out := make([]paint.PaintEvent, 0, len(f.Calls))
	for i, c := range f.Calls {
		ev, err := c.paintEvent()
		if err != nil {
			return nil, fmt.Errorf("call %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (c Call) args(n int) ([]float32, error) {
	if len(c.Args) != n {
		return nil, fmt.Errorf("%s: want %d args, got %d", c.Op, n, len(c.Args))
	}
	return c.Args, nil
}

func (c Call) pathEvent() (draw.PathEvent, error) {
	switch c.Op {
	case "move_to":
		a, err := c.args(2)
		if err != nil {
			return nil, err
		}
		return draw.MoveTo{X: a[0], Y: a[1]}, nil
	case "line_to":
		a, err := c.args(2)
		if err != nil {
			return nil, err
		}
		return draw.LineTo{X: a[0], Y: a[1]}, nil
	case "quadratic_to":
		a, err := c.args(4)
		if err != nil {
			return nil, err
		}
		return draw.QuadTo{C1X: a[0], C1Y: a[1], X: a[2], Y: a[3]}, nil
	case "cubic_to":
		a, err := c.args(6)
		if err != nil {
			return nil, err
		}
		return draw.CubicTo{C1X: a[0], C1Y: a[1], C2X: a[2], C2Y: a[3], X: a[4], Y: a[5]}, nil
	case "close_path":
		return draw.Close{}, nil
	}
	return nil, fmt.Errorf("unknown draw op %q", c.Op)
}

func (c Call) paintEvent() (paint.PaintEvent, error) {
	switch c.Op {
	case "push_transform":
		a, err := c.args(6)
		if err != nil {
			return nil, err
		}
		return paint.PushTransform{XX: a[0], YX: a[1], XY: a[2], YY: a[3], DX: a[4], DY: a[5]}, nil
	case "pop_transform":
		return paint.PopTransform{}, nil
	case "color_glyph":
		return paint.ColorGlyph{Glyph: draw.GlyphID(c.Glyph)}, nil
	case "push_clip_glyph":
		return paint.PushClipGlyph{Glyph: draw.GlyphID(c.Glyph)}, nil
	case "push_clip_rectangle":
		a, err := c.args(4)
		if err != nil {
			return nil, err
		}
		return paint.PushClipRect{XMin: a[0], YMin: a[1], XMax: a[2], YMax: a[3]}, nil
	case "pop_clip":
		return paint.PopClip{}, nil
	case "color":
		col, err := paint.ParseColor(c.Color)
		if err != nil {
			return nil, err
		}
		return paint.SolidColor{UseForeground: c.Foreground, Color: col}, nil
	case "image":
		return c.image()
	case "linear_gradient":
		a, err := c.args(6)
		if err != nil {
			return nil, err
		}
		line, err := c.Line.parse()
		if err != nil {
			return nil, err
		}
		return paint.LinearGradient{
			Line: line,
			P0:   paint.Point{X: a[0], Y: a[1]},
			P1:   paint.Point{X: a[2], Y: a[3]},
			P2:   paint.Point{X: a[4], Y: a[5]},
		}, nil
	case "radial_gradient":
		a, err := c.args(6)
		if err != nil {
			return nil, err
		}
		line, err := c.Line.parse()
		if err != nil {
			return nil, err
		}
		return paint.RadialGradient{
			Line: line,
			C0:   paint.Point{X: a[0], Y: a[1]},
			R0:   a[2],
			C1:   paint.Point{X: a[3], Y: a[4]},
			R1:   a[5],
		}, nil
	case "sweep_gradient":
		a, err := c.args(4)
		if err != nil {
			return nil, err
		}
		line, err := c.Line.parse()
		if err != nil {
			return nil, err
		}
		return paint.SweepGradient{
			Line:       line,
			Center:     paint.Point{X: a[0], Y: a[1]},
			StartAngle: a[2],
			EndAngle:   a[3],
		}, nil
	case "push_group":
		return paint.PushGroup{}, nil
	case "pop_group":
		mode, err := parseMode(c.Mode)
		if err != nil {
			return nil, err
		}
		return paint.PopGroup{Mode: mode}, nil
	case "custom_palette_color":
		return paint.CustomPaletteColor{Index: c.Index}, nil
	}
	return nil, fmt.Errorf("unknown paint op %q", c.Op)
}

func (c Call) image() (paint.PaintEvent, error) {
	if len(c.Format) != 4 {
		return nil, fmt.Errorf("image: format tag %q is not 4 bytes", c.Format)
	}
	var format paint.ImageFormat
	copy(format[:], c.Format)
	var slant float32
	if len(c.Args) > 0 {
		slant = c.Args[0]
	}
	return paint.Image{
		Width:  c.Size[0],
		Height: c.Size[1],
		Format: format,
		Slant:  slant,
		Extents: paint.Extents{
			XBearing: c.Extents[0],
			YBearing: c.Extents[1],
			Width:    c.Extents[2],
			Height:   c.Extents[3],
		},
	}, nil
}

func (l *ColorLine) parse() (paint.StaticColorLine, error) {
	if l == nil {
		return paint.StaticColorLine{}, fmt.Errorf("gradient without line")
	}
	mode, err := parseExtend(l.Extend)
	if err != nil {
		return paint.StaticColorLine{}, err
	}
	out := paint.StaticColorLine{Mode: mode, ColorStops: make([]paint.ColorStop, len(l.Stops))}
	for i, s := range l.Stops {
		col, err := paint.ParseColor(s.Color)
		if err != nil {
			return paint.StaticColorLine{}, fmt.Errorf("stop %d: %w", i, err)
		}
		out.ColorStops[i] = paint.ColorStop{Offset: s.Offset, Color: col, IsForeground: s.Foreground}
	}
	return out, nil
}

func parseExtend(s string) (paint.ExtendMode, error) {
	if s == "" {
		return paint.ExtendPad, nil
	}
	for m := paint.ExtendPad; m <= paint.ExtendReflect; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown extend mode %q", s)
}

func parseMode(s string) (paint.CompositeMode, error) {
	if s == "" {
		return paint.CompositeSrcOver, nil
	}
	for m := paint.CompositeClear; m.Valid(); m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown composite mode %q", s)
}
