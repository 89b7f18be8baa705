package draw

// Funcs is the outline callback contract of a font engine.
//
// The engine calls the methods in contour order for exactly one glyph.
// Coordinates are in the engine's output space, usually font units with
// the y axis pointing up.
type Funcs interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadraticTo(c1x, c1y, x, y float32)
	CubicTo(c1x, c1y, c2x, c2y, x, y float32)
	ClosePath()
}

// Drawer is implemented by engines that can emit a glyph outline.
type Drawer interface {
	// DrawGlyph reports the outline of gid to f.
	// A glyph without contours (a space) emits nothing and returns nil.
	DrawGlyph(gid GlyphID, f Funcs) error
}

// Apply forwards a single event to the matching callback of f.
func Apply(f Funcs, ev PathEvent) {
	switch e := ev.(type) {
	case MoveTo:
		f.MoveTo(e.X, e.Y)
	case LineTo:
		f.LineTo(e.X, e.Y)
	case QuadTo:
		f.QuadraticTo(e.C1X, e.C1Y, e.X, e.Y)
	case CubicTo:
		f.CubicTo(e.C1X, e.C1Y, e.C2X, e.C2Y, e.X, e.Y)
	case Close:
		f.ClosePath()
	}
}

// Replay forwards events to f in order.
func Replay(f Funcs, events ...PathEvent) {
	for _, ev := range events {
		Apply(f, ev)
	}
}

// Discard is a Funcs that ignores every call.
var Discard Funcs = discard{}

type discard struct{}

func (discard) MoveTo(_, _ float32)              {}
func (discard) LineTo(_, _ float32)              {}
func (discard) QuadraticTo(_, _, _, _ float32)   {}
func (discard) CubicTo(_, _, _, _, _, _ float32) {}
func (discard) ClosePath()                       {}
