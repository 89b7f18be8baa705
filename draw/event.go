package draw

// GlyphID identifies a glyph inside a font.
type GlyphID uint32

// Op identifies the kind of a path event.
type Op uint8

const (
	OpMoveTo  Op = iota // Start a new contour
	OpLineTo            // Straight segment
	OpQuadTo            // Quadratic Bézier segment
	OpCubicTo           // Cubic Bézier segment
	OpClose             // Close the current contour
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpMoveTo:  "MoveTo",
	OpLineTo:  "LineTo",
	OpQuadTo:  "QuadTo",
	OpCubicTo: "CubicTo",
	OpClose:   "Close",
}

// String returns the string representation of an Op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// PathEvent is one outline construction step.
// This is a sealed interface: the five event types of this package are
// its only implementations, so a type switch over them is exhaustive.
type PathEvent interface {
	// Op returns the kind of the event.
	Op() Op

	pathEvent()
}

// MoveTo starts a new contour at (X, Y).
type MoveTo struct {
	X, Y float32
}

// Op implements PathEvent.
func (MoveTo) Op() Op { return OpMoveTo }

func (MoveTo) pathEvent() {}

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float32
}

// Op implements PathEvent.
func (LineTo) Op() Op { return OpLineTo }

func (LineTo) pathEvent() {}

// QuadTo draws a quadratic Bézier curve with control point (C1X, C1Y)
// ending at (X, Y).
type QuadTo struct {
	C1X, C1Y float32
	X, Y     float32
}

// Op implements PathEvent.
func (QuadTo) Op() Op { return OpQuadTo }

func (QuadTo) pathEvent() {}

// CubicTo draws a cubic Bézier curve with control points (C1X, C1Y) and
// (C2X, C2Y) ending at (X, Y).
type CubicTo struct {
	C1X, C1Y float32
	C2X, C2Y float32
	X, Y     float32
}

// Op implements PathEvent.
func (CubicTo) Op() Op { return OpCubicTo }

func (CubicTo) pathEvent() {}

// Close closes the current contour.
type Close struct{}

// Op implements PathEvent.
func (Close) Op() Op { return OpClose }

func (Close) pathEvent() {}

// End returns the point the pen rests on after ev, and false for Close,
// which has no end point of its own.
func End(ev PathEvent) (x, y float32, ok bool) {
	switch e := ev.(type) {
	case MoveTo:
		return e.X, e.Y, true
	case LineTo:
		return e.X, e.Y, true
	case QuadTo:
		return e.X, e.Y, true
	case CubicTo:
		return e.X, e.Y, true
	}
	return 0, 0, false
}
