package paint

// ExtendMode says how a gradient continues outside its [0, 1] stop range.
type ExtendMode uint8

// Extend modes, numbered as in COLRv1.
const (
	ExtendPad ExtendMode = iota
	ExtendRepeat
	ExtendReflect
)

var extendNames = [...]string{"Pad", "Repeat", "Reflect"}

// String returns the mode name.
func (m ExtendMode) String() string {
	if int(m) < len(extendNames) {
		return extendNames[m]
	}
	return "Unknown"
}

// ColorStop is one stop of a colour line.
type ColorStop struct {
	Offset float32
	Color  Color

	// IsForeground marks a stop that uses the caller's foreground colour;
	// Color then only carries the alpha to apply to it.
	IsForeground bool
}

// Resolve returns the concrete stop colour given the foreground colour.
func (s ColorStop) Resolve(foreground Color) Color {
	if !s.IsForeground {
		return s.Color
	}
	return foreground.WithAlpha(s.Color.A)
}

// ColorLine is the stop list of a gradient. Stops are reported in the
// order the font stores them: not necessarily sorted, possibly with
// duplicates or offsets outside [0, 1].
type ColorLine interface {
	Extend() ExtendMode
	Stops() []ColorStop
}

// StaticColorLine is a ColorLine backed by a slice.
type StaticColorLine struct {
	Mode       ExtendMode
	ColorStops []ColorStop
}

// Extend implements ColorLine.
func (l StaticColorLine) Extend() ExtendMode { return l.Mode }

// Stops implements ColorLine.
func (l StaticColorLine) Stops() []ColorStop { return l.ColorStops }

// Snapshot copies the current state of any ColorLine.
func Snapshot(l ColorLine) StaticColorLine {
	if l == nil {
		return StaticColorLine{}
	}
	stops := l.Stops()
	return StaticColorLine{
		Mode:       l.Extend(),
		ColorStops: append([]ColorStop(nil), stops...),
	}
}

// NormalizeColorLine resolves foreground stops and rescales offsets so
// that the smallest becomes 0 and the largest 1. It returns the original
// offset range so callers can map gradient geometry onto it. Stop order is
// preserved. A line whose stops share one offset is returned unscaled.
func NormalizeColorLine(stops []ColorStop, foreground Color) (minOffset, maxOffset float32, out []ColorStop) {
	if len(stops) == 0 {
		return 0, 0, nil
	}
	minOffset, maxOffset = stops[0].Offset, stops[0].Offset
	for _, s := range stops[1:] {
		minOffset = min(minOffset, s.Offset)
		maxOffset = max(maxOffset, s.Offset)
	}

	out = make([]ColorStop, len(stops))
	span := maxOffset - minOffset
	for i, s := range stops {
		off := s.Offset
		if span != 0 {
			off = (off - minOffset) / span
		}
		out[i] = ColorStop{Offset: off, Color: s.Resolve(foreground)}
	}
	return minOffset, maxOffset, out
}

// ReduceAnchors folds the three anchor points of a COLRv1 linear gradient
// into the two end points of an ordinary linear gradient. p2 only sets the
// direction of the lines of constant colour; p1 is projected onto the
// normal of that direction through p0.
func ReduceAnchors(p0, p1, p2 Point) (Point, Point) {
	qx, qy := p2.X-p0.X, p2.Y-p0.Y
	sx, sy := p1.X-p0.X, p1.Y-p0.Y
	den := qx*qx + qy*qy
	if den == 0 {
		return p0, p1
	}
	k := (sx*qx + sy*qy) / den
	return p0, Point{X: p1.X - k*qx, Y: p1.Y - k*qy}
}
