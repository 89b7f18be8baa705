package draw

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// Empty returns true if the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Outline collects the path events of one glyph.
// It implements Funcs, so it can be handed to an engine directly, and
// it can replay the collected events into another Funcs later.
//
// The zero value is an empty outline ready to use.
type Outline struct {
	events []PathEvent
}

// NewOutline creates an Outline holding a copy of events.
func NewOutline(events ...PathEvent) *Outline {
	o := &Outline{events: make([]PathEvent, len(events))}
	copy(o.events, events)
	return o
}

// MoveTo implements Funcs.
func (o *Outline) MoveTo(x, y float32) {
	o.events = append(o.events, MoveTo{X: x, Y: y})
}

// LineTo implements Funcs.
func (o *Outline) LineTo(x, y float32) {
	o.events = append(o.events, LineTo{X: x, Y: y})
}

// QuadraticTo implements Funcs.
func (o *Outline) QuadraticTo(c1x, c1y, x, y float32) {
	o.events = append(o.events, QuadTo{C1X: c1x, C1Y: c1y, X: x, Y: y})
}

// CubicTo implements Funcs.
func (o *Outline) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	o.events = append(o.events, CubicTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// ClosePath implements Funcs.
func (o *Outline) ClosePath() {
	o.events = append(o.events, Close{})
}

// Events returns the collected events in emission order.
// The slice is owned by the Outline and must not be modified.
func (o *Outline) Events() []PathEvent {
	return o.events
}

// Len returns the number of collected events.
func (o *Outline) Len() int {
	return len(o.events)
}

// IsEmpty returns true if the outline has no events.
func (o *Outline) IsEmpty() bool {
	return len(o.events) == 0
}

// Contours returns the number of contours, counted by their MoveTo.
func (o *Outline) Contours() int {
	n := 0
	for _, ev := range o.events {
		if ev.Op() == OpMoveTo {
			n++
		}
	}
	return n
}

// Reset discards the collected events, keeping the allocated storage.
func (o *Outline) Reset() {
	o.events = o.events[:0]
}

// Replay forwards the collected events to f.
func (o *Outline) Replay(f Funcs) {
	Replay(f, o.events...)
}

// String serializes the outline in the Recorder grammar.
func (o *Outline) String() string {
	var rec Recorder
	o.Replay(&rec)
	return rec.String()
}

// Bounds returns the bounding box of all points, control points included.
// An empty outline has a zero Rect.
func (o *Outline) Bounds() Rect {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	seen := false

	add := func(x, y float32) {
		seen = true
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	for _, ev := range o.events {
		switch e := ev.(type) {
		case MoveTo:
			add(e.X, e.Y)
		case LineTo:
			add(e.X, e.Y)
		case QuadTo:
			add(e.C1X, e.C1Y)
			add(e.X, e.Y)
		case CubicTo:
			add(e.C1X, e.C1Y)
			add(e.C2X, e.C2Y)
			add(e.X, e.Y)
		}
	}

	if !seen {
		return Rect{}
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Transform returns a new outline with every point mapped through m.
func (o *Outline) Transform(m Matrix) *Outline {
	out := &Outline{events: make([]PathEvent, 0, len(o.events))}
	o.Replay(Transformer{M: m, Next: out})
	return out
}

// Clone creates a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	return NewOutline(o.events...)
}
