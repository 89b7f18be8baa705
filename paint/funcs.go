package paint

import "github.com/gogpu/glyphtrace/draw"

// Funcs receives the callbacks of a colour-glyph paint session.
//
// Pushes and pops are strictly nested. ColorGlyph and Image return whether
// the consumer handled the request; false asks the engine to fall back
// (to the outline for ColorGlyph, to the next glyph representation for
// Image). CustomPaletteColor returns an override for a palette entry, or
// false to keep the font's colour.
type Funcs interface {
	PushTransform(xx, yx, xy, yy, dx, dy float32)
	PopTransform()
	ColorGlyph(gid draw.GlyphID) bool
	PushClipGlyph(gid draw.GlyphID)
	PushClipRectangle(xmin, ymin, xmax, ymax float32)
	PopClip()
	Color(useForeground bool, c Color)
	Image(blob []byte, width, height uint32, format ImageFormat, slant float32, extents Extents) bool
	LinearGradient(line ColorLine, x0, y0, x1, y1, x2, y2 float32)
	RadialGradient(line ColorLine, x0, y0, r0, x1, y1, r1 float32)
	SweepGradient(line ColorLine, cx, cy, startAngle, endAngle float32)
	PushGroup()
	PopGroup(mode CompositeMode)
	CustomPaletteColor(index uint32) (Color, bool)
}

// PaintOptions selects the palette and foreground colour of a session.
type PaintOptions struct {
	Palette    int
	Foreground Color
}

// DefaultPaintOptions uses palette 0 and an opaque black foreground.
func DefaultPaintOptions() PaintOptions {
	return PaintOptions{Foreground: Black}
}

// Painter is implemented by font engines that can paint a glyph.
type Painter interface {
	PaintGlyph(gid draw.GlyphID, f Funcs, opts PaintOptions) error
}

// Result carries the answer of a query callback.
type Result struct {
	// Handled is the return value of ColorGlyph or Image, or whether
	// CustomPaletteColor produced an override.
	Handled bool

	// Color is the override returned by CustomPaletteColor.
	Color Color
}

// Apply dispatches ev to the matching method of f.
// Events that are not queries yield a zero Result.
func Apply(f Funcs, ev PaintEvent) Result {
	switch e := ev.(type) {
	case PushTransform:
		f.PushTransform(e.XX, e.YX, e.XY, e.YY, e.DX, e.DY)
	case PopTransform:
		f.PopTransform()
	case PushClipGlyph:
		f.PushClipGlyph(e.Glyph)
	case PushClipRect:
		f.PushClipRectangle(e.XMin, e.YMin, e.XMax, e.YMax)
	case PopClip:
		f.PopClip()
	case PushGroup:
		f.PushGroup()
	case PopGroup:
		f.PopGroup(e.Mode)
	case ColorGlyph:
		return Result{Handled: f.ColorGlyph(e.Glyph)}
	case SolidColor:
		f.Color(e.UseForeground, e.Color)
	case Image:
		return Result{Handled: f.Image(e.Blob, e.Width, e.Height, e.Format, e.Slant, e.Extents)}
	case LinearGradient:
		f.LinearGradient(e.Line, e.P0.X, e.P0.Y, e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	case RadialGradient:
		f.RadialGradient(e.Line, e.C0.X, e.C0.Y, e.R0, e.C1.X, e.C1.Y, e.R1)
	case SweepGradient:
		f.SweepGradient(e.Line, e.Center.X, e.Center.Y, e.StartAngle, e.EndAngle)
	case CustomPaletteColor:
		c, ok := f.CustomPaletteColor(e.Index)
		return Result{Handled: ok, Color: c}
	}
	return Result{}
}

// Replay applies events to f in order.
func Replay(f Funcs, events ...PaintEvent) {
	for _, ev := range events {
		Apply(f, ev)
	}
}

// Collector stores paint callbacks as events. Query callbacks are answered
// with the configured values.
type Collector struct {
	Events []PaintEvent

	// HandleColorGlyph and HandleImage are returned from ColorGlyph and Image.
	HandleColorGlyph bool
	HandleImage      bool
}

func (c *Collector) add(ev PaintEvent) { c.Events = append(c.Events, ev) }

// The callbacks below append the matching event. ColorGlyph and Image
// also report the configured answer.

// PushTransform implements Funcs.
func (c *Collector) PushTransform(xx, yx, xy, yy, dx, dy float32) {
	c.add(PushTransform{xx, yx, xy, yy, dx, dy})
}

func (c *Collector) PopTransform() { c.add(PopTransform{}) }

// ColorGlyph returns HandleColorGlyph.
func (c *Collector) ColorGlyph(gid draw.GlyphID) bool {
	c.add(ColorGlyph{Glyph: gid})
	return c.HandleColorGlyph
}

func (c *Collector) PushClipGlyph(gid draw.GlyphID) { c.add(PushClipGlyph{Glyph: gid}) }

func (c *Collector) PushClipRectangle(xmin, ymin, xmax, ymax float32) {
	c.add(PushClipRect{xmin, ymin, xmax, ymax})
}

func (c *Collector) PopClip() { c.add(PopClip{}) }

func (c *Collector) Color(useForeground bool, col Color) {
	c.add(SolidColor{UseForeground: useForeground, Color: col})
}

// Image keeps the blob slice as given and returns HandleImage.
func (c *Collector) Image(blob []byte, width, height uint32, format ImageFormat, slant float32, extents Extents) bool {
	c.add(Image{
		Blob:    blob,
		Width:   width,
		Height:  height,
		Format:  format,
		Slant:   slant,
		Extents: extents,
	})
	return c.HandleImage
}

// Gradient events keep a snapshot of the line, not the line itself.

func (c *Collector) LinearGradient(line ColorLine, x0, y0, x1, y1, x2, y2 float32) {
	c.add(LinearGradient{Line: Snapshot(line), P0: Point{x0, y0}, P1: Point{x1, y1}, P2: Point{x2, y2}})
}

func (c *Collector) RadialGradient(line ColorLine, x0, y0, r0, x1, y1, r1 float32) {
	c.add(RadialGradient{Line: Snapshot(line), C0: Point{x0, y0}, R0: r0, C1: Point{x1, y1}, R1: r1})
}

func (c *Collector) SweepGradient(line ColorLine, cx, cy, startAngle, endAngle float32) {
	c.add(SweepGradient{Line: Snapshot(line), Center: Point{cx, cy}, StartAngle: startAngle, EndAngle: endAngle})
}

func (c *Collector) PushGroup() { c.add(PushGroup{}) }

func (c *Collector) PopGroup(mode CompositeMode) { c.add(PopGroup{Mode: mode}) }

// CustomPaletteColor never overrides.
func (c *Collector) CustomPaletteColor(index uint32) (Color, bool) {
	c.add(CustomPaletteColor{Index: index})
	return Color{}, false
}

// Reset drops all collected events.
func (c *Collector) Reset() { c.Events = c.Events[:0] }

// PaintOutline paints gid the way an engine paints a glyph without colour
// data: the glyph outline as clip, filled with the foreground colour.
func PaintOutline(f Funcs, gid draw.GlyphID, foreground Color) {
	f.PushClipGlyph(gid)
	f.Color(true, foreground)
	f.PopClip()
}
