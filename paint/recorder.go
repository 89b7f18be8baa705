package paint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/glyphtrace/draw"
)

// ErrUnbalanced is the panic value, wrapped, for a pop without a matching
// push or a session finished with open pushes.
var ErrUnbalanced = errors.New("paint: unbalanced push/pop")

const indentUnit = "  "

// Recorder is a Funcs that writes one trace line per callback.
//
// Numbers use three significant digits (C's "%.3g"); colour channels,
// glyph ids, image sizes and extents are integers.
type Recorder struct {
	buf   strings.Builder
	depth int
	num   []byte
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Depth returns the number of open pushes.
func (r *Recorder) Depth() int { return r.depth }

// String returns the trace so far. It never panics.
func (r *Recorder) String() string { return r.buf.String() }

// Finish returns the trace of a complete session.
// It panics with ErrUnbalanced if any push is still open.
func (r *Recorder) Finish() string {
	if r.depth != 0 {
		panic(fmt.Errorf("%w: %d open at finish", ErrUnbalanced, r.depth))
	}
	return r.buf.String()
}

// Reset clears the trace and the depth.
func (r *Recorder) Reset() {
	r.buf.Reset()
	r.depth = 0
}

// PushTransform records the matrix and opens a level.
func (r *Recorder) PushTransform(xx, yx, xy, yy, dx, dy float32) {
	r.line("start transform", xx, yx, xy, yy, dx, dy)
	r.depth++
}

// PopTransform closes a transform level.
func (r *Recorder) PopTransform() {
	r.pop("transform")
	r.line("end transform")
}

// ColorGlyph records the request and reports it unhandled.
func (r *Recorder) ColorGlyph(gid draw.GlyphID) bool {
	r.linef("paint color glyph %d; acting as failed", gid)
	return false
}

// PushClipGlyph records a glyph clip and opens a level.
func (r *Recorder) PushClipGlyph(gid draw.GlyphID) {
	r.linef("start clip glyph %d", gid)
	r.depth++
}

// PushClipRectangle records a rectangle clip and opens a level.
func (r *Recorder) PushClipRectangle(xmin, ymin, xmax, ymax float32) {
	r.line("start clip rectangle", xmin, ymin, xmax, ymax)
	r.depth++
}

// PopClip closes a clip level.
func (r *Recorder) PopClip() {
	r.pop("clip")
	r.line("end clip")
}

// Color records a solid fill with the resolved colour.
func (r *Recorder) Color(_ bool, c Color) {
	r.linef("solid %d %d %d %d", c.R, c.G, c.B, c.A)
}

// Image records the request and reports it handled.
func (r *Recorder) Image(_ []byte, width, height uint32, format ImageFormat, slant float32, extents Extents) bool {
	r.linef("image type %s size %d %d slant %s extents %d %d %d %d",
		format, width, height, r.g3(slant),
		extents.XBearing, extents.YBearing, extents.Width, extents.Height)
	return true
}

// LinearGradient records the three anchors and the colour line one level deeper.
func (r *Recorder) LinearGradient(line ColorLine, x0, y0, x1, y1, x2, y2 float32) {
	r.line("linear gradient")
	r.depth++
	r.line("p0", x0, y0)
	r.line("p1", x1, y1)
	r.line("p2", x2, y2)
	r.colorLine(line)
	r.depth--
}

// RadialGradient records both circles and the colour line one level deeper.
func (r *Recorder) RadialGradient(line ColorLine, x0, y0, r0, x1, y1, r1 float32) {
	r.line("radial gradient")
	r.depth++
	r.linef("p0 %s %s radius %s", r.g3(x0), r.g3(y0), r.g3(r0))
	r.linef("p1 %s %s radius %s", r.g3(x1), r.g3(y1), r.g3(r1))
	r.colorLine(line)
	r.depth--
}

// SweepGradient records the centre, the angles and the colour line.
func (r *Recorder) SweepGradient(line ColorLine, cx, cy, startAngle, endAngle float32) {
	r.line("sweep gradient")
	r.depth++
	r.line("center", cx, cy)
	r.line("angles", startAngle, endAngle)
	r.colorLine(line)
	r.depth--
}

// PushGroup opens a group level.
func (r *Recorder) PushGroup() {
	r.line("push group")
	r.depth++
}

// PopGroup closes a group level and records its composite mode ordinal.
func (r *Recorder) PopGroup(mode CompositeMode) {
	r.pop("group")
	r.linef("pop group mode %d", mode)
}

// CustomPaletteColor reports no override and writes nothing.
func (r *Recorder) CustomPaletteColor(uint32) (Color, bool) {
	return Color{}, false
}

func (r *Recorder) pop(what string) {
	if r.depth == 0 {
		panic(fmt.Errorf("%w: pop %s at depth 0", ErrUnbalanced, what))
	}
	r.depth--
}

func (r *Recorder) colorLine(line ColorLine) {
	var (
		mode  ExtendMode
		stops []ColorStop
	)
	if line != nil {
		mode, stops = line.Extend(), line.Stops()
	}
	r.linef("colors %d", mode)
	r.depth++
	for _, s := range stops {
		r.linef("%s %d %d %d %d", r.g3(s.Offset), s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	}
	r.depth--
}

func (r *Recorder) indent() {
	for i := 0; i < r.depth; i++ {
		r.buf.WriteString(indentUnit)
	}
}

// line writes head followed by the numbers, space separated.
func (r *Recorder) line(head string, nums ...float32) {
	r.indent()
	r.buf.WriteString(head)
	for _, v := range nums {
		r.buf.WriteByte(' ')
		r.num = AppendG3(r.num[:0], v)
		r.buf.Write(r.num)
	}
	r.buf.WriteByte('\n')
}

func (r *Recorder) linef(format string, args ...any) {
	r.indent()
	fmt.Fprintf(&r.buf, format, args...)
	r.buf.WriteByte('\n')
}

func (r *Recorder) g3(v float32) string {
	r.num = AppendG3(r.num[:0], v)
	return string(r.num)
}

// AppendG3 appends v formatted with three significant digits, trailing
// zeros removed, exponent form for very large or small magnitudes.
func AppendG3(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', 3, 64)
}
