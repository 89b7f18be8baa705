package draw

import (
	"strconv"
	"strings"
)

// Recorder serializes outline events into the path grammar described in
// the package documentation.
//
// Example:
//
//	var rec draw.Recorder
//	rec.MoveTo(1, 2)
//	rec.LineTo(3, 4)
//	rec.ClosePath()
//	rec.String() // "M1,2L3,4Z"
//
// The zero value is ready to use. Recorder is not safe for concurrent use.
type Recorder struct {
	buf strings.Builder
	num [24]byte // scratch space for number formatting
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// MoveTo implements Funcs.
func (r *Recorder) MoveTo(x, y float32) {
	r.buf.WriteByte('M')
	r.point(x, y)
}

// LineTo implements Funcs.
func (r *Recorder) LineTo(x, y float32) {
	r.buf.WriteByte('L')
	r.point(x, y)
}

// QuadraticTo implements Funcs.
func (r *Recorder) QuadraticTo(c1x, c1y, x, y float32) {
	r.buf.WriteByte('Q')
	r.point(c1x, c1y)
	r.buf.WriteByte(' ')
	r.point(x, y)
}

// CubicTo implements Funcs.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	r.buf.WriteByte('C')
	r.point(c1x, c1y)
	r.buf.WriteByte(' ')
	r.point(c2x, c2y)
	r.buf.WriteByte(' ')
	r.point(x, y)
}

// ClosePath implements Funcs.
func (r *Recorder) ClosePath() {
	r.buf.WriteByte('Z')
}

// String returns the serialized outline recorded so far.
func (r *Recorder) String() string {
	return r.buf.String()
}

// Len returns the number of bytes recorded so far.
func (r *Recorder) Len() int {
	return r.buf.Len()
}

// Reset discards the recorded outline so the Recorder can serve the next
// glyph.
func (r *Recorder) Reset() {
	r.buf.Reset()
}

func (r *Recorder) point(x, y float32) {
	r.number(x)
	r.buf.WriteByte(',')
	r.number(y)
}

func (r *Recorder) number(v float32) {
	r.buf.Write(AppendNumber(r.num[:0], v))
}

// AppendNumber appends the shortest decimal form of v that parses back to
// the same float32.
func AppendNumber(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
}

// FormatNumber is the string form of AppendNumber.
func FormatNumber(v float32) string {
	return string(AppendNumber(nil, v))
}
