// Package draw records glyph outlines.
//
// A font engine walks the contours of one glyph and reports them through
// the [Funcs] callback contract: move-to, line-to, quadratic-to, cubic-to
// and close-path. Package draw offers two consumers of that contract:
//
//   - [Recorder] serializes the events into a compact SVG-like path string
//     ("M1,2L3,4Z") for exact-match comparison in tests.
//   - [Outline] keeps the events as typed [PathEvent] values so they can be
//     measured, transformed and replayed into another [Funcs].
//
// [Parse] reads the recorder's grammar back into events.
//
// # Grammar
//
//	MoveTo   M<x>,<y>
//	LineTo   L<x>,<y>
//	QuadTo   Q<c1x>,<c1y> <x>,<y>
//	CubicTo  C<c1x>,<c1y> <c2x>,<c2y> <x>,<y>
//	Close    Z
//
// Numbers use the shortest decimal form that round-trips a float32.
// Consecutive commands are not separated.
//
// # Thread Safety
//
// Recorder and Outline are NOT safe for concurrent use. Each glyph session
// owns its own instance.
package draw
