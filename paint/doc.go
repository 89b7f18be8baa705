// Package paint records colour-glyph painting sessions.
//
// A colour glyph (COLRv1, bitmap or SVG) is painted by a font engine as a
// nested sequence of callbacks: transforms, clips and groups are pushed and
// popped around leaf fills (solid colours, gradients, images). The callback
// contract is [Funcs]; the same events exist as typed values implementing
// [PaintEvent], and [Apply] is the single dispatch between the two.
//
// [Recorder] turns one session into an indented trace, one line per event,
// two spaces per nesting level:
//
//	start clip glyph 3
//	  linear gradient
//	    p0 0 0
//	    p1 100 0
//	    p2 0 100
//	    colors 0
//	      0 255 0 0 255
//	      1 0 0 255 255
//	end clip
//
// Push events are written at the current depth and then increase it; pop
// events decrease it and are written at the new depth. A pop without a
// matching push is a defect of the driving engine and panics, as does
// finishing a session with open pushes.
//
// # Protocol signals
//
// Three callbacks answer the engine. The Recorder is a test double with
// fixed answers: ColorGlyph reports false (the engine must fall back to
// painting the outline), Image reports true (no fallback), and
// CustomPaletteColor reports no override.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use.
package paint
