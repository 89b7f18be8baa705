// Package glyphtrace records how a font engine draws and paints glyphs.
//
// # Overview
//
// A font engine hands glyph geometry to its caller through callbacks: an
// outline is a stream of move/line/curve/close calls, and a colour glyph
// is a nested session of transforms, clips, groups and fills. glyphtrace
// receives those callbacks and turns each session into a compact string,
// so two engines (or two versions of one) can be compared by diffing text.
//
// # Packages
//
//   - draw: outline callbacks, the outline recorder and its grammar
//   - paint: colour-glyph callbacks and the indented paint recorder
//   - raster: a paint consumer that rasterizes a session into an image
//   - gotext: drives both contracts from a go-text/typesetting face
//
// # Quick Start
//
//	f, err := gotext.Parse(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	gid, _ := f.NominalGlyph('a')
//	trace, err := glyphtrace.DrawTrace(f, gid)
//	// trace == "M...L...Q...Z"
//
// # Batches
//
// Recorders are single-session and not safe for concurrent use.
// [TraceGlyphs] runs one session per glyph across a bounded set of
// goroutines, each with its own recorders, and returns results in input
// order.
//
// # Logging
//
// The library is silent by default. [SetLogger] installs a *slog.Logger
// shared by all sub-packages.
package glyphtrace
