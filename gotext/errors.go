package gotext

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphtrace/draw"
)

// Sentinel errors for gotext package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("gotext: empty font data")

	// ErrNoGlyphData is returned when the font has no data for a glyph id.
	ErrNoGlyphData = errors.New("gotext: no glyph data")

	// ErrNoOutline is returned by DrawGlyph for glyphs without an outline,
	// such as bitmap glyphs without a fallback outline.
	ErrNoOutline = errors.New("gotext: glyph has no outline")

	// ErrInvalidFeature is returned by ParseFeatures.
	ErrInvalidFeature = errors.New("gotext: invalid feature")
)

// GlyphError reports a failure for one glyph.
type GlyphError struct {
	Glyph draw.GlyphID
	Err   error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("gotext: glyph %d: %v", e.Glyph, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
