package gotext

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphtrace/draw"
)

// SFNT draws outlines with golang.org/x/image/font/sfnt. It is a second,
// independent outline source: comparing its traces with those of Font
// checks one engine against the other.
//
// SFNT is safe for concurrent use.
type SFNT struct {
	font *sfnt.Font
	ppem fixed.Int26_6
}

var _ draw.Drawer = (*SFNT)(nil)

// ParseSFNT parses TrueType or OpenType font data.
func ParseSFNT(data []byte) (*SFNT, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}
	// Loading at ppem == upem yields font units.
	return &SFNT{font: f, ppem: fixed.Int26_6(f.UnitsPerEm()) << 6}, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (s *SFNT) NumGlyphs() int { return s.font.NumGlyphs() }

// NominalGlyph maps r through the font's cmap.
func (s *SFNT) NominalGlyph(r rune) (draw.GlyphID, bool) {
	var buf sfnt.Buffer
	gid, err := s.font.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return draw.GlyphID(gid), true
}

// DrawGlyph emits the outline of gid in font units, y up, closing every
// contour.
func (s *SFNT) DrawGlyph(gid draw.GlyphID, fn draw.Funcs) error {
	var buf sfnt.Buffer
	segs, err := s.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), s.ppem, nil)
	if err != nil {
		return &GlyphError{Glyph: gid, Err: err}
	}
	open := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				fn.ClosePath()
			}
			fn.MoveTo(pt(a[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			fn.LineTo(pt(a[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(a[0])
			x, y := pt(a[1])
			fn.QuadraticTo(x1, y1, x, y)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(a[0])
			x2, y2 := pt(a[1])
			x, y := pt(a[2])
			fn.CubicTo(x1, y1, x2, y2, x, y)
		}
	}
	if open {
		fn.ClosePath()
	}
	return nil
}

// pt converts a y-down 26.6 point to font units, y up.
func pt(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64, -float32(p.Y) / 64
}
