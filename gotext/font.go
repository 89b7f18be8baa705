package gotext

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// Font drives the draw and paint contracts from a go-text/typesetting font.
//
// Font is safe for concurrent use. The parsed *font.Font is shared and
// every call works on its own font.Face, since faces carry mutable caches.
type Font struct {
	font *font.Font
	opts options

	// shapers pools HarfbuzzShaper instances, which are not concurrent-safe.
	shapers sync.Pool
}

var (
	_ draw.Drawer   = (*Font)(nil)
	_ paint.Painter = (*Font)(nil)
)

// Parse parses TrueType or OpenType font data.
func Parse(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}
	f := &Font{font: face.Font, opts: o}
	f.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	return f, nil
}

// Load reads and parses the font file at path.
func Load(path string, opts ...Option) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return Parse(data, opts...)
}

// Upem returns the font's units per em.
func (f *Font) Upem() uint16 { return f.font.Upem() }

// NominalGlyph maps r through the font's cmap.
func (f *Font) NominalGlyph(r rune) (draw.GlyphID, bool) {
	gid, ok := f.font.NominalGlyph(r)
	return draw.GlyphID(gid), ok
}

func (f *Font) face() *font.Face { return font.NewFace(f.font) }

// DrawGlyph emits the outline of gid in font units, y up. Every contour
// is closed, including the last one. Bitmap and SVG glyphs use their
// fallback outline when the font provides one.
func (f *Font) DrawGlyph(gid draw.GlyphID, fn draw.Funcs) error {
	face := f.face()
	data := face.GlyphData(font.GID(gid))
	if data == nil {
		return &GlyphError{Glyph: gid, Err: ErrNoGlyphData}
	}
	outline, ok := outlineOf(face, gid, data)
	if !ok {
		return &GlyphError{Glyph: gid, Err: ErrNoOutline}
	}
	emitSegments(outline.Segments, fn)
	return nil
}

func outlineOf(face *font.Face, gid draw.GlyphID, data font.GlyphData) (font.GlyphOutline, bool) {
	switch d := data.(type) {
	case font.GlyphOutline:
		return d, true
	case font.GlyphColor:
		// COLR base glyphs usually keep a monochrome outline as well.
		return face.GlyphDataOutline(uint16(gid))
	case font.GlyphSVG:
		return d.Outline, true
	case font.GlyphBitmap:
		if d.Outline != nil {
			return *d.Outline, true
		}
	}
	return font.GlyphOutline{}, false
}

func emitSegments(segs []ot.Segment, fn draw.Funcs) {
	open := false
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				fn.ClosePath()
			}
			fn.MoveTo(a[0].X, a[0].Y)
			open = true
		case ot.SegmentOpLineTo:
			fn.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			fn.QuadraticTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			fn.CubicTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	if open {
		fn.ClosePath()
	}
}

// PaintGlyph runs one paint session for gid.
//
// COLR glyphs replay their paint graph with colours from the CPAL palette
// opts.Palette, after asking the consumer for a CustomPaletteColor
// override of each entry. PNG bitmap glyphs are offered as an image covering the glyph extents
// and SVG documents are offered as-is. When the consumer reports the image
// unhandled, and for every outline glyph, the glyph paints as its outline
// clip filled with the foreground colour.
func (f *Font) PaintGlyph(gid draw.GlyphID, fn paint.Funcs, opts paint.PaintOptions) error {
	if root, ok := f.colrPaint(gid); ok {
		newColrPainter(f.font.COLR, f.palette(opts.Palette), fn, opts.Foreground, f.opts.log()).
			paintBase(uint16(gid), root)
		return nil
	}
	face := f.face()
	data := face.GlyphData(font.GID(gid))
	switch d := data.(type) {
	case nil:
		return &GlyphError{Glyph: gid, Err: ErrNoGlyphData}
	case font.GlyphBitmap:
		if d.Format != font.PNG {
			f.opts.log().Debug("gotext: bitmap format not offered", "glyph", gid, "format", int(d.Format))
			break
		}
		ext := extentsOf(face, gid)
		if fn.Image(d.Data, uint32(d.Width), uint32(d.Height), paint.FormatPNG, 0, ext) {
			return nil
		}
	case font.GlyphSVG:
		if fn.Image(d.Source, 0, 0, paint.FormatSVG, 0, extentsOf(face, gid)) {
			return nil
		}
	}
	f.opts.log().Debug("gotext: painting outline", "glyph", gid)
	paint.PaintOutline(fn, gid, opts.Foreground)
	return nil
}

func (f *Font) colrPaint(gid draw.GlyphID) (tables.PaintTable, bool) {
	if f.font.COLR == nil || gid > math.MaxUint16 {
		return nil, false
	}
	return f.font.COLR.Search(uint16(gid))
}

// palette returns CPAL palette i, or the default palette when i is out
// of range.
func (f *Font) palette(i int) []tables.ColorRecord {
	cpal := f.font.CPAL
	if len(cpal) == 0 {
		return nil
	}
	if i < 0 || i >= len(cpal) {
		f.opts.log().Debug("gotext: palette out of range, using 0", "palette", i, "palettes", len(cpal))
		i = 0
	}
	return cpal[i]
}

func extentsOf(face *font.Face, gid draw.GlyphID) paint.Extents {
	e, ok := face.GlyphExtents(font.GID(gid))
	if !ok {
		return paint.Extents{}
	}
	return paint.Extents{
		XBearing: round(e.XBearing),
		YBearing: round(e.YBearing),
		Width:    round(e.Width),
		Height:   round(e.Height),
	}
}

func round(v float32) int32 { return int32(math.Round(float64(v))) }
