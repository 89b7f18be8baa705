package gotext

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/paint"
)

const one = 1 << 14 // 1.0 in 2.14

var testForeground = paint.Color{R: 10, G: 20, B: 30, A: 255}

// overrides answers CustomPaletteColor from a map and records everything
// else.
type overrides struct {
	*paint.Recorder
	palette map[uint32]paint.Color
}

func (o overrides) CustomPaletteColor(index uint32) (paint.Color, bool) {
	c, ok := o.palette[index]
	return c, ok
}

func testPainter(fn paint.Funcs) *colrPainter {
	return &colrPainter{
		fn: fn,
		palette: []tables.ColorRecord{
			{Red: 255, Alpha: 255},
			{Green: 128, Blue: 255, Alpha: 128},
		},
		fg:      testForeground,
		log:     glyphtrace.Logger(),
		base:    func(tables.GlyphID) (tables.PaintTable, bool) { return nil, false },
		layers:  func(tables.PaintColrLayers) ([]tables.PaintTable, error) { return nil, nil },
		clipBox: func(tables.GlyphID) (tables.ClipBox, bool) { return nil, false },
	}
}

func TestColrV0Layers(t *testing.T) {
	rec := paint.NewRecorder()
	p := testPainter(rec)
	p.paintBase(1, tables.PaintColrLayersResolved{
		{GlyphID: 5, PaletteIndex: 0},
		{GlyphID: 6, PaletteIndex: foregroundIndex},
	})

	want := "start clip glyph 5\n" +
		"  solid 255 0 0 255\n" +
		"end clip\n" +
		"start clip glyph 6\n" +
		"  solid 10 20 30 255\n" +
		"end clip\n"
	if got := rec.Finish(); got != want {
		t.Errorf("trace =\n%s\nwant\n%s", got, want)
	}
}

func TestColrV1LayersGradientAndClipBox(t *testing.T) {
	rec := paint.NewRecorder()
	p := testPainter(rec)
	p.clipBox = func(gid tables.GlyphID) (tables.ClipBox, bool) {
		return tables.ClipBoxFormat1{XMin: 0, YMin: -10, XMax: 100, YMax: 90}, gid == 1
	}
	p.layers = func(l tables.PaintColrLayers) ([]tables.PaintTable, error) {
		if l.NumLayers != 2 {
			t.Fatalf("NumLayers = %d, want 2", l.NumLayers)
		}
		return []tables.PaintTable{
			tables.PaintGlyph{GlyphID: 7, Paint: tables.PaintSolid{PaletteIndex: 1, Alpha: one}},
			tables.PaintTranslate{Dx: 10, Paint: tables.PaintGlyph{GlyphID: 8, Paint: tables.PaintLinearGradient{
				ColorLine: tables.ColorLine{Extend: tables.ExtendRepeat, ColorStops: []tables.ColorStop{
					{StopOffset: 0, PaletteIndex: 0, Alpha: one},
					{StopOffset: one, PaletteIndex: foregroundIndex, Alpha: one / 2},
				}},
				X1: 100, Y2: 100,
			}}},
		}, nil
	}
	p.paintBase(1, tables.PaintColrLayers{NumLayers: 2})

	want := "start clip rectangle 0 -10 100 90\n" +
		"  push group\n" +
		"    start clip glyph 7\n" +
		"      solid 0 128 255 128\n" +
		"    end clip\n" +
		"  pop group mode 3\n" +
		"  push group\n" +
		"    start transform 1 0 0 1 10 0\n" +
		"      start clip glyph 8\n" +
		"        linear gradient\n" +
		"          p0 0 0\n" +
		"          p1 100 0\n" +
		"          p2 0 100\n" +
		"          colors 1\n" +
		"            0 255 0 0 255\n" +
		"            1 10 20 30 128\n" +
		"      end clip\n" +
		"    end transform\n" +
		"  pop group mode 3\n" +
		"end clip\n"
	if got := rec.Finish(); got != want {
		t.Errorf("trace =\n%s\nwant\n%s", got, want)
	}
}

func TestColrPaletteResolution(t *testing.T) {
	tests := []struct {
		name  string
		index uint16
		alpha int16
		want  string
	}{
		{"palette", 0, one, "solid 255 0 0 255\n"},
		{"alpha scaled", 0, one / 4, "solid 255 0 0 64\n"},
		{"override", 1, one, "solid 1 2 3 255\n"},
		{"foreground", foregroundIndex, one, "solid 10 20 30 255\n"},
		{"out of range uses foreground", 9, one, "solid 10 20 30 255\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := paint.NewRecorder()
			fn := overrides{Recorder: rec, palette: map[uint32]paint.Color{1: {R: 1, G: 2, B: 3, A: 255}}}
			testPainter(fn).paint(tables.PaintSolid{PaletteIndex: tt.index, Alpha: tables.Fixed214(tt.alpha)})
			if got := rec.Finish(); got != tt.want {
				t.Errorf("trace = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColrForegroundFlag(t *testing.T) {
	var col paint.Collector
	p := testPainter(&col)
	p.paint(tables.PaintSolid{PaletteIndex: foregroundIndex, Alpha: one})
	p.paint(tables.PaintSolid{PaletteIndex: 0, Alpha: one})

	var solids []paint.SolidColor
	for _, ev := range col.Events {
		if s, ok := ev.(paint.SolidColor); ok {
			solids = append(solids, s)
		}
	}
	if len(solids) != 2 || !solids[0].UseForeground || solids[1].UseForeground {
		t.Errorf("solid events = %+v, want foreground then palette", solids)
	}
	if len(col.Events) != 3 {
		t.Errorf("len(Events) = %d, want 3 (one palette query)", len(col.Events))
	}
}

func TestColrComposite(t *testing.T) {
	rec := paint.NewRecorder()
	testPainter(rec).paint(tables.PaintComposite{
		BackdropPaint: tables.PaintSolid{PaletteIndex: 0, Alpha: one},
		SourcePaint:   tables.PaintSolid{PaletteIndex: foregroundIndex, Alpha: one},
		CompositeMode: tables.CompositeMultiply,
	})
	want := "solid 255 0 0 255\n" +
		"push group\n" +
		"  solid 10 20 30 255\n" +
		"pop group mode 23\n"
	if got := rec.Finish(); got != want {
		t.Errorf("trace =\n%s\nwant\n%s", got, want)
	}
}

func TestColrTransforms(t *testing.T) {
	solid := tables.PaintSolid{PaletteIndex: 0, Alpha: one}
	tests := []struct {
		name  string
		table tables.PaintTable
		want  string
	}{
		{
			"identity scale is not pushed",
			tables.PaintScale{ScaleX: one, ScaleY: one, Paint: solid},
			"solid 255 0 0 255\n",
		},
		{
			"uniform scale",
			tables.PaintScaleUniform{Scale: one / 2, Paint: solid},
			"start transform 0.5 0 0 0.5 0 0\n" +
				"  solid 255 0 0 255\n" +
				"end transform\n",
		},
		{
			"skew around centre",
			tables.PaintSkewAroundCenter{XSkewAngle: one / 4, CenterX: 50, CenterY: 20, Paint: solid},
			"start transform 1 0 0 1 50 20\n" +
				"  start transform 1 0 -1 1 0 0\n" +
				"    start transform 1 0 0 1 -50 -20\n" +
				"      solid 255 0 0 255\n" +
				"    end transform\n" +
				"  end transform\n" +
				"end transform\n",
		},
		{
			"affine",
			tables.PaintTransform{Transform: tables.Affine2x3{Xx: 2, Yy: 2, Dx: 3}, Paint: solid},
			"start transform 2 0 0 2 3 0\n" +
				"  solid 255 0 0 255\n" +
				"end transform\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := paint.NewRecorder()
			testPainter(rec).paint(tt.table)
			if got := rec.Finish(); got != tt.want {
				t.Errorf("trace =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestColrSweepAngles(t *testing.T) {
	rec := paint.NewRecorder()
	testPainter(rec).paint(tables.PaintSweepGradient{
		ColorLine: tables.ColorLine{ColorStops: []tables.ColorStop{{PaletteIndex: 0, Alpha: one}}},
		CenterX:   5,
		CenterY:   6,
		EndAngle:  one,
	})
	want := "sweep gradient\n" +
		"  center 5 6\n" +
		"  angles 3.14 6.28\n" +
		"  colors 0\n" +
		"    0 255 0 0 255\n"
	if got := rec.Finish(); got != want {
		t.Errorf("trace =\n%s\nwant\n%s", got, want)
	}
}

func TestColrColorGlyph(t *testing.T) {
	// The consumer paints the glyph itself.
	col := paint.Collector{HandleColorGlyph: true}
	p := testPainter(&col)
	p.base = func(tables.GlyphID) (tables.PaintTable, bool) {
		t.Fatal("base glyph looked up after ColorGlyph succeeded")
		return nil, false
	}
	p.paint(tables.PaintColrGlyph{GlyphID: 2})
	if len(col.Events) != 1 || col.Events[0] != (paint.ColorGlyph{Glyph: 2}) {
		t.Errorf("Events = %+v, want one ColorGlyph", col.Events)
	}

	// A self-referencing glyph is painted once.
	rec := paint.NewRecorder()
	p = testPainter(rec)
	p.base = func(gid tables.GlyphID) (tables.PaintTable, bool) {
		return tables.PaintColrGlyph{GlyphID: gid}, true
	}
	p.paintBase(2, tables.PaintColrGlyph{GlyphID: 2})
	if got, want := rec.Finish(), "paint color glyph 2; acting as failed\n"; got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
}

func TestColrNestingLimit(t *testing.T) {
	var root tables.PaintTable = tables.PaintSolid{Alpha: one}
	for i := 0; i < 2*maxPaintNesting; i++ {
		root = tables.PaintGlyph{GlyphID: 3, Paint: root}
	}
	rec := paint.NewRecorder()
	testPainter(rec).paint(root)
	if rec.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", rec.Depth())
	}
	var col paint.Collector
	testPainter(&col).paint(root)
	if got := len(col.Events); got != 2*maxPaintNesting {
		t.Errorf("len(Events) = %d, want %d", got, 2*maxPaintNesting)
	}
}

func TestFontPalette(t *testing.T) {
	pal0 := []tables.ColorRecord{{Red: 1}}
	pal1 := []tables.ColorRecord{{Red: 2}}
	f := &Font{font: &font.Font{CPAL: font.CPAL{pal0, pal1}}}

	tests := []struct {
		index int
		want  uint8
	}{
		{0, 1},
		{1, 2},
		{5, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := f.palette(tt.index); len(got) != 1 || got[0].Red != tt.want {
			t.Errorf("palette(%d) = %v, want red %d", tt.index, got, tt.want)
		}
	}

	empty := &Font{font: &font.Font{}}
	if got := empty.palette(0); got != nil {
		t.Errorf("palette(0) without CPAL = %v, want nil", got)
	}
	if _, ok := empty.colrPaint(1); ok {
		t.Error("colrPaint() without COLR = true")
	}
}
