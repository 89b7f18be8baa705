package gotext

import (
	"log/slog"
	"math"

	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// foregroundIndex is the CPAL index that stands for the text colour.
const foregroundIndex = 0xFFFF

// maxPaintNesting bounds the depth of a COLR paint graph walk.
const maxPaintNesting = 64

// colrPainter walks the COLR paint graph of one glyph and replays it
// through a paint.Funcs.
type colrPainter struct {
	fn      paint.Funcs
	palette []tables.ColorRecord
	fg      paint.Color
	log     *slog.Logger

	base    func(gid tables.GlyphID) (tables.PaintTable, bool)
	layers  func(p tables.PaintColrLayers) ([]tables.PaintTable, error)
	clipBox func(gid tables.GlyphID) (tables.ClipBox, bool)

	depth   int
	visited map[tables.GlyphID]bool
}

func newColrPainter(colr *tables.COLR1, palette []tables.ColorRecord, fn paint.Funcs, fg paint.Color, log *slog.Logger) *colrPainter {
	return &colrPainter{
		fn:      fn,
		palette: palette,
		fg:      fg,
		log:     log,
		base:    colr.Search,
		layers:  colr.LayerList.Resolve,
		clipBox: colr.ClipList.Search,
	}
}

// paintBase paints the base glyph gid inside its clip box, if any.
func (p *colrPainter) paintBase(gid tables.GlyphID, root tables.PaintTable) {
	if p.visited == nil {
		p.visited = make(map[tables.GlyphID]bool)
	}
	if p.visited[gid] {
		p.log.Debug("gotext: COLR glyph cycle", "glyph", gid)
		return
	}
	p.visited[gid] = true
	defer delete(p.visited, gid)

	box, clipped := p.clipBox(gid)
	if clipped {
		xmin, ymin, xmax, ymax := clipBounds(box)
		p.fn.PushClipRectangle(xmin, ymin, xmax, ymax)
	}
	p.paint(root)
	if clipped {
		p.fn.PopClip()
	}
}

// color resolves a CPAL entry, letting the consumer override it first.
func (p *colrPainter) color(index uint16, alpha float32) (paint.Color, bool) {
	c := p.fg
	fg := index == foregroundIndex
	if !fg {
		if o, ok := p.fn.CustomPaletteColor(uint32(index)); ok {
			c = o
		} else if int(index) < len(p.palette) {
			r := p.palette[index]
			c = paint.Color{R: r.Red, G: r.Green, B: r.Blue, A: r.Alpha}
		} else {
			p.log.Debug("gotext: palette index out of range", "index", index, "entries", len(p.palette))
		}
	}
	a := float32(c.A) * min(max(alpha, 0), 1)
	return c.WithAlpha(uint8(a + 0.5)), fg
}

func (p *colrPainter) colorLine(extend tables.Extend, n int, stop func(i int) (tables.Fixed214, uint16, tables.Fixed214)) paint.StaticColorLine {
	line := paint.StaticColorLine{
		Mode:       paint.ExtendMode(extend),
		ColorStops: make([]paint.ColorStop, n),
	}
	for i := range n {
		off, idx, alpha := stop(i)
		c, fg := p.color(idx, f214(alpha))
		line.ColorStops[i] = paint.ColorStop{Offset: f214(off), Color: c, IsForeground: fg}
	}
	return line
}

func (p *colrPainter) staticLine(cl tables.ColorLine) paint.StaticColorLine {
	return p.colorLine(cl.Extend, len(cl.ColorStops), func(i int) (tables.Fixed214, uint16, tables.Fixed214) {
		s := cl.ColorStops[i]
		return s.StopOffset, s.PaletteIndex, s.Alpha
	})
}

func (p *colrPainter) varLine(cl tables.VarColorLine) paint.StaticColorLine {
	return p.colorLine(cl.Extend, len(cl.ColorStops), func(i int) (tables.Fixed214, uint16, tables.Fixed214) {
		s := cl.ColorStops[i]
		return s.StopOffset, s.PaletteIndex, s.Alpha
	})
}

// paint replays one paint table. Variable tables paint their default
// instance.
func (p *colrPainter) paint(t tables.PaintTable) {
	if t == nil {
		return
	}
	if p.depth >= maxPaintNesting {
		p.log.Debug("gotext: COLR paint graph too deep")
		return
	}
	p.depth++
	defer func() { p.depth-- }()

	switch t := t.(type) {
	case tables.PaintColrLayersResolved:
		// COLRv0: each layer is its glyph filled with one palette colour.
		for _, l := range t {
			c, fg := p.color(l.PaletteIndex, 1)
			p.fn.PushClipGlyph(draw.GlyphID(l.GlyphID))
			p.fn.Color(fg, c)
			p.fn.PopClip()
		}
	case tables.PaintColrLayers:
		layers, err := p.layers(t)
		if err != nil {
			p.log.Debug("gotext: COLR layers", "err", err)
			return
		}
		for _, l := range layers {
			p.fn.PushGroup()
			p.paint(l)
			p.fn.PopGroup(paint.CompositeSrcOver)
		}
	case tables.PaintSolid:
		c, fg := p.color(t.PaletteIndex, f214(t.Alpha))
		p.fn.Color(fg, c)
	case tables.PaintVarSolid:
		c, fg := p.color(t.PaletteIndex, f214(t.Alpha))
		p.fn.Color(fg, c)
	case tables.PaintLinearGradient:
		p.fn.LinearGradient(p.staticLine(t.ColorLine),
			float32(t.X0), float32(t.Y0), float32(t.X1), float32(t.Y1), float32(t.X2), float32(t.Y2))
	case tables.PaintVarLinearGradient:
		p.fn.LinearGradient(p.varLine(t.ColorLine),
			float32(t.X0), float32(t.Y0), float32(t.X1), float32(t.Y1), float32(t.X2), float32(t.Y2))
	case tables.PaintRadialGradient:
		p.fn.RadialGradient(p.staticLine(t.ColorLine),
			float32(t.X0), float32(t.Y0), float32(t.Radius0), float32(t.X1), float32(t.Y1), float32(t.Radius1))
	case tables.PaintVarRadialGradient:
		p.fn.RadialGradient(p.varLine(t.ColorLine),
			float32(t.X0), float32(t.Y0), float32(t.Radius0), float32(t.X1), float32(t.Y1), float32(t.Radius1))
	case tables.PaintSweepGradient:
		p.fn.SweepGradient(p.staticLine(t.ColorLine), float32(t.CenterX), float32(t.CenterY),
			sweepAngle(t.StartAngle), sweepAngle(t.EndAngle))
	case tables.PaintVarSweepGradient:
		p.fn.SweepGradient(p.varLine(t.ColorLine), float32(t.CenterX), float32(t.CenterY),
			sweepAngle(t.StartAngle), sweepAngle(t.EndAngle))
	case tables.PaintGlyph:
		p.fn.PushClipGlyph(draw.GlyphID(t.GlyphID))
		p.paint(t.Paint)
		p.fn.PopClip()
	case tables.PaintColrGlyph:
		if p.fn.ColorGlyph(draw.GlyphID(t.GlyphID)) {
			return
		}
		if root, ok := p.base(t.GlyphID); ok {
			p.paintBase(t.GlyphID, root)
		}
	case tables.PaintTransform:
		a := t.Transform
		p.transformed(t.Paint, draw.Matrix{XX: a.Xx, YX: a.Yx, XY: a.Xy, YY: a.Yy, DX: a.Dx, DY: a.Dy})
	case tables.PaintVarTransform:
		a := t.Transform
		p.transformed(t.Paint, draw.Matrix{XX: a.Xx, YX: a.Yx, XY: a.Xy, YY: a.Yy, DX: a.Dx, DY: a.Dy})
	case tables.PaintTranslate:
		p.transformed(t.Paint, draw.Translate(float32(t.Dx), float32(t.Dy)))
	case tables.PaintVarTranslate:
		p.transformed(t.Paint, draw.Translate(float32(t.Dx), float32(t.Dy)))
	case tables.PaintScale:
		p.transformed(t.Paint, draw.Scale(f214(t.ScaleX), f214(t.ScaleY)))
	case tables.PaintVarScale:
		p.transformed(t.Paint, draw.Scale(f214(t.ScaleX), f214(t.ScaleY)))
	case tables.PaintScaleAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, draw.Scale(f214(t.ScaleX), f214(t.ScaleY)))
	case tables.PaintVarScaleAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, draw.Scale(f214(t.ScaleX), f214(t.ScaleY)))
	case tables.PaintScaleUniform:
		p.transformed(t.Paint, draw.Scale(f214(t.Scale), f214(t.Scale)))
	case tables.PaintVarScaleUniform:
		p.transformed(t.Paint, draw.Scale(f214(t.Scale), f214(t.Scale)))
	case tables.PaintScaleUniformAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, draw.Scale(f214(t.Scale), f214(t.Scale)))
	case tables.PaintVarScaleUniformAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, draw.Scale(f214(t.Scale), f214(t.Scale)))
	case tables.PaintRotate:
		p.transformed(t.Paint, rotation(t.Angle))
	case tables.PaintVarRotate:
		p.transformed(t.Paint, rotation(t.Angle))
	case tables.PaintRotateAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, rotation(t.Angle))
	case tables.PaintVarRotateAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, rotation(t.Angle))
	case tables.PaintSkew:
		p.transformed(t.Paint, skew(t.XSkewAngle, t.YSkewAngle))
	case tables.PaintVarSkew:
		p.transformed(t.Paint, skew(t.XSkewAngle, t.YSkewAngle))
	case tables.PaintSkewAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, skew(t.XSkewAngle, t.YSkewAngle))
	case tables.PaintVarSkewAroundCenter:
		p.around(t.Paint, t.CenterX, t.CenterY, skew(t.XSkewAngle, t.YSkewAngle))
	case tables.PaintComposite:
		p.paint(t.BackdropPaint)
		p.fn.PushGroup()
		p.paint(t.SourcePaint)
		p.fn.PopGroup(paint.CompositeMode(t.CompositeMode))
	default:
		p.log.Debug("gotext: unknown COLR paint", "type", t)
	}
}

// transformed paints child under m. Identity transforms are not pushed.
func (p *colrPainter) transformed(child tables.PaintTable, m draw.Matrix) {
	pushed := p.push(m)
	p.paint(child)
	if pushed {
		p.fn.PopTransform()
	}
}

// around paints child under m applied about the centre (cx, cy).
func (p *colrPainter) around(child tables.PaintTable, cx, cy int16, m draw.Matrix) {
	x, y := float32(cx), float32(cy)
	p1 := p.push(draw.Translate(x, y))
	p2 := p.push(m)
	p3 := p.push(draw.Translate(-x, -y))
	p.paint(child)
	for _, pushed := range []bool{p3, p2, p1} {
		if pushed {
			p.fn.PopTransform()
		}
	}
}

func (p *colrPainter) push(m draw.Matrix) bool {
	if m.IsIdentity() {
		return false
	}
	p.fn.PushTransform(m.XX, m.YX, m.XY, m.YY, m.DX, m.DY)
	return true
}

func f214(v tables.Fixed214) float32 { return float32(v) / (1 << 14) }

// sweepAngle maps a stored COLR angle to radians counter-clockwise
// from the positive x axis.
func sweepAngle(v tables.Fixed214) float32 {
	return (f214(v) + 1) * math.Pi
}

func rotation(a tables.Fixed214) draw.Matrix {
	if a == 0 {
		return draw.Identity()
	}
	s, c := math.Sincos(float64(f214(a)) * math.Pi)
	return draw.Matrix{XX: float32(c), YX: float32(s), XY: float32(-s), YY: float32(c)}
}

func skew(x, y tables.Fixed214) draw.Matrix {
	if x == 0 && y == 0 {
		return draw.Identity()
	}
	return draw.Matrix{
		XX: 1,
		YX: float32(math.Tan(float64(f214(y)) * math.Pi)),
		XY: float32(math.Tan(float64(-f214(x)) * math.Pi)),
		YY: 1,
	}
}

func clipBounds(box tables.ClipBox) (xmin, ymin, xmax, ymax float32) {
	switch b := box.(type) {
	case tables.ClipBoxFormat1:
		return float32(b.XMin), float32(b.YMin), float32(b.XMax), float32(b.YMax)
	case tables.ClipBoxFormat2:
		return float32(b.XMin), float32(b.YMin), float32(b.XMax), float32(b.YMax)
	}
	return 0, 0, 0, 0
}
