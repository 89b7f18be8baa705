package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// maxNesting bounds ColorGlyph recursion.
const maxNesting = 16

// Canvas rasterizes paint sessions into an RGBA image.
//
// Glyph-space coordinates go through the base transform (see
// WithTransform) and every pushed transform. Clips are coverage masks
// intersected down the stack; groups are offscreen layers composited on
// PopGroup.
type Canvas struct {
	opts options
	w, h int

	layers     []*image.RGBA
	transforms []draw.Matrix
	clips      []*image.Alpha // nil entry means unclipped
	nesting    int
}

var _ paint.Funcs = (*Canvas)(nil)

// NewCanvas returns a transparent w×h canvas.
func NewCanvas(w, h int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		opts:       o,
		w:          w,
		h:          h,
		layers:     []*image.RGBA{image.NewRGBA(image.Rect(0, 0, w, h))},
		transforms: []draw.Matrix{o.transform},
		clips:      []*image.Alpha{nil},
	}
}

// RGBA returns the bottom layer. It is only complete once every group is popped.
func (c *Canvas) RGBA() *image.RGBA { return c.layers[0] }

// Depth returns the number of open pushes of any kind.
func (c *Canvas) Depth() int {
	return len(c.layers) - 1 + len(c.transforms) - 1 + len(c.clips) - 1
}

func (c *Canvas) ctm() draw.Matrix        { return c.transforms[len(c.transforms)-1] }
func (c *Canvas) clip() *image.Alpha      { return c.clips[len(c.clips)-1] }
func (c *Canvas) layer() *image.RGBA      { return c.layers[len(c.layers)-1] }
func (c *Canvas) bounds() image.Rectangle { return image.Rect(0, 0, c.w, c.h) }

func unbalanced(what string) {
	panic(fmt.Errorf("%w: pop %s with nothing pushed", paint.ErrUnbalanced, what))
}

func (c *Canvas) PushTransform(xx, yx, xy, yy, dx, dy float32) {
	m := draw.Matrix{XX: xx, YX: yx, XY: xy, YY: yy, DX: dx, DY: dy}
	c.transforms = append(c.transforms, c.ctm().Multiply(m))
}

func (c *Canvas) PopTransform() {
	if len(c.transforms) == 1 {
		unbalanced("transform")
	}
	c.transforms = c.transforms[:len(c.transforms)-1]
}

// ColorGlyph paints gid recursively when the glyph source can paint.
func (c *Canvas) ColorGlyph(gid draw.GlyphID) bool {
	p, ok := c.opts.glyphs.(paint.Painter)
	if !ok || c.nesting >= maxNesting {
		c.opts.log().Debug("raster: color glyph not painted", "glyph", gid, "nesting", c.nesting)
		return false
	}
	c.nesting++
	defer func() { c.nesting-- }()
	if err := p.PaintGlyph(gid, c, paint.PaintOptions{Foreground: c.opts.foreground}); err != nil {
		c.opts.log().Debug("raster: color glyph failed", "glyph", gid, "err", err)
		return false
	}
	return true
}

func (c *Canvas) PushClipGlyph(gid draw.GlyphID) {
	if c.opts.glyphs == nil {
		c.opts.log().Warn("raster: glyph clip without glyph source", "glyph", gid)
		c.clips = append(c.clips, c.clip())
		return
	}
	ctm := c.ctm()
	m, err := coverage(c.w, c.h, func(f draw.Funcs) error {
		return c.opts.glyphs.DrawGlyph(gid, &draw.Transformer{M: ctm, Next: f})
	})
	if err != nil {
		c.opts.log().Debug("raster: glyph clip outline failed", "glyph", gid, "err", err)
		m = image.NewAlpha(c.bounds())
	}
	c.clips = append(c.clips, intersect(m, c.clip()))
}

func (c *Canvas) PushClipRectangle(xmin, ymin, xmax, ymax float32) {
	ctm := c.ctm()
	m, _ := coverage(c.w, c.h, func(f draw.Funcs) error {
		t := &draw.Transformer{M: ctm, Next: f}
		t.MoveTo(xmin, ymin)
		t.LineTo(xmax, ymin)
		t.LineTo(xmax, ymax)
		t.LineTo(xmin, ymax)
		t.ClosePath()
		return nil
	})
	c.clips = append(c.clips, intersect(m, c.clip()))
}

func (c *Canvas) PopClip() {
	if len(c.clips) == 1 {
		unbalanced("clip")
	}
	c.clips = c.clips[:len(c.clips)-1]
}

// Color fills the clip. The engine has already resolved foreground colours.
func (c *Canvas) Color(_ bool, col paint.Color) {
	c.fill(solidShader(premulOf(col)))
}

// Image draws PNG and BGRA payloads into the extents box. SVG and unknown
// formats are reported unhandled.
func (c *Canvas) Image(blob []byte, width, height uint32, format paint.ImageFormat, slant float32, ext paint.Extents) bool {
	var (
		img image.Image
		err error
	)
	switch format {
	case paint.FormatPNG:
		img, err = png.Decode(bytes.NewReader(blob))
	case paint.FormatBGRA:
		img, err = bgraImage(blob, int(width), int(height))
	default:
		c.opts.log().Warn("raster: unsupported image format", "format", format.String())
		return false
	}
	if err != nil {
		c.opts.log().Debug("raster: image decode failed", "format", format.String(), "err", err)
		return false
	}
	sb := img.Bounds()
	if sb.Empty() || ext.Width == 0 || ext.Height == 0 {
		return false
	}

	// Image pixels -> extents box -> slant -> current transform.
	toBox := draw.Translate(float32(ext.XBearing), float32(ext.YBearing)).Multiply(
		draw.Scale(float32(ext.Width)/float32(sb.Dx()), float32(ext.Height)/float32(sb.Dy())))
	toBox = toBox.Multiply(draw.Translate(-float32(sb.Min.X), -float32(sb.Min.Y)))
	shear := draw.Matrix{XX: 1, XY: slant, YY: 1}
	m := c.ctm().Multiply(shear).Multiply(toBox)

	aff := f64.Aff3{
		float64(m.XX), float64(m.XY), float64(m.DX),
		float64(m.YX), float64(m.YY), float64(m.DY),
	}
	var opts xdraw.Options
	if clip := c.clip(); clip != nil {
		opts.DstMask = clip
	}
	xdraw.BiLinear.Transform(c.layer(), aff, img, sb, xdraw.Over, &opts)
	return true
}

func (c *Canvas) LinearGradient(line paint.ColorLine, x0, y0, x1, y1, x2, y2 float32) {
	r, lo, hi := newRamp(line, c.opts.foreground)
	c.fill(linearShader(r, lo, hi, paint.Point{X: x0, Y: y0}, paint.Point{X: x1, Y: y1}, paint.Point{X: x2, Y: y2}))
}

func (c *Canvas) RadialGradient(line paint.ColorLine, x0, y0, r0, x1, y1, r1 float32) {
	r, lo, hi := newRamp(line, c.opts.foreground)
	c.fill(radialShader(r, lo, hi, paint.Point{X: x0, Y: y0}, r0, paint.Point{X: x1, Y: y1}, r1))
}

func (c *Canvas) SweepGradient(line paint.ColorLine, cx, cy, startAngle, endAngle float32) {
	r, lo, hi := newRamp(line, c.opts.foreground)
	c.fill(sweepShader(r, lo, hi, paint.Point{X: cx, Y: cy}, startAngle, endAngle))
}

func (c *Canvas) PushGroup() {
	c.layers = append(c.layers, image.NewRGBA(c.bounds()))
}

func (c *Canvas) PopGroup(mode paint.CompositeMode) {
	if len(c.layers) == 1 {
		unbalanced("group")
	}
	if !mode.Valid() {
		c.opts.log().Warn("raster: unknown composite mode, using SrcOver", "mode", int(mode))
	}
	src := c.layer()
	c.layers = c.layers[:len(c.layers)-1]
	dst := c.layer()
	clip := c.clip()
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			i := dst.PixOffset(x, y)
			d := load(dst.Pix[i : i+4])
			out := composite(mode, load(src.Pix[i:i+4]), d)
			// The group only lands inside the clip, even for unbounded modes.
			if clip != nil {
				v := clip.Pix[clip.PixOffset(x, y)]
				if v == 0 {
					continue
				}
				out = lerp(d, out, float32(v)/255)
			}
			store(dst.Pix[i:i+4], out)
		}
	}
}

// CustomPaletteColor answers from the WithPalette overrides.
func (c *Canvas) CustomPaletteColor(index uint32) (paint.Color, bool) {
	col, ok := c.opts.palette[index]
	return col, ok
}

// fill paints sh through the current clip onto the current layer,
// sampling at pixel centres.
func (c *Canvas) fill(sh shader) {
	inv, ok := c.ctm().Invert()
	if !ok {
		c.opts.log().Debug("raster: singular transform, nothing painted")
		return
	}
	dst := c.layer()
	clip := c.clip()
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cov := float32(1)
			if clip != nil {
				v := clip.Pix[clip.PixOffset(x, y)]
				if v == 0 {
					continue
				}
				cov = float32(v) / 255
			}
			gx, gy := inv.TransformPoint(float32(x)+0.5, float32(y)+0.5)
			s := sh(gx, gy).scale(cov)
			if s.a <= 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			store(dst.Pix[i:i+4], over(s, load(dst.Pix[i:i+4])))
		}
	}
}

func load(p []uint8) premul {
	return premul{
		r: float32(p[0]) / 255,
		g: float32(p[1]) / 255,
		b: float32(p[2]) / 255,
		a: float32(p[3]) / 255,
	}
}

func store(p []uint8, c premul) {
	a := min(max(c.a, 0), 1)
	p[0] = to8(min(c.r, a))
	p[1] = to8(min(c.g, a))
	p[2] = to8(min(c.b, a))
	p[3] = to8(a)
}

func to8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// bgraImage wraps premultiplied BGRA rows as an *image.RGBA.
func bgraImage(blob []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(blob) < w*h*4 {
		return nil, fmt.Errorf("raster: BGRA payload of %d bytes for %dx%d image", len(blob), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h*4; i += 4 {
		img.Pix[i+0] = blob[i+2]
		img.Pix[i+1] = blob[i+1]
		img.Pix[i+2] = blob[i+0]
		img.Pix[i+3] = blob[i+3]
	}
	return img, nil
}
