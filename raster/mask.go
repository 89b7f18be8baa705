package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	gdraw "github.com/gogpu/glyphtrace/draw"
)

// pathRasterizer adapts a vector.Rasterizer to the outline callbacks.
// Coordinates arrive in pixel space.
type pathRasterizer struct {
	z *vector.Rasterizer
}

func (p pathRasterizer) MoveTo(x, y float32) { p.z.MoveTo(x, y) }

func (p pathRasterizer) LineTo(x, y float32) { p.z.LineTo(x, y) }

func (p pathRasterizer) QuadraticTo(cx, cy, x, y float32) { p.z.QuadTo(cx, cy, x, y) }

func (p pathRasterizer) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.z.CubeTo(c1x, c1y, c2x, c2y, x, y)
}

func (p pathRasterizer) ClosePath() { p.z.ClosePath() }

// coverage rasterizes whatever fn draws into a new coverage mask of size w×h.
func coverage(w, h int, fn func(f gdraw.Funcs) error) (*image.Alpha, error) {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	if err := fn(pathRasterizer{z}); err != nil {
		return nil, err
	}
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m, nil
}

// intersect multiplies m by parent in place. A nil parent leaves m as is.
func intersect(m, parent *image.Alpha) *image.Alpha {
	if parent == nil {
		return m
	}
	for i, v := range m.Pix {
		m.Pix[i] = uint8((uint16(v)*uint16(parent.Pix[i]) + 127) / 255)
	}
	return m
}
