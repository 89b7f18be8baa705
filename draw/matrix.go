package draw

import "math"

// Matrix is a 2D affine transformation in the layout used by font paint
// engines:
//
//	x' = XX*x + XY*y + DX
//	y' = YX*x + YY*y + DY
//
// The field order XX, YX, XY, YY, DX, DY matches the order in which a
// paint engine passes the coefficients to a push-transform callback.
type Matrix struct {
	XX, YX float32
	XY, YY float32
	DX, DY float32
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float32) Matrix {
	return Matrix{XX: 1, YY: 1, DX: dx, DY: dy}
}

// Scale returns a scaling by (sx, sy).
func Scale(sx, sy float32) Matrix {
	return Matrix{XX: sx, YY: sy}
}

// Multiply returns m * other, the transformation that applies other first
// and m second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		DX: m.XX*other.DX + m.XY*other.DY + m.DX,
		DY: m.YX*other.DX + m.YY*other.DY + m.DY,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float32) (float32, float32) {
	return m.XX*x + m.XY*y + m.DX, m.YX*x + m.YY*y + m.DY
}

// Invert returns the inverse matrix and false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := float64(m.XX)*float64(m.YY) - float64(m.XY)*float64(m.YX)
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1 / det
	xx := float64(m.YY) * inv
	yx := -float64(m.YX) * inv
	xy := -float64(m.XY) * inv
	yy := float64(m.XX) * inv
	dx := -(xx*float64(m.DX) + xy*float64(m.DY))
	dy := -(yx*float64(m.DX) + yy*float64(m.DY))
	return Matrix{
		XX: float32(xx), YX: float32(yx),
		XY: float32(xy), YY: float32(yy),
		DX: float32(dx), DY: float32(dy),
	}, true
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Transformer wraps a Funcs and maps every coordinate through M before
// forwarding it.
type Transformer struct {
	M    Matrix
	Next Funcs
}

// MoveTo implements Funcs.
func (t Transformer) MoveTo(x, y float32) {
	t.Next.MoveTo(t.M.TransformPoint(x, y))
}

// LineTo implements Funcs.
func (t Transformer) LineTo(x, y float32) {
	t.Next.LineTo(t.M.TransformPoint(x, y))
}

// QuadraticTo implements Funcs.
func (t Transformer) QuadraticTo(c1x, c1y, x, y float32) {
	c1x, c1y = t.M.TransformPoint(c1x, c1y)
	x, y = t.M.TransformPoint(x, y)
	t.Next.QuadraticTo(c1x, c1y, x, y)
}

// CubicTo implements Funcs.
func (t Transformer) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	c1x, c1y = t.M.TransformPoint(c1x, c1y)
	c2x, c2y = t.M.TransformPoint(c2x, c2y)
	x, y = t.M.TransformPoint(x, y)
	t.Next.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements Funcs.
func (t Transformer) ClosePath() {
	t.Next.ClosePath()
}
