package draw

import (
	"math"
	"testing"
)

func nearly(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	x, y := m.TransformPoint(3, -4)
	if x != 3 || y != -4 {
		t.Errorf("TransformPoint = (%v, %v), want (3, -4)", x, y)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("TransformPoint = (%v, %v), want (12, 23)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Matrix{XX: 2, YX: 0.5, XY: -1, YY: 3, DX: 7, DY: -2}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	x, y := m.TransformPoint(4, 5)
	bx, by := inv.TransformPoint(x, y)
	if !nearly(bx, 4) || !nearly(by, 5) {
		t.Errorf("inverse round trip = (%v, %v), want (4, 5)", bx, by)
	}

	if _, ok := (Matrix{}).Invert(); ok {
		t.Error("zero matrix should not be invertible")
	}
}

func TestTransformerForwards(t *testing.T) {
	var rec Recorder
	tr := Transformer{M: Scale(2, 2), Next: &rec}
	tr.MoveTo(1, 1)
	tr.QuadraticTo(1, 2, 3, 4)
	tr.CubicTo(1, 1, 2, 2, 3, 3)
	tr.ClosePath()

	if got, want := rec.String(), "M2,2Q2,4 6,8C2,2 4,4 6,6Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
