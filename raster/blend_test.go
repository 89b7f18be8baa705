package raster

import (
	"math"
	"testing"

	"github.com/gogpu/glyphtrace/paint"
)

func near(a, b premul) bool {
	const eps = 1e-4
	d := func(x, y float32) bool { return math.Abs(float64(x-y)) < eps }
	return d(a.r, b.r) && d(a.g, b.g) && d(a.b, b.b) && d(a.a, b.a)
}

func TestCompositePorterDuff(t *testing.T) {
	s := premul{0.5, 0, 0, 0.5} // half-transparent red
	d := premul{0, 0, 1, 1}     // opaque blue

	tests := []struct {
		mode paint.CompositeMode
		want premul
	}{
		{paint.CompositeClear, premul{}},
		{paint.CompositeSrc, s},
		{paint.CompositeDest, d},
		{paint.CompositeSrcOver, premul{0.5, 0, 0.5, 1}},
		{paint.CompositeDestOver, d},
		{paint.CompositeSrcIn, s},
		{paint.CompositeDestIn, premul{0, 0, 0.5, 0.5}},
		{paint.CompositeSrcOut, premul{}},
		{paint.CompositeDestOut, premul{0, 0, 0.5, 0.5}},
		{paint.CompositeSrcAtop, premul{0.5, 0, 0.5, 1}},
		{paint.CompositeDestAtop, premul{0, 0, 0.5, 0.5}},
		{paint.CompositeXor, premul{0, 0, 0.5, 0.5}},
		{paint.CompositePlus, premul{0.5, 0, 1, 1}},
	}
	for _, tt := range tests {
		if got := composite(tt.mode, s, d); !near(got, tt.want) {
			t.Errorf("composite(%v) = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestCompositeBlendModes(t *testing.T) {
	white := premul{1, 1, 1, 1}
	black := premul{0, 0, 0, 1}
	grey := premul{0.5, 0.5, 0.5, 1}
	c := premul{0.2, 0.4, 0.8, 1}

	tests := []struct {
		name string
		mode paint.CompositeMode
		s, d premul
		want premul
	}{
		{"multiply white", paint.CompositeMultiply, white, c, c},
		{"multiply black", paint.CompositeMultiply, black, c, black},
		{"screen black", paint.CompositeScreen, black, c, c},
		{"screen white", paint.CompositeScreen, white, c, white},
		{"darken", paint.CompositeDarken, grey, c, premul{0.2, 0.4, 0.5, 1}},
		{"lighten", paint.CompositeLighten, grey, c, premul{0.5, 0.5, 0.8, 1}},
		{"difference self", paint.CompositeDifference, c, c, black},
		{"exclusion black", paint.CompositeExclusion, black, c, c},
		{"hard light grey", paint.CompositeHardLight, grey, c, c},
		{"overlay onto grey", paint.CompositeOverlay, c, grey, c},
		{"color dodge black", paint.CompositeColorDodge, black, c, c},
		{"color burn white", paint.CompositeColorBurn, white, c, c},
		{"soft light grey", paint.CompositeSoftLight, grey, c, c},
		{"luminosity of grey", paint.CompositeHSLLuminosity, grey, grey, grey},
		{"hue onto grey", paint.CompositeHSLHue, c, grey, grey},
		{"transparent source", paint.CompositeMultiply, premul{}, c, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composite(tt.mode, tt.s, tt.d); !near(got, tt.want) {
				t.Errorf("composite(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestCompositeUnknownIsSrcOver(t *testing.T) {
	s := premul{0.5, 0, 0, 0.5}
	d := premul{0, 0, 1, 1}
	if got, want := composite(paint.CompositeMode(200), s, d), over(s, d); !near(got, want) {
		t.Errorf("composite(unknown) = %+v, want %+v", got, want)
	}
}

func TestHSLHelpers(t *testing.T) {
	c := [3]float32{0.2, 0.4, 0.8}
	if got := sat(c); math.Abs(float64(got-0.6)) > 1e-6 {
		t.Errorf("sat = %v, want 0.6", got)
	}
	out := setLum(c, 0.5)
	if got := lum(out); math.Abs(float64(got-0.5)) > 1e-4 {
		t.Errorf("lum(setLum(c, 0.5)) = %v", got)
	}
	s := setSat(c, 0.3)
	if got := sat(s); math.Abs(float64(got-0.3)) > 1e-6 {
		t.Errorf("sat(setSat(c, 0.3)) = %v", got)
	}
	if g := setSat([3]float32{0.5, 0.5, 0.5}, 1); g != ([3]float32{}) {
		t.Errorf("setSat(grey) = %v, want zeros", g)
	}
}

func TestRampExtend(t *testing.T) {
	tests := []struct {
		mode paint.ExtendMode
		in   float32
		want float32
	}{
		{paint.ExtendPad, -1, 0},
		{paint.ExtendPad, 2, 1},
		{paint.ExtendPad, 0.3, 0.3},
		{paint.ExtendRepeat, 1.25, 0.25},
		{paint.ExtendRepeat, -0.25, 0.75},
		{paint.ExtendReflect, 1.25, 0.75},
		{paint.ExtendReflect, -0.25, 0.25},
		{paint.ExtendReflect, 2.25, 0.25},
	}
	for _, tt := range tests {
		if got := extend(tt.in, tt.mode); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("extend(%v, %v) = %v, want %v", tt.in, tt.mode, got, tt.want)
		}
	}
}

func TestRampSortsAndNormalizes(t *testing.T) {
	line := paint.StaticColorLine{ColorStops: []paint.ColorStop{
		{Offset: 2, Color: paint.Color{B: 255, A: 255}},
		{Offset: 1, Color: paint.Color{R: 255, A: 255}},
	}}
	r, lo, hi := newRamp(line, paint.Black)
	if lo != 1 || hi != 2 {
		t.Errorf("range = [%v, %v], want [1, 2]", lo, hi)
	}
	if r.stops[0].Offset != 0 || r.stops[1].Offset != 1 {
		t.Errorf("stops not sorted and normalized: %+v", r.stops)
	}
	if got := r.at(0); !near(got, premul{1, 0, 0, 1}) {
		t.Errorf("at(0) = %+v, want red", got)
	}
	// The caller's line is untouched.
	if line.ColorStops[0].Offset != 2 {
		t.Error("newRamp modified the input line")
	}
}
