package raster

import (
	"math"

	"github.com/gogpu/glyphtrace/paint"
)

// premul is a premultiplied colour with channels in [0, 1].
type premul struct {
	r, g, b, a float32
}

func premulOf(c paint.Color) premul {
	a := float32(c.A) / 255
	return premul{
		r: float32(c.R) / 255 * a,
		g: float32(c.G) / 255 * a,
		b: float32(c.B) / 255 * a,
		a: a,
	}
}

func (p premul) scale(k float32) premul {
	return premul{p.r * k, p.g * k, p.b * k, p.a * k}
}

func (p premul) add(q premul) premul {
	return premul{p.r + q.r, p.g + q.g, p.b + q.b, p.a + q.a}
}

func lerp(p, q premul, t float32) premul {
	return premul{
		p.r + (q.r-p.r)*t,
		p.g + (q.g-p.g)*t,
		p.b + (q.b-p.b)*t,
		p.a + (q.a-p.a)*t,
	}
}

// over composites s over d.
func over(s, d premul) premul {
	return s.add(d.scale(1 - s.a))
}

// composite combines source s onto backdrop d with mode. Unknown modes
// behave as SrcOver.
func composite(mode paint.CompositeMode, s, d premul) premul {
	switch mode {
	case paint.CompositeClear:
		return premul{}
	case paint.CompositeSrc:
		return s
	case paint.CompositeDest:
		return d
	case paint.CompositeSrcOver:
		return over(s, d)
	case paint.CompositeDestOver:
		return over(d, s)
	case paint.CompositeSrcIn:
		return s.scale(d.a)
	case paint.CompositeDestIn:
		return d.scale(s.a)
	case paint.CompositeSrcOut:
		return s.scale(1 - d.a)
	case paint.CompositeDestOut:
		return d.scale(1 - s.a)
	case paint.CompositeSrcAtop:
		return s.scale(d.a).add(d.scale(1 - s.a))
	case paint.CompositeDestAtop:
		return s.scale(1 - d.a).add(d.scale(s.a))
	case paint.CompositeXor:
		return s.scale(1 - d.a).add(d.scale(1 - s.a))
	case paint.CompositePlus:
		p := s.add(d)
		return premul{min(p.r, 1), min(p.g, 1), min(p.b, 1), min(p.a, 1)}
	}

	if f, ok := separable[mode]; ok {
		return blendWith(s, d, func(cs, cb [3]float32) [3]float32 {
			return [3]float32{f(cs[0], cb[0]), f(cs[1], cb[1]), f(cs[2], cb[2])}
		})
	}
	switch mode {
	case paint.CompositeHSLHue:
		return blendWith(s, d, func(cs, cb [3]float32) [3]float32 {
			return setLum(setSat(cs, sat(cb)), lum(cb))
		})
	case paint.CompositeHSLSaturation:
		return blendWith(s, d, func(cs, cb [3]float32) [3]float32 {
			return setLum(setSat(cb, sat(cs)), lum(cb))
		})
	case paint.CompositeHSLColor:
		return blendWith(s, d, func(cs, cb [3]float32) [3]float32 {
			return setLum(cs, lum(cb))
		})
	case paint.CompositeHSLLuminosity:
		return blendWith(s, d, func(cs, cb [3]float32) [3]float32 {
			return setLum(cb, lum(cs))
		})
	}
	return over(s, d)
}

// blendWith applies a blend function B to unpremultiplied colours:
// Cr = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb), Ar = Sa + Da - Sa*Da.
func blendWith(s, d premul, b func(cs, cb [3]float32) [3]float32) premul {
	if s.a == 0 {
		return d
	}
	if d.a == 0 {
		return s
	}
	cs := [3]float32{s.r / s.a, s.g / s.a, s.b / s.a}
	cb := [3]float32{d.r / d.a, d.g / d.a, d.b / d.a}
	mix := b(cs, cb)
	k := s.a * d.a
	return premul{
		r: (1-s.a)*d.r + (1-d.a)*s.r + k*mix[0],
		g: (1-s.a)*d.g + (1-d.a)*s.g + k*mix[1],
		b: (1-s.a)*d.b + (1-d.a)*s.b + k*mix[2],
		a: s.a + d.a - k,
	}
}

// Separable blend functions, B(Cs, Cb) per channel.
var separable = map[paint.CompositeMode]func(cs, cb float32) float32{
	paint.CompositeMultiply:   multiply,
	paint.CompositeScreen:     screen,
	paint.CompositeOverlay:    overlay,
	paint.CompositeDarken:     darken,
	paint.CompositeLighten:    lighten,
	paint.CompositeColorDodge: colorDodge,
	paint.CompositeColorBurn:  colorBurn,
	paint.CompositeHardLight:  hardLight,
	paint.CompositeSoftLight:  softLight,
	paint.CompositeDifference: difference,
	paint.CompositeExclusion:  exclusion,
}

func multiply(cs, cb float32) float32 { return cs * cb }
func screen(cs, cb float32) float32   { return cs + cb - cs*cb }
func overlay(cs, cb float32) float32  { return hardLight(cb, cs) }
func darken(cs, cb float32) float32   { return min(cs, cb) }
func lighten(cs, cb float32) float32  { return max(cs, cb) }

func colorDodge(cs, cb float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cb/(1-cs))
}

func colorBurn(cs, cb float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - min(1, (1-cb)/cs)
}

func hardLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return cb * 2 * cs
	}
	return screen(2*cs-1, cb)
}

func softLight(cs, cb float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = float32(math.Sqrt(float64(cb)))
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cs, cb float32) float32 {
	if cs > cb {
		return cs - cb
	}
	return cb - cs
}

func exclusion(cs, cb float32) float32 { return cs + cb - 2*cs*cb }

// Non-separable helpers (W3C Compositing and Blending, section 9).

func lum(c [3]float32) float32 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func sat(c [3]float32) float32 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

func clipColor(c [3]float32) [3]float32 {
	l := lum(c)
	n := min(c[0], c[1], c[2])
	x := max(c[0], c[1], c[2])
	if n < 0 {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c [3]float32, l float32) [3]float32 {
	d := l - lum(c)
	return clipColor([3]float32{c[0] + d, c[1] + d, c[2] + d})
}

func setSat(c [3]float32, s float32) [3]float32 {
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}

	var out [3]float32
	if c[hi] > c[lo] {
		out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		out[hi] = s
	}
	return out
}
