package raster

import (
	"math"
	"slices"

	"github.com/gogpu/glyphtrace/paint"
)

// ramp samples a colour line normalized to [0, 1].
type ramp struct {
	stops  []paint.ColorStop // sorted by offset, colors resolved
	colors []premul
	extend paint.ExtendMode
}

// newRamp resolves and sorts line. It also returns the original offset
// range; gradient geometry is remapped onto it by the caller.
func newRamp(line paint.ColorLine, foreground paint.Color) (r ramp, lo, hi float32) {
	if line == nil {
		return ramp{}, 0, 1
	}
	lo, hi, stops := paint.NormalizeColorLine(line.Stops(), foreground)
	// Stops sharing an offset keep their order.
	slices.SortStableFunc(stops, func(a, b paint.ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	colors := make([]premul, len(stops))
	for i, s := range stops {
		colors[i] = premulOf(s.Color)
	}
	if hi == lo {
		lo, hi = 0, 1
	}
	return ramp{stops: stops, colors: colors, extend: line.Extend()}, lo, hi
}

// at returns the colour at t, after applying the extend mode.
func (r ramp) at(t float32) premul {
	switch len(r.stops) {
	case 0:
		return premul{}
	case 1:
		return r.colors[0]
	}
	t = extend(t, r.extend)

	i, _ := slices.BinarySearchFunc(r.stops, t, func(s paint.ColorStop, t float32) int {
		if s.Offset < t {
			return -1
		}
		return 1
	})
	if i == 0 {
		return r.colors[0]
	}
	if i >= len(r.stops) {
		return r.colors[len(r.stops)-1]
	}
	a, b := r.stops[i-1], r.stops[i]
	if b.Offset == a.Offset {
		return r.colors[i]
	}
	return lerp(r.colors[i-1], r.colors[i], (t-a.Offset)/(b.Offset-a.Offset))
}

func extend(t float32, mode paint.ExtendMode) float32 {
	switch mode {
	case paint.ExtendRepeat:
		return t - float32(math.Floor(float64(t)))
	case paint.ExtendReflect:
		t = float32(math.Abs(float64(t)))
		period := math.Floor(float64(t))
		t -= float32(period)
		if int64(period)%2 == 1 {
			t = 1 - t
		}
		return t
	default:
		return min(max(t, 0), 1)
	}
}

// shader maps a point in glyph space to a colour.
type shader func(x, y float32) premul

func solidShader(c premul) shader {
	return func(float32, float32) premul { return c }
}

// linearShader projects onto p0->p1 after the three anchors are reduced.
// The offset range [lo, hi] of the original line is mapped onto the
// normalized ramp by moving the end points.
func linearShader(r ramp, lo, hi float32, p0, p1, p2 paint.Point) shader {
	p0, p1 = paint.ReduceAnchors(p0, p1, p2)
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	q0 := paint.Point{X: p0.X + lo*dx, Y: p0.Y + lo*dy}
	q1 := paint.Point{X: p0.X + hi*dx, Y: p0.Y + hi*dy}

	vx, vy := q1.X-q0.X, q1.Y-q0.Y
	den := vx*vx + vy*vy
	if den == 0 {
		return solidShader(r.at(0))
	}
	return func(x, y float32) premul {
		return r.at(((x-q0.X)*vx + (y-q0.Y)*vy) / den)
	}
}

// radialShader interpolates between the circles (c0, r0) and (c1, r1),
// choosing the largest t whose circle covers the point.
func radialShader(r ramp, lo, hi float32, c0 paint.Point, r0 float32, c1 paint.Point, r1 float32) shader {
	// Remap both circles onto the normalized offset range.
	cx, cy, dr := c1.X-c0.X, c1.Y-c0.Y, r1-r0
	c0, c1 = paint.Point{X: c0.X + lo*cx, Y: c0.Y + lo*cy}, paint.Point{X: c0.X + hi*cx, Y: c0.Y + hi*cy}
	r0, r1 = r0+lo*dr, r0+hi*dr

	cdx, cdy := float64(c1.X-c0.X), float64(c1.Y-c0.Y)
	fr0, fdr := float64(r0), float64(r1-r0)
	a := cdx*cdx + cdy*cdy - fdr*fdr

	return func(x, y float32) premul {
		px, py := float64(x-c0.X), float64(y-c0.Y)
		b := px*cdx + py*cdy + fr0*fdr
		c := px*px + py*py - fr0*fr0

		if math.Abs(a) < 1e-9 {
			if b == 0 {
				return premul{}
			}
			t := c / (2 * b)
			if fr0+t*fdr < 0 {
				return premul{}
			}
			return r.at(float32(t))
		}

		disc := b*b - a*c
		if disc < 0 {
			return premul{}
		}
		sq := math.Sqrt(disc)
		t1, t2 := (b+sq)/a, (b-sq)/a
		for _, t := range [2]float64{max(t1, t2), min(t1, t2)} {
			if fr0+t*fdr >= 0 {
				return r.at(float32(t))
			}
		}
		return premul{}
	}
}

// sweepShader maps the angle around center, counter-clockwise in glyph
// space, onto [start, end] in radians.
func sweepShader(r ramp, lo, hi float32, center paint.Point, start, end float32) shader {
	span := end - start
	start, end = start+lo*span, start+hi*span
	span = end - start
	if span == 0 {
		return solidShader(r.at(0))
	}
	return func(x, y float32) premul {
		angle := math.Atan2(float64(y-center.Y), float64(x-center.X))
		if angle < 0 {
			angle += 2 * math.Pi
		}
		return r.at((float32(angle) - start) / span)
	}
}
