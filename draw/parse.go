package draw

import (
	"fmt"
	"strconv"
)

// SyntaxError reports a malformed path string.
type SyntaxError struct {
	Offset int    // byte offset of the problem
	Msg    string // description
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("draw: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Parse reads a path string in the Recorder grammar back into events.
// Parse(rec.String()) returns exactly the events that produced it.
func Parse(s string) ([]PathEvent, error) {
	p := pathParser{src: s}
	var events []PathEvent
	for p.pos < len(p.src) {
		cmd := p.src[p.pos]
		p.pos++
		var (
			ev  PathEvent
			err error
		)
		switch cmd {
		case 'M':
			var x, y float32
			if x, y, err = p.point(); err == nil {
				ev = MoveTo{X: x, Y: y}
			}
		case 'L':
			var x, y float32
			if x, y, err = p.point(); err == nil {
				ev = LineTo{X: x, Y: y}
			}
		case 'Q':
			ev, err = p.quad()
		case 'C':
			ev, err = p.cubic()
		case 'Z':
			ev = Close{}
		default:
			err = p.errorf(p.pos-1, "unknown command %q", cmd)
		}
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

type pathParser struct {
	src string
	pos int
}

func (p *pathParser) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *pathParser) quad() (PathEvent, error) {
	c1x, c1y, err := p.point()
	if err != nil {
		return nil, err
	}
	if err := p.expect(' '); err != nil {
		return nil, err
	}
	x, y, err := p.point()
	if err != nil {
		return nil, err
	}
	return QuadTo{C1X: c1x, C1Y: c1y, X: x, Y: y}, nil
}

func (p *pathParser) cubic() (PathEvent, error) {
	var pts [3][2]float32
	for i := range pts {
		if i > 0 {
			if err := p.expect(' '); err != nil {
				return nil, err
			}
		}
		x, y, err := p.point()
		if err != nil {
			return nil, err
		}
		pts[i] = [2]float32{x, y}
	}
	return CubicTo{
		C1X: pts[0][0], C1Y: pts[0][1],
		C2X: pts[1][0], C2Y: pts[1][1],
		X: pts[2][0], Y: pts[2][1],
	}, nil
}

func (p *pathParser) point() (x, y float32, err error) {
	if x, err = p.number(); err != nil {
		return 0, 0, err
	}
	if err = p.expect(','); err != nil {
		return 0, 0, err
	}
	if y, err = p.number(); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (p *pathParser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errorf(p.pos, "expected %q", c)
	}
	p.pos++
	return nil
}

func (p *pathParser) number() (float32, error) {
	start := p.pos
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf(start, "expected number")
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 32)
	if err != nil {
		return 0, p.errorf(start, "bad number %q", p.src[start:p.pos])
	}
	return float32(v), nil
}

// isNumberByte reports whether c can occur in a formatted float32,
// including the spellings of infinities and NaN.
func isNumberByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		return true
	case c == 'I', c == 'n', c == 'f', c == 'N', c == 'a':
		return true
	}
	return false
}
