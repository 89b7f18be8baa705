package paint

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit per channel, non-premultiplied RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 257
	r = uint32(c.R) * 257 * a / 0xffff
	g = uint32(c.G) * 257 * a / 0xffff
	b = uint32(c.B) * 257 * a / 0xffff
	return r, g, b, a
}

// String returns the colour as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithAlpha returns c with its alpha multiplied by a/255.
func (c Color) WithAlpha(a uint8) Color {
	c.A = uint8((uint16(c.A)*uint16(a) + 127) / 255)
	return c
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
// A missing alpha channel means opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("paint: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("paint: invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
