package raster

import (
	"log/slog"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := raster.NewCanvas(128, 128,
//	    raster.WithGlyphs(font),
//	    raster.WithTransform(raster.FontTransform(1000, 96, 16, 112)),
//	)
type Option func(*options)

type options struct {
	foreground paint.Color
	palette    map[uint32]paint.Color
	glyphs     draw.Drawer
	transform  draw.Matrix
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		foreground: paint.Black,
		transform:  draw.Identity(),
	}
}

// WithForeground sets the colour used for foreground colour-line stops.
func WithForeground(c paint.Color) Option {
	return func(o *options) {
		o.foreground = c
	}
}

// WithPalette sets overrides answered from CustomPaletteColor.
func WithPalette(overrides map[uint32]paint.Color) Option {
	return func(o *options) {
		o.palette = overrides
	}
}

// WithGlyphs sets the outline source used for glyph clips. A Drawer that
// also implements paint.Painter is used for ColorGlyph requests too.
func WithGlyphs(d draw.Drawer) Option {
	return func(o *options) {
		o.glyphs = d
	}
}

// WithTransform sets the base transform from glyph space to pixels.
func WithTransform(m draw.Matrix) Option {
	return func(o *options) {
		o.transform = m
	}
}

// WithLogger overrides the package logger for one canvas.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// FontTransform maps font units (y up) to pixels (y down) at size pixels
// per em, with the glyph origin at (originX, originY).
func FontTransform(upem, size, originX, originY float32) draw.Matrix {
	s := size / upem
	return draw.Matrix{XX: s, YY: -s, DX: originX, DY: originY}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return glyphtrace.Logger()
}
