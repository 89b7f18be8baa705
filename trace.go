package glyphtrace

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

// ErrNilSource is returned when a batch is started without a source.
var ErrNilSource = errors.New("glyphtrace: nil source")

// Source provides both outlines and paint sessions for glyphs.
type Source interface {
	draw.Drawer
	paint.Painter
}

// DrawTrace records the outline of gid.
func DrawTrace(d draw.Drawer, gid draw.GlyphID) (string, error) {
	rec := draw.NewRecorder()
	if err := d.DrawGlyph(gid, rec); err != nil {
		return "", err
	}
	return rec.String(), nil
}

// PaintTrace records one paint session of gid.
// A painter that leaves pushes open panics with paint.ErrUnbalanced.
func PaintTrace(p paint.Painter, gid draw.GlyphID, opts paint.PaintOptions) (string, error) {
	rec := paint.NewRecorder()
	if err := p.PaintGlyph(gid, rec, opts); err != nil {
		return "", err
	}
	return rec.Finish(), nil
}

// OutlineSource adapts a Drawer without colour data into a Source; every
// glyph paints as its outline filled with the foreground colour.
func OutlineSource(d draw.Drawer) Source {
	return outlineSource{d}
}

type outlineSource struct {
	draw.Drawer
}

func (outlineSource) PaintGlyph(gid draw.GlyphID, f paint.Funcs, opts paint.PaintOptions) error {
	paint.PaintOutline(f, gid, opts.Foreground)
	return nil
}

// GlyphTrace holds the traces of one glyph.
type GlyphTrace struct {
	Glyph   draw.GlyphID
	Outline string
	Paint   string
}

// BatchOptions configures TraceGlyphs.
type BatchOptions struct {
	// Workers bounds the number of concurrent sessions.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// SkipOutline and SkipPaint disable one kind of session.
	SkipOutline bool
	SkipPaint   bool

	// Paint is passed to every paint session.
	Paint paint.PaintOptions
}

// TraceGlyphs traces every glyph of gids. Results are in input order.
// The first failing glyph cancels the remaining sessions and its error,
// wrapped with the glyph id, is returned.
func TraceGlyphs(ctx context.Context, src Source, gids []draw.GlyphID, opts BatchOptions) ([]GlyphTrace, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	Logger().Debug("glyphtrace: batch", "glyphs", len(gids), "workers", workers)

	out := make([]GlyphTrace, len(gids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, gid := range gids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gt := GlyphTrace{Glyph: gid}
			var err error
			if !opts.SkipOutline {
				if gt.Outline, err = DrawTrace(src, gid); err != nil {
					return fmt.Errorf("glyphtrace: glyph %d outline: %w", gid, err)
				}
			}
			if !opts.SkipPaint {
				if gt.Paint, err = PaintTrace(src, gid, opts.Paint); err != nil {
					return fmt.Errorf("glyphtrace: glyph %d paint: %w", gid, err)
				}
			}
			out[i] = gt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
