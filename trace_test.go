package glyphtrace

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/paint"
)

var errNoGlyph = errors.New("no such glyph")

// boxes draws glyph n as an n-by-n square; glyph 0 is missing.
type boxes struct{}

func (boxes) DrawGlyph(gid draw.GlyphID, f draw.Funcs) error {
	if gid == 0 {
		return errNoGlyph
	}
	n := float32(gid)
	f.MoveTo(0, 0)
	f.LineTo(n, 0)
	f.LineTo(n, n)
	f.LineTo(0, n)
	f.ClosePath()
	return nil
}

func TestDrawTrace(t *testing.T) {
	got, err := DrawTrace(boxes{}, 2)
	if err != nil {
		t.Fatalf("DrawTrace() error = %v", err)
	}
	if want := "M0,0L2,0L2,2L0,2Z"; got != want {
		t.Errorf("DrawTrace() = %q, want %q", got, want)
	}

	if _, err := DrawTrace(boxes{}, 0); !errors.Is(err, errNoGlyph) {
		t.Errorf("DrawTrace(0) error = %v, want errNoGlyph", err)
	}
}

func TestPaintTraceOutlineSource(t *testing.T) {
	src := OutlineSource(boxes{})
	got, err := PaintTrace(src, 5, paint.PaintOptions{Foreground: paint.Color{9, 8, 7, 255}})
	if err != nil {
		t.Fatalf("PaintTrace() error = %v", err)
	}
	if want := "start clip glyph 5\n  solid 9 8 7 255\nend clip\n"; got != want {
		t.Errorf("PaintTrace() = %q, want %q", got, want)
	}
}

func TestTraceGlyphsMatchesSequential(t *testing.T) {
	src := OutlineSource(boxes{})
	gids := make([]draw.GlyphID, 64)
	for i := range gids {
		gids[i] = draw.GlyphID(i + 1)
	}

	got, err := TraceGlyphs(context.Background(), src, gids, BatchOptions{Workers: 4, Paint: paint.DefaultPaintOptions()})
	if err != nil {
		t.Fatalf("TraceGlyphs() error = %v", err)
	}
	if len(got) != len(gids) {
		t.Fatalf("len = %d, want %d", len(got), len(gids))
	}
	for i, gid := range gids {
		want, _ := DrawTrace(src, gid)
		if got[i].Glyph != gid || got[i].Outline != want {
			t.Errorf("result %d = {%d %q}, want {%d %q}", i, got[i].Glyph, got[i].Outline, gid, want)
		}
		if got[i].Paint == "" {
			t.Errorf("result %d has no paint trace", i)
		}
	}
}

func TestTraceGlyphsSkip(t *testing.T) {
	got, err := TraceGlyphs(context.Background(), OutlineSource(boxes{}), []draw.GlyphID{3}, BatchOptions{SkipPaint: true})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Paint != "" || got[0].Outline == "" {
		t.Errorf("SkipPaint result = %+v", got[0])
	}
}

func TestTraceGlyphsError(t *testing.T) {
	_, err := TraceGlyphs(context.Background(), OutlineSource(boxes{}), []draw.GlyphID{1, 2, 0, 4}, BatchOptions{Workers: 1})
	if !errors.Is(err, errNoGlyph) {
		t.Errorf("TraceGlyphs() error = %v, want errNoGlyph", err)
	}

	if _, err := TraceGlyphs(context.Background(), nil, nil, BatchOptions{}); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source error = %v, want ErrNilSource", err)
	}
}

func TestTraceGlyphsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TraceGlyphs(ctx, OutlineSource(boxes{}), []draw.GlyphID{1, 2}, BatchOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("TraceGlyphs() error = %v, want context.Canceled", err)
	}
}
