package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/gogpu/glyphtrace/gotext"
	"github.com/gogpu/glyphtrace/paint"
	"github.com/gogpu/glyphtrace/raster"
)

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupLogging(flags)
	f := mustLoadFont(args["font"].Value)
	text, err := inputText(args["text"], flags)
	if err != nil {
		fatalf("%v", err)
	}
	opts, err := shapeOptions(flags)
	if err != nil {
		fatalf("%v", err)
	}
	fg, err := paint.ParseColor(mustFlagString(flags["foreground"], "foreground"))
	if err != nil {
		fatalf("%v", err)
	}
	bg, err := paint.ParseColor(mustFlagString(flags["background"], "background"))
	if err != nil {
		fatalf("%v", err)
	}
	size := mustFlagInt(flags["size"], "size")
	if size <= 0 {
		fatalf("--size must be positive, got %d", size)
	}

	opts.Size = float32(size)
	glyphs, err := f.Shape(text, opts)
	if err != nil {
		fatalf("shape failed: %v", err)
	}
	c := renderRun(f, glyphs, runLayout{
		size:       float32(size),
		margin:     mustFlagInt(flags["margin"], "margin"),
		foreground: fg,
		background: bg,
	})

	out := mustFlagString(flags["output"], "output")
	file, err := os.Create(out)
	if err != nil {
		fatalf("%v", err)
	}
	if err := png.Encode(file, c.RGBA()); err != nil {
		_ = file.Close()
		fatalf("encode %s: %v", out, err)
	}
	if err := file.Close(); err != nil {
		fatalf("%v", err)
	}
	b := c.RGBA().Bounds()
	pterm.Success.Println(fmt.Sprintf("wrote %s (%dx%d, %d glyphs)", out, b.Dx(), b.Dy(), len(glyphs)))
}

type runLayout struct {
	size       float32
	margin     int
	foreground paint.Color
	background paint.Color
}

// renderRun paints a shaped run on one baseline. Glyph positions are in
// pixels; each glyph gets a font-unit transform at its pen position.
func renderRun(f *gotext.Font, glyphs []gotext.Glyph, l runLayout) *raster.Canvas {
	var advance float32
	for _, g := range glyphs {
		advance += g.XAdvance
	}
	w := int(advance+0.5) + 2*l.margin
	h := int(l.size*1.25+0.5) + 2*l.margin
	baseline := float32(l.margin) + l.size

	c := raster.NewCanvas(max(w, 1), max(h, 1), raster.WithGlyphs(f), raster.WithForeground(l.foreground))
	if l.background.A > 0 {
		c.Color(false, l.background)
	}

	upem := float32(f.Upem())
	pen := float32(l.margin)
	popts := paint.PaintOptions{Foreground: l.foreground}
	for _, g := range glyphs {
		m := raster.FontTransform(upem, l.size, pen+g.XOffset, baseline-g.YOffset)
		c.PushTransform(m.XX, m.YX, m.XY, m.YY, m.DX, m.DY)
		if err := f.PaintGlyph(g.ID, c, popts); err != nil {
			pterm.Warning.Println(err)
		}
		c.PopTransform()
		pen += g.XAdvance
	}
	return c
}
