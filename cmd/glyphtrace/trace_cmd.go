package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/gotext"
	"github.com/gogpu/glyphtrace/internal/tracecmp"
	"github.com/gogpu/glyphtrace/paint"
)

func runDrawCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupLogging(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	f := mustLoadFont(fontPath)
	tgs, err := targets(f, args, flags)
	if err != nil {
		fatalf("%v", err)
	}

	var src glyphtrace.Source = f
	switch engine := mustFlagString(flags["engine"], "engine"); engine {
	case "gotext":
	case "sfnt":
		s, err := loadSFNT(fontPath)
		if err != nil {
			fatalf("%v", err)
		}
		src = glyphtrace.OutlineSource(s)
	default:
		fatalf("unknown engine %q (expected gotext|sfnt)", engine)
	}

	traces, err := glyphtrace.TraceGlyphs(context.Background(), src, gids(tgs), glyphtrace.BatchOptions{
		Workers:   mustFlagInt(flags["workers"], "workers"),
		SkipPaint: true,
	})
	if err != nil {
		fatalf("%v", err)
	}
	bounds := mustFlagBool(flags["bounds"], "bounds")
	for i, tr := range traces {
		fmt.Printf("%s gid%d: %s\n", tgs[i].label, tr.Glyph, tr.Outline)
		if bounds {
			s, err := outlineSummary(tr.Outline)
			if err != nil {
				fatalf("%v", err)
			}
			fmt.Println("  " + s)
		}
	}
}

// outlineSummary reads a trace back and describes its geometry.
func outlineSummary(trace string) (string, error) {
	events, err := draw.Parse(trace)
	if err != nil {
		return "", err
	}
	o := draw.NewOutline(events...)
	if o.IsEmpty() {
		return "empty", nil
	}
	b := o.Bounds()
	return fmt.Sprintf("contours %d bounds %s,%s %s,%s", o.Contours(),
		draw.FormatNumber(b.MinX), draw.FormatNumber(b.MinY),
		draw.FormatNumber(b.MaxX), draw.FormatNumber(b.MaxY)), nil
}

func runPaintCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupLogging(flags)
	f := mustLoadFont(args["font"].Value)
	tgs, err := targets(f, args, flags)
	if err != nil {
		fatalf("%v", err)
	}
	fg, err := paint.ParseColor(mustFlagString(flags["foreground"], "foreground"))
	if err != nil {
		fatalf("%v", err)
	}

	traces, err := glyphtrace.TraceGlyphs(context.Background(), f, gids(tgs), glyphtrace.BatchOptions{
		Workers:     mustFlagInt(flags["workers"], "workers"),
		SkipOutline: true,
		Paint:       paint.PaintOptions{Foreground: fg},
	})
	if err != nil {
		fatalf("%v", err)
	}
	for i, tr := range traces {
		pterm.Info.Println(fmt.Sprintf("%s gid%d", tgs[i].label, tr.Glyph))
		fmt.Print(tr.Paint)
	}
}

func runCheckCommand(args map[string]commando.ArgValue, _ map[string]commando.FlagValue) {
	fixtures, err := tracecmp.LoadDir(args["dir"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	failed := 0
	for _, fx := range fixtures {
		if err := fx.Check(); err != nil {
			failed++
			pterm.Error.Println(err)
			continue
		}
		pterm.Success.Println(fx.Name)
	}
	if failed > 0 {
		fatalf("%d of %d fixtures failed", failed, len(fixtures))
	}
	pterm.Info.Println(fmt.Sprintf("%d fixtures passed", len(fixtures)))
}

func loadSFNT(path string) (*gotext.SFNT, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return gotext.ParseSFNT(data)
}

func gids(tgs []target) []draw.GlyphID {
	out := make([]draw.GlyphID, len(tgs))
	for i, t := range tgs {
		out[i] = t.gid
	}
	return out
}
