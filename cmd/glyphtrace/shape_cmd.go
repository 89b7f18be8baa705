package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/thatisuday/commando"

	"github.com/gogpu/glyphtrace/gotext"
)

func runShapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
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
	glyphs, err := f.Shape(text, opts)
	if err != nil {
		fatalf("shape failed: %v", err)
	}
	fmt.Print(formatShaped(glyphs))
}

// shapeOptions collects the shaping flags shared by shape and render.
func shapeOptions(flags map[string]commando.FlagValue) (gotext.ShapeOptions, error) {
	var opts gotext.ShapeOptions
	features, err := parseFeatureFlag(flags["features"])
	if err != nil {
		return opts, err
	}
	opts.Features = features
	if opts.Language, err = parseLanguage(mustFlagString(flags["lang"], "lang")); err != nil {
		return opts, err
	}
	if f, ok := flags["script"]; ok {
		if opts.Script, err = parseScript(mustFlagString(f, "script")); err != nil {
			return opts, err
		}
	}
	if mustFlagBool(flags["rtl"], "rtl") {
		opts.Direction = di.DirectionRTL
	}
	return opts, nil
}

// formatShaped prints one "gid<id>=<cluster>@<x advance>,<x offset>+<y offset>"
// line per glyph.
func formatShaped(glyphs []gotext.Glyph) string {
	var b strings.Builder
	for _, g := range glyphs {
		fmt.Fprintf(&b, "gid%d=%d@%d,%d+%d\n", g.ID, g.Cluster,
			roundInt(g.XAdvance), roundInt(g.XOffset), roundInt(g.YOffset))
	}
	return b.String()
}

func roundInt(v float32) int { return int(math.Round(float64(v))) }
