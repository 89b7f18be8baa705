// Command glyphtrace prints outline and paint traces of font glyphs,
// shapes text and renders colour glyphs to PNG.
//
//	glyphtrace draw NotoSans.ttf "fi"
//	glyphtrace paint NotoColorEmoji.ttf "😀" --foreground "#336699"
//	glyphtrace shape NotoSans.ttf "office" --features "-liga"
//	glyphtrace render NotoColorEmoji.ttf "😀🎉" -o out.png -s 128
//	glyphtrace check internal/tracecmp/testdata
//	glyphtrace repl NotoSans.ttf
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/gogpu/glyphtrace"
)

func main() {
	initDisplay()

	commando.
		SetExecutableName("glyphtrace").
		SetVersion("v0.1.0").
		SetDescription("Record how a font engine draws and paints glyphs.")

	commando.
		Register("draw").
		SetShortDescription("print outline traces").
		SetDescription("Print the outline trace of every glyph of a text or glyph list.").
		AddArgument("font", "font file path", "").
		AddArgument("text", "text whose glyphs are traced", "").
		AddFlag("glyphs,g", "glyph ids instead of text (e.g. 3,17,42)", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (e.g. U+0066,U+0069)", commando.String, "-").
		AddFlag("engine,e", "outline engine: gotext|sfnt", commando.String, "gotext").
		AddFlag("workers,w", "concurrent glyph sessions (0 uses GOMAXPROCS)", commando.Int, 0).
		AddFlag("bounds,b", "also print contour count and bounding box", commando.Bool, nil).
		AddFlag("verbose,V", "log dispatch decisions to stderr", commando.Bool, nil).
		SetAction(runDrawCommand)

	commando.
		Register("paint").
		SetShortDescription("print paint traces").
		SetDescription("Print the paint trace of every glyph of a text or glyph list.").
		AddArgument("font", "font file path", "").
		AddArgument("text", "text whose glyphs are painted", "").
		AddFlag("glyphs,g", "glyph ids instead of text (e.g. 3,17,42)", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (e.g. U+1F600)", commando.String, "-").
		AddFlag("foreground,f", "foreground colour #rrggbb[aa]", commando.String, "#000000").
		AddFlag("workers,w", "concurrent glyph sessions (0 uses GOMAXPROCS)", commando.Int, 0).
		AddFlag("verbose,V", "log dispatch decisions to stderr", commando.Bool, nil).
		SetAction(runPaintCommand)

	commando.
		Register("shape").
		SetShortDescription("shape text").
		SetDescription("Shape text at upem and print gid<id>=<cluster>@<advance>,<x offset>+<y offset> per glyph.").
		AddArgument("font", "font file path", "").
		AddArgument("text", "text to shape", "").
		AddFlag("codepoints,c", "codepoints instead of text (e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("features,F", "feature list (e.g. kern=0,+liga,-calt)", commando.String, "kern,liga").
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Arab); empty guesses", commando.String, "").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, ar)", commando.String, "en").
		AddFlag("rtl,r", "shape right-to-left", commando.Bool, nil).
		AddFlag("verbose,V", "log dispatch decisions to stderr", commando.Bool, nil).
		SetAction(runShapeCommand)

	commando.
		Register("render").
		SetShortDescription("render text to PNG").
		SetDescription("Shape text and paint every glyph into a PNG image.").
		AddArgument("font", "font file path", "").
		AddArgument("text", "text to render", "").
		AddFlag("codepoints,c", "codepoints instead of text (e.g. U+1F600)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "glyphtrace.png").
		AddFlag("size,s", "font size in pixels per em", commando.Int, 64).
		AddFlag("margin,m", "margin around the text in pixels", commando.Int, 8).
		AddFlag("foreground,f", "foreground colour #rrggbb[aa]", commando.String, "#000000").
		AddFlag("background,b", "background colour #rrggbb[aa]", commando.String, "#ffffff00").
		AddFlag("features,F", "feature list (e.g. kern=0,+liga,-calt)", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, ar)", commando.String, "en").
		AddFlag("rtl,r", "shape right-to-left", commando.Bool, nil).
		AddFlag("verbose,V", "log dispatch decisions to stderr", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("check").
		SetShortDescription("run trace fixtures").
		SetDescription("Replay JSON trace fixtures and compare the traces byte for byte.").
		AddArgument("dir", "fixture directory", "internal/tracecmp/testdata").
		SetAction(runCheckCommand)

	commando.
		Register("repl").
		SetShortDescription("interactive mode").
		SetDescription("Trace glyphs of a font interactively.").
		AddArgument("font", "font file path", "").
		AddFlag("verbose,V", "log dispatch decisions to stderr", commando.Bool, nil).
		SetAction(runReplCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupLogging installs a text logger on stderr when --verbose is set.
func setupLogging(flags map[string]commando.FlagValue) {
	if f, ok := flags["verbose"]; ok && mustFlagBool(f, "verbose") {
		glyphtrace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...any) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
