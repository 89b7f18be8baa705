package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"

	"github.com/gogpu/glyphtrace"
	"github.com/gogpu/glyphtrace/gotext"
	"github.com/gogpu/glyphtrace/paint"
)

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupLogging(flags)
	f := mustLoadFont(args["font"].Value)

	repl, err := readline.New("glyphtrace > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()

	pterm.Info.Println("Quit with <ctrl>D or 'quit', list commands with 'help'")
	intp := &interp{font: f, fg: paint.Black}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// interp holds the state of an interactive session.
type interp struct {
	font *gotext.Font
	fg   paint.Color
}

const replHelp = `draw <text>    outline traces of the text's glyphs
paint <text>   paint traces of the text's glyphs
gid <ids>      outline and paint traces of glyph ids (e.g. gid 3,17)
shape <text>   shape the text at upem
fg <color>     set the foreground colour (#rrggbb[aa])
quit           leave`

func (in *interp) execute(line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		pterm.Println(replHelp)
	case "draw":
		for _, t := range runeTargets(in.font, rest) {
			tr, err := glyphtrace.DrawTrace(in.font, t.gid)
			if err != nil {
				return false, err
			}
			pterm.Printf("%s gid%d: %s\n", t.label, t.gid, tr)
		}
	case "paint":
		return false, in.paint(runeTargets(in.font, rest))
	case "gid":
		gids, err := parseGlyphList(rest)
		if err != nil {
			return false, err
		}
		for _, gid := range gids {
			tr, err := glyphtrace.DrawTrace(in.font, gid)
			if err != nil {
				return false, err
			}
			pterm.Printf("gid%d: %s\n", gid, tr)
		}
		tgs := make([]target, len(gids))
		for i, gid := range gids {
			tgs[i] = target{gid: gid, label: fmt.Sprintf("gid%d", gid)}
		}
		return false, in.paint(tgs)
	case "shape":
		glyphs, err := in.font.Shape(rest, gotext.ShapeOptions{})
		if err != nil {
			return false, err
		}
		pterm.Print(formatShaped(glyphs))
	case "fg":
		c, err := paint.ParseColor(rest)
		if err != nil {
			return false, err
		}
		in.fg = c
		pterm.Info.Println("foreground is " + c.String())
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (in *interp) paint(tgs []target) error {
	for _, t := range tgs {
		tr, err := glyphtrace.PaintTrace(in.font, t.gid, paint.PaintOptions{Foreground: in.fg})
		if err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("%s gid%d", t.label, t.gid))
		pterm.Print(tr)
	}
	return nil
}
