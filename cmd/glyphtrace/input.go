package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tlang "github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/gotext"
)

// target is one glyph to trace with a human readable label.
type target struct {
	gid   draw.GlyphID
	label string
}

func mustLoadFont(path string) *gotext.Font {
	path = strings.TrimSpace(path)
	if path == "" {
		fatalf("font path is required")
	}
	f, err := gotext.Load(path)
	if err != nil {
		fatalf("%v", err)
	}
	return f
}

// inputText returns the text argument, or the runes of --codepoints.
func inputText(textArg commando.ArgValue, flags map[string]commando.FlagValue) (string, error) {
	cp := "-"
	if f, ok := flags["codepoints"]; ok {
		cp = strings.TrimSpace(mustFlagString(f, "codepoints"))
	}
	if cp == "-" || cp == "" {
		return textArg.Value, nil
	}
	runes, err := parseCodepoints(cp)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// targets resolves --glyphs, or else maps every rune of the input through
// the font's cmap.
func targets(f *gotext.Font, args map[string]commando.ArgValue, flags map[string]commando.FlagValue) ([]target, error) {
	if g := strings.TrimSpace(mustFlagString(flags["glyphs"], "glyphs")); g != "-" && g != "" {
		gids, err := parseGlyphList(g)
		if err != nil {
			return nil, err
		}
		out := make([]target, len(gids))
		for i, gid := range gids {
			out[i] = target{gid: gid, label: fmt.Sprintf("gid%d", gid)}
		}
		return out, nil
	}
	text, err := inputText(args["text"], flags)
	if err != nil {
		return nil, err
	}
	return runeTargets(f, text), nil
}

func runeTargets(f *gotext.Font, text string) []target {
	var out []target
	for _, r := range text {
		gid, ok := f.NominalGlyph(r)
		if !ok {
			pterm.Warning.Println(fmt.Sprintf("no glyph for %s, using .notdef", runeLabel(r)))
		}
		out = append(out, target{gid: gid, label: runeLabel(r)})
	}
	return out
}

// runeLabel names r as "U+0041 LATIN CAPITAL LETTER A".
func runeLabel(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X %s", r, name)
}

func parseGlyphList(list string) ([]draw.GlyphID, error) {
	parts := splitCSVSpace(list)
	out := make([]draw.GlyphID, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid glyph id %q", p)
		}
		out = append(out, draw.GlyphID(n))
	}
	return out, nil
}

func parseCodepoints(list string) ([]rune, error) {
	parts := splitCSVSpace(list)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, fmt.Errorf("codepoint %q is not a Unicode scalar value", token)
	}
	return rune(u), nil
}

func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// parseLanguage validates a BCP 47 tag and converts it for go-text.
func parseLanguage(s string) (tlang.Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "en"
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	return tlang.NewLanguage(tag.String()), nil
}

// parseScript parses an ISO 15924 code; empty means guess from the text.
func parseScript(s string) (tlang.Script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	scr, err := tlang.ParseScript(s)
	if err != nil {
		return 0, fmt.Errorf("invalid script %q: %w", s, err)
	}
	return scr, nil
}

func parseFeatureFlag(flag commando.FlagValue) ([]shaping.FontFeature, error) {
	s := strings.TrimSpace(mustFlagString(flag, "features"))
	if s == "-" {
		return nil, nil
	}
	return gotext.ParseFeatures(s)
}
