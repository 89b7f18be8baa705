package gotext

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphtrace/draw"
)

// ShapeOptions controls Shape. The zero value shapes left-to-right at
// upem, guessing the script from the text.
type ShapeOptions struct {
	Direction di.Direction
	// Script is detected from the first non-space rune when zero.
	Script language.Script
	// Language defaults to "en".
	Language language.Language
	Features []shaping.FontFeature
	// Size is the font size in output units per em. Zero means upem, so
	// positions come out in font units.
	Size float32
}

// Glyph is one shaped glyph, positions in units of ShapeOptions.Size.
type Glyph struct {
	ID      draw.GlyphID
	Cluster int

	XAdvance, YAdvance float32
	XOffset, YOffset   float32
}

// Shape shapes text with the HarfBuzz shaper of go-text/typesetting.
func (f *Font) Shape(text string, opts ShapeOptions) ([]Glyph, error) {
	if text == "" {
		return nil, nil
	}
	runes := []rune(text)

	size := opts.Size
	if size <= 0 {
		size = float32(f.Upem())
	}
	script := opts.Script
	if script == 0 {
		script = detectScript(runes)
	}
	lang := opts.Language
	if lang == "" {
		lang = language.NewLanguage("en")
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    opts.Direction,
		Face:         font.NewFace(f.font),
		FontFeatures: opts.Features,
		Size:         fixed.Int26_6(size*64 + 0.5),
		Script:       script,
		Language:     lang,
	}

	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shapers.Put(hb)

	f.opts.log().Debug("gotext: shaped", "runes", len(runes), "glyphs", len(out.Glyphs), "script", script.String())
	return convertGlyphs(out.Glyphs, opts.Direction), nil
}

func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			ID:      draw.GlyphID(g.GlyphID),
			Cluster: g.TextIndex(),
			XOffset: fixedToFloat(g.XOffset),
			YOffset: fixedToFloat(g.YOffset),
		}
		if dir.IsVertical() {
			out[i].YAdvance = fixedToFloat(g.Advance)
		} else {
			out[i].XAdvance = fixedToFloat(g.Advance)
		}
	}
	return out
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
