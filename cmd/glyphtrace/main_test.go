package main

import (
	"testing"

	tlang "github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphtrace/draw"
	"github.com/gogpu/glyphtrace/gotext"
	"github.com/gogpu/glyphtrace/paint"
)

func TestParseGlyphList(t *testing.T) {
	got, err := parseGlyphList("3, 17 42")
	if err != nil {
		t.Fatalf("parseGlyphList() error = %v", err)
	}
	want := []draw.GlyphID{3, 17, 42}
	if len(got) != len(want) {
		t.Fatalf("parseGlyphList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseGlyphList()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if _, err := parseGlyphList("3,x"); err == nil {
		t.Error("parseGlyphList(\"3,x\") error = nil")
	}
}

func TestParseCodepointToken(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"U+0041", 'A', false},
		{"u+1f600", '😀', false},
		{"0x66", 'f', false},
		{"69", 'i', false},
		{"", 0, true},
		{"U+D800", 0, true},
		{"U+110000", 0, true},
		{"zz", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCodepointToken(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCodepointToken(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCodepointToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRuneLabel(t *testing.T) {
	if got, want := runeLabel('A'), "U+0041 LATIN CAPITAL LETTER A"; got != want {
		t.Errorf("runeLabel('A') = %q, want %q", got, want)
	}
}

func TestParseLanguageAndScript(t *testing.T) {
	lang, err := parseLanguage("de-CH")
	if err != nil {
		t.Fatalf("parseLanguage() error = %v", err)
	}
	if lang != tlang.NewLanguage("de-CH") {
		t.Errorf("parseLanguage(\"de-CH\") = %q", lang)
	}
	if _, err := parseLanguage("not a tag!"); err == nil {
		t.Error("parseLanguage(invalid) error = nil")
	}

	scr, err := parseScript("")
	if err != nil || scr != 0 {
		t.Errorf("parseScript(\"\") = %v, %v, want 0, nil", scr, err)
	}
	scr, err = parseScript("Latn")
	if err != nil || scr != tlang.Latin {
		t.Errorf("parseScript(\"Latn\") = %v, %v, want Latin", scr, err)
	}
}

func TestFormatShaped(t *testing.T) {
	got := formatShaped([]gotext.Glyph{
		{ID: 36, Cluster: 0, XAdvance: 1366, XOffset: 0, YOffset: 0},
		{ID: 57, Cluster: 1, XAdvance: 1229.6, XOffset: -12.4, YOffset: 3},
	})
	want := "gid36=0@1366,0+0\ngid57=1@1230,-12+3\n"
	if got != want {
		t.Errorf("formatShaped() = %q, want %q", got, want)
	}
}

func TestRenderRun(t *testing.T) {
	f, err := gotext.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := f.Shape("Hi", gotext.ShapeOptions{Size: 32})
	if err != nil {
		t.Fatal(err)
	}
	c := renderRun(f, glyphs, runLayout{
		size:       32,
		margin:     4,
		foreground: paint.Color{R: 200, A: 255},
		background: paint.White,
	})

	img := c.RGBA()
	if img.Bounds().Dx() <= 8 || img.Bounds().Dy() != 48 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	inked := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+1] < 128 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("renderRun painted no glyph pixels")
	}
	if got := img.RGBAAt(0, 0); got.G != 255 {
		t.Errorf("corner = %v, want white background", got)
	}
}

func TestOutlineSummary(t *testing.T) {
	tests := []struct {
		trace string
		want  string
	}{
		{"", "empty"},
		{"M0,0L10,0L10,5ZM2,1L3,1L3,2Z", "contours 2 bounds 0,0 10,5"},
		{"M-1.5,2Q0,4 1.5,2Z", "contours 1 bounds -1.5,2 1.5,4"},
	}
	for _, tt := range tests {
		got, err := outlineSummary(tt.trace)
		if err != nil {
			t.Errorf("outlineSummary(%q) error = %v", tt.trace, err)
			continue
		}
		if got != tt.want {
			t.Errorf("outlineSummary(%q) = %q, want %q", tt.trace, got, tt.want)
		}
	}
	if _, err := outlineSummary("M1"); err == nil {
		t.Error("outlineSummary(\"M1\") error = nil")
	}
}
