// Package gotext drives the draw and paint contracts from
// github.com/go-text/typesetting.
//
// [Font] implements draw.Drawer and paint.Painter over a parsed font and
// shapes text with the HarfBuzz port of go-text. [SFNT] is an outline-only
// Drawer over golang.org/x/image/font/sfnt; tracing the same glyph through
// both is a cheap way to compare two font engines.
//
//	f, err := gotext.Load("NotoSans-Regular.ttf")
//	if err != nil {
//		return err
//	}
//	glyphs, err := f.Shape("office", gotext.ShapeOptions{})
//	for _, g := range glyphs {
//		trace, _ := glyphtrace.DrawTrace(f, g.ID)
//		fmt.Println(g.ID, trace)
//	}
//
// Outlines are emitted in font units with y pointing up.
package gotext
