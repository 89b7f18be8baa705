// Package raster paints colour-glyph sessions into images.
//
// [Canvas] implements paint.Funcs. Where paint.Recorder describes a
// session, Canvas executes it: clips become coverage masks rasterized
// with golang.org/x/image/vector, groups become offscreen layers combined
// with the COLRv1 composite modes, and gradients are sampled per pixel.
//
//	c := raster.NewCanvas(64, 64,
//	    raster.WithGlyphs(font),
//	    raster.WithTransform(raster.FontTransform(float32(font.Upem()), 48, 8, 52)),
//	)
//	if err := font.PaintGlyph(gid, c, paint.DefaultPaintOptions()); err != nil {
//	    return err
//	}
//	png.Encode(w, c.RGBA())
//
// Pixels are sampled at their centres without supersampling; clip edges
// are the only anti-aliased boundaries.
package raster
