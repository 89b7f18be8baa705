package paint

import "github.com/gogpu/glyphtrace/draw"

// Kind identifies the type of a paint event.
type Kind uint8

const (
	// Structure events
	KindPushTransform Kind = iota // Push a 2x3 affine transform
	KindPopTransform              // Pop the innermost transform
	KindPushClipGlyph             // Clip to a glyph outline
	KindPushClipRect              // Clip to an axis-aligned rectangle
	KindPopClip                   // Pop the innermost clip
	KindPushGroup                 // Start an offscreen group
	KindPopGroup                  // Composite the innermost group

	// Fill events
	KindColorGlyph     // Paint a whole colour glyph
	KindColor          // Fill with a solid colour
	KindImage          // Fill with an image
	KindLinearGradient // Fill with a linear gradient
	KindRadialGradient // Fill with a two-circle radial gradient
	KindSweepGradient  // Fill with a sweep gradient

	// Queries
	KindCustomPaletteColor // Ask for a palette override
)

var kindNames = [...]string{
	KindPushTransform:      "PushTransform",
	KindPopTransform:       "PopTransform",
	KindPushClipGlyph:      "PushClipGlyph",
	KindPushClipRect:       "PushClipRect",
	KindPopClip:            "PopClip",
	KindPushGroup:          "PushGroup",
	KindPopGroup:           "PopGroup",
	KindColorGlyph:         "ColorGlyph",
	KindColor:              "Color",
	KindImage:              "Image",
	KindLinearGradient:     "LinearGradient",
	KindRadialGradient:     "RadialGradient",
	KindSweepGradient:      "SweepGradient",
	KindCustomPaletteColor: "CustomPaletteColor",
}

// String returns the event name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsPush reports whether the event opens a nesting level.
func (k Kind) IsPush() bool {
	return k == KindPushTransform || k == KindPushClipGlyph || k == KindPushClipRect || k == KindPushGroup
}

// IsPop reports whether the event closes a nesting level.
func (k Kind) IsPop() bool {
	return k == KindPopTransform || k == KindPopClip || k == KindPopGroup
}

// PaintEvent is one paint callback as a value.
// The set of implementations is closed.
type PaintEvent interface {
	Kind() Kind
	paintEvent()
}

// PushTransform multiplies the current transform by
// [XX XY DX; YX YY DY].
type PushTransform struct {
	XX, YX, XY, YY, DX, DY float32
}

// PopTransform restores the transform in effect before the matching push.
type PopTransform struct{}

// PushClipGlyph intersects the clip with the outline of Glyph.
type PushClipGlyph struct {
	Glyph draw.GlyphID
}

// PushClipRect intersects the clip with a rectangle in current space.
type PushClipRect struct {
	XMin, YMin, XMax, YMax float32
}

// PopClip restores the clip in effect before the matching push.
type PopClip struct{}

// PushGroup redirects painting into a new transparent layer.
type PushGroup struct{}

// PopGroup composites the innermost layer onto the one below.
type PopGroup struct {
	Mode CompositeMode
}

// ColorGlyph asks the consumer to paint Glyph as a whole.
type ColorGlyph struct {
	Glyph draw.GlyphID
}

// SolidColor fills the current clip. When UseForeground is set the
// foreground colour is used with Color.A applied as extra alpha.
type SolidColor struct {
	UseForeground bool
	Color         Color
}

// Image fills the current clip with an encoded image.
type Image struct {
	Blob          []byte
	Width, Height uint32
	Format        ImageFormat
	Slant         float32
	Extents       Extents
}

// LinearGradient is a COLRv1 three-anchor linear gradient.
type LinearGradient struct {
	Line       ColorLine
	P0, P1, P2 Point
}

// RadialGradient interpolates between two circles.
type RadialGradient struct {
	Line ColorLine
	C0   Point
	R0   float32
	C1   Point
	R1   float32
}

// SweepGradient sweeps stops around Center between two angles in radians.
type SweepGradient struct {
	Line                 ColorLine
	Center               Point
	StartAngle, EndAngle float32
}

// CustomPaletteColor asks for an override of palette entry Index.
type CustomPaletteColor struct {
	Index uint32
}

func (PushTransform) Kind() Kind      { return KindPushTransform }
func (PopTransform) Kind() Kind       { return KindPopTransform }
func (PushClipGlyph) Kind() Kind      { return KindPushClipGlyph }
func (PushClipRect) Kind() Kind       { return KindPushClipRect }
func (PopClip) Kind() Kind            { return KindPopClip }
func (PushGroup) Kind() Kind          { return KindPushGroup }
func (PopGroup) Kind() Kind           { return KindPopGroup }
func (ColorGlyph) Kind() Kind         { return KindColorGlyph }
func (SolidColor) Kind() Kind         { return KindColor }
func (Image) Kind() Kind              { return KindImage }
func (LinearGradient) Kind() Kind     { return KindLinearGradient }
func (RadialGradient) Kind() Kind     { return KindRadialGradient }
func (SweepGradient) Kind() Kind      { return KindSweepGradient }
func (CustomPaletteColor) Kind() Kind { return KindCustomPaletteColor }

func (PushTransform) paintEvent()      {}
func (PopTransform) paintEvent()       {}
func (PushClipGlyph) paintEvent()      {}
func (PushClipRect) paintEvent()       {}
func (PopClip) paintEvent()            {}
func (PushGroup) paintEvent()          {}
func (PopGroup) paintEvent()           {}
func (ColorGlyph) paintEvent()         {}
func (SolidColor) paintEvent()         {}
func (Image) paintEvent()              {}
func (LinearGradient) paintEvent()     {}
func (RadialGradient) paintEvent()     {}
func (SweepGradient) paintEvent()      {}
func (CustomPaletteColor) paintEvent() {}
