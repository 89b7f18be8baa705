package paint

// Point is a 2D point in font units.
type Point struct {
	X, Y float32
}

// ImageFormat is the four-byte tag identifying an image payload.
type ImageFormat [4]byte

// Known image formats.
var (
	FormatPNG  = ImageFormat{'p', 'n', 'g', ' '}
	FormatSVG  = ImageFormat{'s', 'v', 'g', ' '}
	FormatBGRA = ImageFormat{'B', 'G', 'R', 'A'}
)

// String returns the tag as four characters.
func (f ImageFormat) String() string { return string(f[:]) }

// Extents is a glyph or image box in font units, y up: the top-left corner
// is (XBearing, YBearing) and Height is usually negative.
type Extents struct {
	XBearing, YBearing int32
	Width, Height      int32
}
