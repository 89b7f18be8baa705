package paint

// CompositeMode is the operator used to combine a popped group with what
// lies beneath it. Values follow the COLRv1 numbering.
type CompositeMode uint8

// Composite modes.
const (
	CompositeClear CompositeMode = iota
	CompositeSrc
	CompositeDest
	CompositeSrcOver
	CompositeDestOver
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestOut
	CompositeSrcAtop
	CompositeDestAtop
	CompositeXor
	CompositePlus
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeMultiply
	CompositeHSLHue
	CompositeHSLSaturation
	CompositeHSLColor
	CompositeHSLLuminosity

	compositeCount
)

var compositeNames = [compositeCount]string{
	"Clear", "Src", "Dest", "SrcOver", "DestOver",
	"SrcIn", "DestIn", "SrcOut", "DestOut", "SrcAtop",
	"DestAtop", "Xor", "Plus", "Screen", "Overlay",
	"Darken", "Lighten", "ColorDodge", "ColorBurn", "HardLight",
	"SoftLight", "Difference", "Exclusion", "Multiply", "HSLHue",
	"HSLSaturation", "HSLColor", "HSLLuminosity",
}

// String returns the mode name.
func (m CompositeMode) String() string {
	if m < compositeCount {
		return compositeNames[m]
	}
	return "Unknown"
}

// Valid reports whether m is a known mode.
func (m CompositeMode) Valid() bool { return m < compositeCount }

// IsPorterDuff reports whether m is one of the Porter-Duff operators
// (Clear through Plus), as opposed to a separable or non-separable blend.
func (m CompositeMode) IsPorterDuff() bool { return m <= CompositePlus }
