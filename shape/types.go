package shape

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Wrap specifies how text breaks into lines within the available width.
type Wrap int

const (
	// WrapNone disables wrapping; text may overflow the available width.
	WrapNone Wrap = iota
	// WrapWord breaks lines at word boundaries, within words only when
	// a word alone cannot fit.
	WrapWord
	// WrapGlyph breaks lines anywhere, including within words.
	WrapGlyph
)

// String returns the string representation of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapGlyph:
		return "Glyph"
	default:
		return unknownStr
	}
}

// Align specifies horizontal line placement within the available width.
type Align int

const (
	// AlignStart places lines at the line start with no offset. This is
	// the only mode under which horizontal scrolling makes sense.
	AlignStart Align = iota
	// AlignLeft aligns lines to the left edge.
	AlignLeft
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}
