package textstate

import "github.com/gogpu/textstate/shape"

// Align and Wrap are the shape package's horizontal alignment and
// wrapping modes, re-exported so callers building styles import one
// package.
type (
	Align = shape.Align
	Wrap  = shape.Wrap
)

const (
	AlignStart  = shape.AlignStart
	AlignLeft   = shape.AlignLeft
	AlignCenter = shape.AlignCenter
	AlignRight  = shape.AlignRight

	WrapNone  = shape.WrapNone
	WrapWord  = shape.WrapWord
	WrapGlyph = shape.WrapGlyph
)

// VAlign selects vertical alignment of the content within the outer
// size. It is applied as a post-shaping offset when mapping layout
// geometry to screen space and never affects the shaped buffer itself.
type VAlign uint8

const (
	// VAlignNone pins content to the top and enables vertical
	// scrolling. The other modes disable it.
	VAlignNone VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// String returns the name of the vertical alignment mode.
func (v VAlign) String() string {
	switch v {
	case VAlignNone:
		return "None"
	case VAlignTop:
		return "Top"
	case VAlignMiddle:
		return "Middle"
	case VAlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Style describes how a text state shapes and presents its content.
// It is a value type compared with == to detect change; assigning a
// style that differs in any field invalidates the cached layout.
type Style struct {
	// FontSize is the font size in pixels. Must be positive.
	FontSize float64 `json:"fontSize"`

	// Color is the fill color for glyphs. The core never paints; the
	// color travels with the style for the caller's renderer.
	Color Color `json:"color"`

	// LineHeight is a multiplier of FontSize giving the vertical
	// advance between lines.
	LineHeight float64 `json:"lineHeight"`

	// Align is the horizontal alignment of lines.
	Align Align `json:"align"`

	// VAlign is the vertical alignment of the content block.
	VAlign VAlign `json:"valign"`

	// Wrap is the soft-wrapping mode.
	Wrap Wrap `json:"wrap"`

	// Family is a comma-separated font family query, resolved against
	// the loaded fonts at shape time.
	Family string `json:"family"`
}

// DefaultStyle returns the style used by states created without one:
// 16px white text at 1.5 line height, unwrapped.
func DefaultStyle() Style {
	return Style{
		FontSize:   16,
		Color:      RGB(255, 255, 255),
		LineHeight: 1.5,
		Align:      AlignStart,
		VAlign:     VAlignNone,
		Wrap:       WrapNone,
	}
}

// LineHeightPx returns the vertical advance between lines in pixels.
func (s Style) LineHeightPx() float64 {
	return s.FontSize * s.LineHeight
}

// WithFontSize returns a copy of the style with the font size replaced.
func (s Style) WithFontSize(size float64) Style {
	s.FontSize = size
	return s
}

// WithColor returns a copy of the style with the color replaced.
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// WithLineHeight returns a copy of the style with the line height
// multiplier replaced.
func (s Style) WithLineHeight(h float64) Style {
	s.LineHeight = h
	return s
}

// WithAlign returns a copy of the style with the horizontal alignment
// replaced.
func (s Style) WithAlign(a Align) Style {
	s.Align = a
	return s
}

// WithVAlign returns a copy of the style with the vertical alignment
// replaced.
func (s Style) WithVAlign(v VAlign) Style {
	s.VAlign = v
	return s
}

// WithWrap returns a copy of the style with the wrap mode replaced.
func (s Style) WithWrap(w Wrap) Style {
	s.Wrap = w
	return s
}

// WithFamily returns a copy of the style with the font family query
// replaced.
func (s Style) WithFamily(family string) Style {
	s.Family = family
	return s
}
