package bbcode

// Segment is one node of a parsed document: Text, Decorated, Quote, Code,
// List, Link or Image.
type Segment interface {
	segment()
}

// Text is unadorned text.
type Text string

// Decorated is a span of segments with a style applied.
type Decorated struct {
	Style    DecorationStyle
	Children []Segment
}

// Quote is a block quote, optionally attributed to someone.
type Quote struct {
	Attribution string
	// Attributed distinguishes [quote=""] from a plain [quote].
	Attributed bool
	Children   []Segment
}

// Code is a verbatim block; its body is never parsed for markup.
type Code string

// List is a list of items, each a sequence of segments.
type List struct {
	Style ListStyle
	Items [][]Segment
}

// Link is a hyperlink whose display text may contain further markup.
type Link struct {
	Target   string
	Children []Segment
}

// Image references an image by source.
type Image struct {
	Src string
}

func (Text) segment()      {}
func (Decorated) segment() {}
func (Quote) segment()     {}
func (Code) segment()      {}
func (List) segment()      {}
func (Link) segment()      {}
func (Image) segment()     {}

// RGB is an sRGB color with 8-bit channels, as in CSS.
type RGB struct {
	R, G, B uint8
}

// DecorationKind selects the style of a Decorated span.
type DecorationKind uint8

const (
	// Bold text.
	Bold DecorationKind = iota
	// Italic text.
	Italic
	// Underline text.
	Underline
	// Center horizontally.
	Center
	// Color uses DecorationStyle.Color.
	Color
	// Size uses DecorationStyle.Size.
	Size
)

const (
	minSize = 2
	maxSize = 29
)

// DecorationStyle describes how a Decorated span is styled. Color is only
// meaningful for Color spans and Size only for Size spans.
type DecorationStyle struct {
	Kind  DecorationKind
	Color RGB
	Size  int
}

// Styled returns the parameterless style for kind.
func Styled(kind DecorationKind) DecorationStyle {
	return DecorationStyle{Kind: kind}
}

// ColorStyle returns a Color style.
func ColorStyle(c RGB) DecorationStyle {
	return DecorationStyle{Kind: Color, Color: c}
}

// SizeStyle returns a Size style. It reports false unless 2 <= n <= 29.
func SizeStyle(n int) (DecorationStyle, bool) {
	if n < minSize || n > maxSize {
		return DecorationStyle{}, false
	}
	return DecorationStyle{Kind: Size, Size: n}, true
}

// ListStyle is the general appearance of a list.
type ListStyle uint8

const (
	// Unordered items, usually marked with bullets (CSS disc).
	Unordered ListStyle = iota
	// Numeric items numbered in increasing order (CSS decimal).
	Numeric
	// Alphabetic items marked with latin letters (CSS lower-alpha).
	Alphabetic
)

func (k DecorationKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Center:
		return "center"
	case Color:
		return "color"
	case Size:
		return "size"
	default:
		return "unknown"
	}
}

func (s ListStyle) String() string {
	switch s {
	case Unordered:
		return "unordered"
	case Numeric:
		return "numeric"
	case Alphabetic:
		return "alphabetic"
	default:
		return "unknown"
	}
}
