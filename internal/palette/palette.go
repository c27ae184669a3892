// Package palette holds the ANSI SGR sequences behind the built-in themes.
package palette

import "strconv"

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Faint     = "\x1b[2m"
)

// Palette is a set of foreground color prefixes per semantic role.
type Palette struct {
	Text        string
	Strong      string
	Emphasis    string
	Underline   string
	Quote       string
	QuoteBar    string
	Attribution string
	CodeBlock   string
	ListMarker  string
	LinkText    string
	LinkURL     string
	Image       string
}

// FG returns the 24-bit foreground sequence for r, g, b.
func FG(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

var (
	PaletteDefault = Palette{
		Text:        "",
		Strong:      FG(0xff, 0xd7, 0x87),
		Emphasis:    FG(0x87, 0xd7, 0xff),
		Underline:   "",
		Quote:       FG(0xa8, 0xa8, 0xa8),
		QuoteBar:    FG(0x5f, 0x87, 0xaf),
		Attribution: FG(0x87, 0xaf, 0xd7),
		CodeBlock:   FG(0xaf, 0xd7, 0x87),
		ListMarker:  FG(0xff, 0x87, 0x5f),
		LinkText:    FG(0x5f, 0xaf, 0xff),
		LinkURL:     FG(0x80, 0x80, 0x80),
		Image:       FG(0xd7, 0x87, 0xd7),
	}

	PaletteDracula = Palette{
		Text:        FG(0xf8, 0xf8, 0xf2),
		Strong:      FG(0xff, 0xb8, 0x6c),
		Emphasis:    FG(0xf1, 0xfa, 0x8c),
		Underline:   FG(0xf8, 0xf8, 0xf2),
		Quote:       FG(0x62, 0x72, 0xa4),
		QuoteBar:    FG(0xbd, 0x93, 0xf9),
		Attribution: FG(0xff, 0x79, 0xc6),
		CodeBlock:   FG(0x50, 0xfa, 0x7b),
		ListMarker:  FG(0xff, 0x79, 0xc6),
		LinkText:    FG(0x8b, 0xe9, 0xfd),
		LinkURL:     FG(0x62, 0x72, 0xa4),
		Image:       FG(0xbd, 0x93, 0xf9),
	}

	PaletteNord = Palette{
		Text:        FG(0xd8, 0xde, 0xe9),
		Strong:      FG(0x88, 0xc0, 0xd0),
		Emphasis:    FG(0x8f, 0xbc, 0xbb),
		Underline:   FG(0xd8, 0xde, 0xe9),
		Quote:       FG(0x4c, 0x56, 0x6a),
		QuoteBar:    FG(0x5e, 0x81, 0xac),
		Attribution: FG(0x81, 0xa1, 0xc1),
		CodeBlock:   FG(0xa3, 0xbe, 0x8c),
		ListMarker:  FG(0xb4, 0x8e, 0xad),
		LinkText:    FG(0x88, 0xc0, 0xd0),
		LinkURL:     FG(0x4c, 0x56, 0x6a),
		Image:       FG(0xeb, 0xcb, 0x8b),
	}

	PaletteGruvbox = Palette{
		Text:        FG(0xeb, 0xdb, 0xb2),
		Strong:      FG(0xfa, 0xbd, 0x2f),
		Emphasis:    FG(0x83, 0xa5, 0x98),
		Underline:   FG(0xeb, 0xdb, 0xb2),
		Quote:       FG(0x92, 0x83, 0x74),
		QuoteBar:    FG(0xd6, 0x5d, 0x0e),
		Attribution: FG(0xfe, 0x80, 0x19),
		CodeBlock:   FG(0xb8, 0xbb, 0x26),
		ListMarker:  FG(0xfb, 0x49, 0x34),
		LinkText:    FG(0x8e, 0xc0, 0x7c),
		LinkURL:     FG(0x92, 0x83, 0x74),
		Image:       FG(0xd3, 0x86, 0x9b),
	}
)
