package bbcode

import (
	"strings"

	"golang.org/x/image/colornames"
)

// CSSColor resolves a CSS named color (e.g. "red", "RebeccaPurple"), ignoring
// ASCII case.
func CSSColor(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// parseHexColor decodes "RGB" or "RRGGBB". In the short form each digit is
// doubled, so "81f" is 0x88, 0x11, 0xff.
func parseHexColor(digits string) (RGB, bool) {
	switch len(digits) {
	case 3:
		return RGB{
			R: hexValue(digits[0]) * 0x11,
			G: hexValue(digits[1]) * 0x11,
			B: hexValue(digits[2]) * 0x11,
		}, true
	case 6:
		return RGB{
			R: hexValue(digits[0])<<4 | hexValue(digits[1]),
			G: hexValue(digits[2])<<4 | hexValue(digits[3]),
			B: hexValue(digits[4])<<4 | hexValue(digits[5]),
		}, true
	default:
		return RGB{}, false
	}
}

// hexValue assumes isHexDigit(b).
func hexValue(b byte) uint8 {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	default:
		return b - '0'
	}
}

// Hex formats c as CSS "#rrggbb".
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}
