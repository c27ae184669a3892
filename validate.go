package bbcode

import (
	"errors"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInputTooLarge reports input over the configured size limit.
var ErrInputTooLarge = errors.New("input exceeds size limit")

// Repair returns src as a valid UTF-8 string, replacing invalid byte
// sequences with U+FFFD. src is copied exactly once, so the result (and any
// tree parsed from it) does not alias the caller's buffer.
func Repair(src []byte) string {
	if utf8.Valid(src) {
		return string(src)
	}
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), src)
	if err != nil {
		out = []byte(string([]rune(string(src))))
	}
	// out is freshly allocated and never written again.
	return unsafe.String(unsafe.SliceData(out), len(out))
}

func checkInputSize(n, limit int64) error {
	if limit > 0 && n > limit {
		return ErrInputTooLarge
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}
