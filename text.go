package bbcode

import "unicode/utf8"

// text returns the longest run of plain text at the front of in: everything
// up to the next offset where term matches or a tag is recognized, or the
// rest of the input. It never returns an empty run; failing tells the caller
// that the enclosing body is finished.
func (s *state) text(in string, term terminal) (string, string, bool) {
	if len(in) == 0 || term.match(in) {
		return "", in, false
	}
	// The caller already tried every tag at offset 0.
	_, i := utf8.DecodeRuneInString(in)
	for i < len(in) {
		rest := in[i:]
		if term.match(rest) {
			return in[:i], rest, true
		}
		if _, _, ok := s.tag(rest); ok {
			return in[:i], rest, true
		}
		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	return in, in[len(in):], true
}
