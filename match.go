package bbcode

// Tag literals are ASCII, so matching folds ASCII letters only. Unicode case
// folding (as in strings.EqualFold) would let e.g. the Kelvin sign match 'k'.

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// hasPrefixFold reports whether s begins with lit, ignoring ASCII case.
func hasPrefixFold(s, lit string) bool {
	if len(s) < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if lowerASCII(s[i]) != lowerASCII(lit[i]) {
			return false
		}
	}
	return true
}

// tagFold consumes lit from the front of in.
func tagFold(in, lit string) (string, bool) {
	if !hasPrefixFold(in, lit) {
		return in, false
	}
	return in[len(lit):], true
}

// char consumes the single byte c from the front of in, matching exactly.
func char(in string, c byte) (string, bool) {
	if len(in) == 0 || in[0] != c {
		return in, false
	}
	return in[1:], true
}

// indexFold returns the offset of the first occurrence of lit in s, ignoring
// ASCII case, or -1.
func indexFold(s, lit string) int {
	for i := 0; i+len(lit) <= len(s); i++ {
		if hasPrefixFold(s[i:], lit) {
			return i
		}
	}
	return -1
}

// verbatim matches open, then takes everything up to the first close as the
// body without parsing it.
func verbatim(in, open, close string) (body, rest string, ok bool) {
	rest, ok = tagFold(in, open)
	if !ok {
		return "", in, false
	}
	i := indexFold(rest, close)
	if i < 0 {
		return "", in, false
	}
	return rest[:i], rest[i+len(close):], true
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlnum(b byte) bool {
	return isDigit(b) || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// takeWhile splits in after the longest prefix of bytes satisfying pred.
func takeWhile(in string, pred func(byte) bool) (string, string) {
	i := 0
	for i < len(in) && pred(in[i]) {
		i++
	}
	return in[:i], in[i:]
}
