package bbcode

import "strconv"

type simpleTag struct {
	open  string
	close terminal
	kind  DecorationKind
}

var simpleTags = [...]simpleTag{
	{open: "[b]", close: boldClose, kind: Bold},
	{open: "[i]", close: italicClose, kind: Italic},
	{open: "[u]", close: underlineClose, kind: Underline},
	{open: "[center]", close: centerClose, kind: Center},
}

// decorated recognizes styled spans: [b], [i], [u], [center], [color=...]
// and [size=...].
func (s *state) decorated(in string) (Segment, string, bool) {
	for _, t := range simpleTags {
		rest, ok := tagFold(in, t.open)
		if !ok {
			continue
		}
		children, rest, ok := s.enclosed(rest, t.close)
		if !ok {
			// A later tag cannot share this opening literal.
			return nil, in, false
		}
		return Decorated{Style: Styled(t.kind), Children: children}, rest, true
	}
	if seg, rest, ok := s.color(in); ok {
		return seg, rest, true
	}
	return s.size(in)
}

// color recognizes [color=#RGB], [color=#RRGGBB] and [color=name].
func (s *state) color(in string) (Segment, string, bool) {
	rest, ok := tagFold(in, "[color=")
	if !ok {
		return nil, in, false
	}
	c, rest, ok := s.colorValue(rest)
	if !ok {
		return nil, in, false
	}
	if rest, ok = char(rest, ']'); !ok {
		return nil, in, false
	}
	children, rest, ok := s.enclosed(rest, colorClose)
	if !ok {
		return nil, in, false
	}
	return Decorated{Style: ColorStyle(c), Children: children}, rest, true
}

func (s *state) colorValue(in string) (RGB, string, bool) {
	if rest, ok := char(in, '#'); ok {
		digits, rest := takeWhile(rest, isHexDigit)
		c, ok := parseHexColor(digits)
		return c, rest, ok
	}
	name, rest := takeWhile(in, isAlnum)
	if name == "" {
		return RGB{}, in, false
	}
	c, ok := s.colors(name)
	return c, rest, ok
}

// size recognizes [size=N] for 2 <= N <= 29.
func (s *state) size(in string) (Segment, string, bool) {
	rest, ok := tagFold(in, "[size=")
	if !ok {
		return nil, in, false
	}
	digits, rest := takeWhile(rest, isDigit)
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return nil, in, false
	}
	style, ok := SizeStyle(int(n))
	if !ok {
		return nil, in, false
	}
	if rest, ok = char(rest, ']'); !ok {
		return nil, in, false
	}
	children, rest, ok := s.enclosed(rest, sizeClose)
	if !ok {
		return nil, in, false
	}
	return Decorated{Style: style, Children: children}, rest, true
}
