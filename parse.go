package bbcode

// ColorResolver maps a CSS color name to its sRGB components.
type ColorResolver func(name string) (RGB, bool)

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithColorResolver replaces the color-name table used by [color=name].
func WithColorResolver(resolve ColorResolver) ParserOption {
	return func(p *Parser) {
		if resolve != nil {
			p.colors = resolve
		}
	}
}

// Parser turns BBCode into segments. A Parser is immutable and safe for
// concurrent use.
type Parser struct {
	colors ColorResolver
}

var defaultParser = NewParser()

// NewParser returns a Parser using the CSS color names unless overridden.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{colors: CSSColor}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Parse parses text with the default parser.
func Parse(text string) []Segment {
	return defaultParser.Parse(text)
}

// Parse parses text into top-level segments. It never fails: markup that
// does not form a complete tag is returned as Text. The returned segments
// share memory with text.
func (p *Parser) Parse(text string) []Segment {
	s := state{colors: p.colors}
	return s.parse(text)
}

func (s *state) parse(text string) []Segment {
	var out []Segment
	for len(text) > 0 {
		seg, rest, ok := s.segment(text, nil)
		if !ok {
			// The scanner always consumes non-empty input at top level.
			panic("bbcode: parse made no progress")
		}
		out = append(out, seg)
		text = rest
	}
	return out
}

type tagResult struct {
	seg  Segment
	rest string
	ok   bool
}

// state is the scratch space of a single Parse call. Recognizer outcomes
// depend only on the input tail, and every tail is a suffix of the parsed
// text, so they are memoized by remaining length.
type state struct {
	colors ColorResolver
	memo   map[int]tagResult
	// noMemo recomputes every tag attempt; exponential on nested
	// unterminated tags.
	noMemo bool
}

// tag tries every recognizer at the front of in.
func (s *state) tag(in string) (Segment, string, bool) {
	// Every tag starts with '['.
	if len(in) == 0 || in[0] != '[' {
		return nil, in, false
	}
	if s.noMemo {
		return s.recognize(in)
	}
	if r, ok := s.memo[len(in)]; ok {
		return r.seg, r.rest, r.ok
	}
	seg, rest, ok := s.recognize(in)
	r := tagResult{seg: seg, rest: rest, ok: ok}
	if s.memo == nil {
		s.memo = make(map[int]tagResult)
	}
	s.memo[len(in)] = r
	return r.seg, r.rest, r.ok
}

// recognize runs the recognizers in priority order; the first success wins.
// A failed recognizer returns in unchanged.
func (s *state) recognize(in string) (Segment, string, bool) {
	if seg, rest, ok := s.decorated(in); ok {
		return seg, rest, true
	}
	if seg, rest, ok := s.code(in); ok {
		return seg, rest, true
	}
	if seg, rest, ok := s.image(in); ok {
		return seg, rest, true
	}
	if seg, rest, ok := s.list(in); ok {
		return seg, rest, true
	}
	if seg, rest, ok := s.quote(in); ok {
		return seg, rest, true
	}
	return s.url(in)
}

// segment is the dispatcher: a tag if one matches, otherwise plain text up
// to the next tag or terminal. It fails when in is empty or starts with
// the terminal, which ends the enclosing body.
func (s *state) segment(in string, term terminal) (Segment, string, bool) {
	if seg, rest, ok := s.tag(in); ok {
		return seg, rest, true
	}
	if text, rest, ok := s.text(in, term); ok {
		return Text(text), rest, true
	}
	return nil, in, false
}

// body collects segments until the dispatcher stops. The caller checks for
// its closing literal.
func (s *state) body(in string, term terminal) ([]Segment, string) {
	var out []Segment
	for {
		seg, rest, ok := s.segment(in, term)
		if !ok {
			return out, in
		}
		out = append(out, seg)
		in = rest
	}
}

// enclosed parses a recursive body terminated by term and consumes its
// closing literal, which is term's first entry.
func (s *state) enclosed(in string, term terminal) ([]Segment, string, bool) {
	children, rest := s.body(in, term)
	rest, ok := tagFold(rest, term[0])
	if !ok {
		return nil, in, false
	}
	return children, rest, true
}
