package bbcode

import "strings"

// url recognizes links in three forms, tried in order:
//
//	[url]http://example.com/[/url]       target is the body
//	[url="http://example.com/"]Foo[/url] quote-delimited target
//	[url=example.com]Bar[/url]           bare target
func (s *state) url(in string) (Segment, string, bool) {
	if target, rest, ok := verbatim(in, "[url]", "[/url]"); ok {
		link := Link{Target: target}
		if target != "" {
			link.Children = []Segment{Text(target)}
		}
		return link, rest, true
	}
	if seg, rest, ok := s.urlParam(in, `[url="`, `"]`); ok {
		return seg, rest, true
	}
	return s.urlParam(in, "[url=", "]")
}

// urlParam matches open, takes the target up to the first end and parses
// the display text up to [/url].
func (s *state) urlParam(in, open, end string) (Segment, string, bool) {
	rest, ok := tagFold(in, open)
	if !ok {
		return nil, in, false
	}
	i := strings.Index(rest, end)
	if i < 0 {
		return nil, in, false
	}
	target := rest[:i]
	children, rest, ok := s.enclosed(rest[i+len(end):], urlClose)
	if !ok {
		return nil, in, false
	}
	return Link{Target: target, Children: children}, rest, true
}
