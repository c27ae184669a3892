package bbcode

import "strings"

// quote recognizes [quote]...[/quote] and [quote="name"]...[/quote].
func (s *state) quote(in string) (Segment, string, bool) {
	rest, ok := tagFold(in, "[quote")
	if !ok {
		return nil, in, false
	}
	var q Quote
	if strings.HasPrefix(rest, `="`) {
		end := strings.IndexByte(rest[2:], '"')
		if end < 0 {
			return nil, in, false
		}
		q.Attribution = rest[2 : 2+end]
		q.Attributed = true
		rest = rest[2+end+1:]
	}
	if rest, ok = char(rest, ']'); !ok {
		return nil, in, false
	}
	q.Children, rest, ok = s.enclosed(rest, quoteClose)
	if !ok {
		return nil, in, false
	}
	return q, rest, true
}
