package bbcode

// list recognizes [list][*] One [*] Two[/list], with [list=1] for numeric
// and [list=a] for alphabetic items. Each item runs until the next [*] or
// the closer.
func (s *state) list(in string) (Segment, string, bool) {
	style, rest, ok := listHead(in)
	if !ok {
		return nil, in, false
	}
	var items [][]Segment
	for {
		next, ok := tagFold(rest, "[*]")
		if !ok {
			break
		}
		var item []Segment
		item, rest = s.body(next, listItemEnd)
		items = append(items, item)
	}
	if rest, ok = tagFold(rest, "[/list]"); !ok {
		return nil, in, false
	}
	return List{Style: style, Items: items}, rest, true
}

func listHead(in string) (ListStyle, string, bool) {
	rest, ok := tagFold(in, "[list")
	if !ok {
		return 0, in, false
	}
	style := Unordered
	if r, ok := char(rest, '='); ok {
		switch {
		case len(r) > 0 && r[0] == 'a':
			style = Alphabetic
		case len(r) > 0 && r[0] == '1':
			style = Numeric
		default:
			return 0, in, false
		}
		rest = r[1:]
	}
	if rest, ok = char(rest, ']'); !ok {
		return 0, in, false
	}
	return style, rest, true
}
