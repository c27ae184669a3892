package bbcode

// terminal is the set of literals that end the body being scanned. A nil
// terminal never matches (top level), one literal ends a single-tag body and
// list items stop at either the next bullet or the list closer.
type terminal []string

var (
	boldClose      = terminal{"[/b]"}
	italicClose    = terminal{"[/i]"}
	underlineClose = terminal{"[/u]"}
	centerClose    = terminal{"[/center]"}
	colorClose     = terminal{"[/color]"}
	sizeClose      = terminal{"[/size]"}
	quoteClose     = terminal{"[/quote]"}
	urlClose       = terminal{"[/url]"}
	listItemEnd    = terminal{"[*]", "[/list]"}
)

func (t terminal) match(in string) bool {
	for _, lit := range t {
		if hasPrefixFold(in, lit) {
			return true
		}
	}
	return false
}
