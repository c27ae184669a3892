// Package bbcode translates forum-style BBCode markup into HTML.
//
// Input is parsed into an immutable tree of segments by a set of
// recursive-descent recognizers, one per tag. Markup that cannot be
// recognized (an opening tag without its closer, a bad parameter) is kept as
// plain text instead of failing the parse, so Parse never returns an error.
// The tree is rendered through the Renderer visitor; HTMLRenderer emits
// escaped HTML and ANSIRenderer previews the document in a terminal.
//
// Core properties:
//   - Parse is total: every input yields a tree
//   - Text leaves are substrings of the input, never copies
//   - Tag names match ASCII case-insensitively
//   - Renderer errors abort rendering and are returned as-is
//
// Example:
//
//	segments := bbcode.Parse("[b]Hello[/b] [url=https://example.com]world[/url]")
//	if err := bbcode.RenderSegments(bbcode.NewHTMLRenderer(os.Stdout), segments); err != nil {
//		log.Fatal(err)
//	}
//
// Parsing re-tries every recognizer at every candidate position of a text
// run, which is quadratic in the worst case. Callers accepting untrusted
// input should cap its size, see WithMaxInputBytes.
package bbcode
