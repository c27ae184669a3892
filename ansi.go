package bbcode

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/bbcode/internal/palette"
)

type blockKind uint8

const (
	blockDocument blockKind = iota
	blockCenter
	blockQuote
)

// block collects the lines of the document or of a nested quote or centered
// span; nested blocks are laid out into their parent when they end.
type block struct {
	kind        blockKind
	buf         strings.Builder
	width       int
	col         int
	atLineStart bool
	// space is whitespace held back until the next word, so wrapped lines
	// do not end in blanks.
	space       string
	indent      string
	attribution string
	attributed  bool
}

type ansiList struct {
	style      ListStyle
	next       int
	prevIndent string
}

type ansiLink struct {
	target string
	text   strings.Builder
}

var _ Renderer = (*ANSIRenderer)(nil)

// ANSIRenderer renders segments for a terminal: theme styles as SGR
// sequences, word wrapping at a fixed width, and OSC 8 hyperlinks when
// enabled. Output is buffered until Flush.
type ANSIRenderer struct {
	w        io.Writer
	styles   Styles
	plain    bool
	osc8     bool
	softWrap bool

	blocks []*block
	active []string
	lists  []ansiList
	links  []*ansiLink
}

// NewANSIRenderer creates a terminal renderer wrapping at width (0 disables
// wrapping). A nil theme selects DefaultTheme; a theme without styles
// produces plain text.
func NewANSIRenderer(w io.Writer, width int, theme Theme, opts ...RenderOption) *ANSIRenderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	cfg := newRenderConfig(opts)
	styles := theme.Styles()
	r := &ANSIRenderer{
		w:        w,
		styles:   styles,
		plain:    styles == (Styles{}),
		osc8:     cfg.osc8,
		softWrap: cfg.softWrap,
	}
	r.blocks = []*block{{kind: blockDocument, width: width, atLineStart: true}}
	return r
}

func (r *ANSIRenderer) top() *block {
	return r.blocks[len(r.blocks)-1]
}

func (r *ANSIRenderer) prefix() string {
	if r.plain {
		return ""
	}
	return r.styles.Text.Prefix + strings.Join(r.active, "")
}

// startLine writes lead at the beginning of the current line and restores
// the active styles.
func (r *ANSIRenderer) startLine(lead string) {
	b := r.top()
	b.buf.WriteString(lead)
	b.col = ansi.PrintableRuneWidth(lead)
	b.atLineStart = false
	b.buf.WriteString(r.prefix())
}

func (r *ANSIRenderer) ensureStarted() {
	if b := r.top(); b.atLineStart {
		r.startLine(b.indent)
	}
}

func (r *ANSIRenderer) newline() {
	b := r.top()
	if !r.plain && !b.atLineStart {
		b.buf.WriteString(palette.Reset)
	}
	b.buf.WriteByte('\n')
	b.col = 0
	b.atLineStart = true
	b.space = ""
}

func (r *ANSIRenderer) ensureLine() {
	b := r.top()
	if !b.atLineStart {
		r.newline()
	}
	b.space = ""
}

func (r *ANSIRenderer) flushSpace() {
	b := r.top()
	if b.space == "" {
		return
	}
	r.ensureStarted()
	b.buf.WriteString(b.space)
	b.col += len(b.space)
	b.space = ""
}

func (r *ANSIRenderer) pushStyle(prefix string) {
	r.active = append(r.active, prefix)
	r.restyle()
}

func (r *ANSIRenderer) popStyle() {
	if len(r.active) > 0 {
		r.active = r.active[:len(r.active)-1]
	}
	r.restyle()
}

func (r *ANSIRenderer) restyle() {
	b := r.top()
	if r.plain || b.atLineStart {
		return
	}
	b.buf.WriteString(palette.Reset)
	b.buf.WriteString(r.prefix())
}

// writeText word-wraps s into the current block.
func (r *ANSIRenderer) writeText(s string) {
	for len(s) > 0 {
		b := r.top()
		switch s[0] {
		case '\n':
			r.newline()
			s = s[1:]
		case ' ', '\t':
			n := 1
			for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
				n++
			}
			b.space += s[:n]
			s = s[n:]
		default:
			n := strings.IndexAny(s, " \t\n")
			if n < 0 {
				n = len(s)
			}
			r.writeWord(s[:n])
			s = s[n:]
		}
	}
}

func (r *ANSIRenderer) writeWord(word string) {
	b := r.top()
	w := ansi.PrintableRuneWidth(word)
	if b.width > 0 && !b.atLineStart && b.col+len(b.space)+w > b.width {
		r.newline()
	}
	r.ensureStarted()
	r.flushSpace()
	avail := b.width - b.col
	if r.softWrap && b.width > 0 && w > avail && avail > 0 {
		pieces := strings.Split(wrap.String(word, avail), "\n")
		for i, piece := range pieces {
			if i > 0 {
				r.newline()
				r.ensureStarted()
			}
			b.buf.WriteString(piece)
			b.col += ansi.PrintableRuneWidth(piece)
		}
		return
	}
	b.buf.WriteString(word)
	b.col += w
}

// innerWidth is the width left for a nested block whose lines carry gutter
// extra cells after the current indent. Zero stays unbounded.
func (r *ANSIRenderer) innerWidth(gutter int) int {
	b := r.top()
	if b.width <= 0 {
		return 0
	}
	w := b.width - ansi.PrintableRuneWidth(b.indent) - gutter
	if w < 1 {
		w = 1
	}
	return w
}

func (r *ANSIRenderer) pushBlock(kind blockKind, width int) *block {
	nb := &block{kind: kind, width: width, atLineStart: true}
	r.blocks = append(r.blocks, nb)
	return nb
}

func (r *ANSIRenderer) popBlock() *block {
	r.ensureLine()
	b := r.top()
	r.blocks = r.blocks[:len(r.blocks)-1]
	return b
}

// writeLines appends complete, already styled lines to the current block.
func (r *ANSIRenderer) writeLines(lines []string) {
	r.ensureLine()
	for _, line := range lines {
		b := r.top()
		b.buf.WriteString(b.indent)
		b.buf.WriteString(line)
		b.buf.WriteByte('\n')
		b.col = 0
		b.atLineStart = true
	}
}

func blockLines(b *block) []string {
	content := strings.TrimSuffix(b.buf.String(), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func (r *ANSIRenderer) styled(st Style, s string) string {
	if r.plain || st.Prefix == "" {
		return s
	}
	return st.Prefix + s + palette.Reset
}

// Text writes plain text, dropping control characters.
func (r *ANSIRenderer) Text(s string) error {
	s = stripControl(s)
	for _, l := range r.links {
		l.text.WriteString(s)
	}
	r.writeText(s)
	return nil
}

func (r *ANSIRenderer) DecorationBegin(style DecorationStyle) error {
	switch style.Kind {
	case Bold:
		r.pushStyle(r.styles.Bold.Prefix)
	case Italic:
		r.pushStyle(r.styles.Italic.Prefix)
	case Underline:
		r.pushStyle(r.styles.Underline.Prefix)
	case Color:
		if r.plain {
			r.pushStyle("")
		} else {
			r.pushStyle(palette.FG(style.Color.R, style.Color.G, style.Color.B))
		}
	case Center:
		r.ensureLine()
		r.pushBlock(blockCenter, r.innerWidth(0))
	default:
		// Terminals have a single font size.
		r.pushStyle("")
	}
	return nil
}

func (r *ANSIRenderer) DecorationEnd(style DecorationStyle) error {
	if style.Kind != Center {
		r.popStyle()
		return nil
	}
	b := r.popBlock()
	lines := blockLines(b)
	if b.width > 0 {
		for i, line := range lines {
			if pad := (b.width - ansi.PrintableRuneWidth(line)) / 2; pad > 0 {
				lines[i] = indent.String(line, uint(pad))
			}
		}
	}
	r.writeLines(lines)
	return nil
}

func (r *ANSIRenderer) QuoteBegin(attribution string, attributed bool) error {
	r.ensureLine()
	nb := r.pushBlock(blockQuote, r.innerWidth(2))
	nb.attribution = stripControl(attribution)
	nb.attributed = attributed
	r.pushStyle(r.styles.Quote.Prefix)
	return nil
}

func (r *ANSIRenderer) QuoteEnd(string, bool) error {
	r.popStyle()
	b := r.popBlock()
	head := "Quote:"
	if b.attributed {
		head = b.attribution + " wrote:"
	}
	bar := r.styled(r.styles.QuoteBar, "│") + " "
	lines := []string{r.styled(r.styles.Attribution, head)}
	for _, line := range blockLines(b) {
		lines = append(lines, bar+line)
	}
	r.writeLines(lines)
	return nil
}

// Code writes a verbatim block without wrapping.
func (r *ANSIRenderer) Code(s string) error {
	s = strings.TrimPrefix(stripControl(s), "\n")
	s = strings.TrimSuffix(s, "\n")
	r.ensureLine()
	r.pushStyle(r.styles.CodeBlock.Prefix)
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			r.newline()
		}
		r.ensureStarted()
		b := r.top()
		b.buf.WriteString(line)
		b.col += ansi.PrintableRuneWidth(line)
	}
	r.popStyle()
	r.ensureLine()
	return nil
}

func (r *ANSIRenderer) ListBegin(style ListStyle) error {
	r.ensureLine()
	r.lists = append(r.lists, ansiList{style: style, next: 1, prevIndent: r.top().indent})
	return nil
}

func (r *ANSIRenderer) ListItemBegin(style ListStyle) error {
	r.ensureLine()
	l := &r.lists[len(r.lists)-1]
	marker := listMarker(style, l.next)
	l.next++
	b := r.top()
	lead := l.prevIndent + strings.Repeat("  ", len(r.lists)-1)
	r.startLine(lead)
	b.buf.WriteString(r.styled(r.styles.ListMarker, marker))
	b.buf.WriteString(r.prefix())
	b.buf.WriteByte(' ')
	w := ansi.PrintableRuneWidth(marker) + 1
	b.col += w
	b.indent = lead + strings.Repeat(" ", w)
	return nil
}

func (r *ANSIRenderer) ListItemEnd(ListStyle) error {
	r.ensureLine()
	return nil
}

func (r *ANSIRenderer) ListEnd(ListStyle) error {
	l := r.lists[len(r.lists)-1]
	r.lists = r.lists[:len(r.lists)-1]
	r.ensureLine()
	r.top().indent = l.prevIndent
	return nil
}

func (r *ANSIRenderer) LinkBegin(target string) error {
	target = stripControl(target)
	r.links = append(r.links, &ansiLink{target: target})
	if r.osc8 {
		r.ensureStarted()
		r.flushSpace()
		r.top().buf.WriteString(osc8Start + target + "\x1b\\")
	}
	r.pushStyle(r.styles.LinkText.Prefix)
	return nil
}

func (r *ANSIRenderer) LinkEnd(string) error {
	l := r.links[len(r.links)-1]
	r.links = r.links[:len(r.links)-1]
	r.popStyle()
	if r.osc8 {
		r.top().buf.WriteString(osc8End)
		return nil
	}
	if strings.TrimSpace(l.text.String()) == l.target || l.target == "" {
		return nil
	}
	url := l.target
	if b := r.top(); b.width > 3 {
		url = fitURL(url, b.width-3)
	}
	r.pushStyle(r.styles.LinkURL.Prefix)
	r.writeText(" (" + url + ")")
	r.popStyle()
	return nil
}

func (r *ANSIRenderer) Image(src string) error {
	r.pushStyle(r.styles.Image.Prefix)
	r.writeText("[image: " + stripControl(src) + "]")
	r.popStyle()
	return nil
}

// Flush writes the rendered document to the underlying writer. Write errors
// are returned unchanged.
func (r *ANSIRenderer) Flush() error {
	for len(r.blocks) > 1 {
		b := r.popBlock()
		r.writeLines(blockLines(b))
	}
	r.ensureLine()
	doc := r.blocks[0]
	_, err := io.WriteString(r.w, doc.buf.String())
	doc.buf.Reset()
	return err
}

func listMarker(style ListStyle, n int) string {
	switch style {
	case Numeric:
		return strconv.Itoa(n) + "."
	case Alphabetic:
		return alphaIndex(n) + "."
	default:
		return "•"
	}
}

// alphaIndex returns a, b, ... z, aa, ab, ... for n = 1, 2, ...
func alphaIndex(n int) string {
	var buf []byte
	for n > 0 {
		n--
		buf = append([]byte{byte('a' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}

func stripControl(s string) string {
	clean := true
	for _, r := range s {
		if r == '\r' || isControlRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\r' && !isControlRune(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
