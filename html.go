package bbcode

import (
	"io"
	"strconv"
	"strings"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\n", "<br>")
	// Preformatted blocks keep their newlines.
	codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

var _ Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer writes segments as HTML to an io.Writer. Write errors are
// returned unchanged.
type HTMLRenderer struct {
	w io.Writer
}

// NewHTMLRenderer returns an HTMLRenderer writing to w.
func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{w: w}
}

func (h *HTMLRenderer) write(s string) error {
	_, err := io.WriteString(h.w, s)
	return err
}

// Text escapes &, < and > and turns newlines into <br>.
func (h *HTMLRenderer) Text(s string) error {
	_, err := textEscaper.WriteString(h.w, s)
	return err
}

func (h *HTMLRenderer) DecorationBegin(style DecorationStyle) error {
	switch style.Kind {
	case Bold:
		return h.write("<b>")
	case Italic:
		return h.write("<i>")
	case Underline:
		return h.write("<u>")
	case Center:
		return h.write(`<div style="text-align:center">`)
	case Color:
		return h.write(`<span style="color: ` + style.Color.Hex() + `">`)
	case Size:
		return h.write(`<span style="font-size: ` + strconv.Itoa(style.Size) + `pt">`)
	}
	return nil
}

func (h *HTMLRenderer) DecorationEnd(style DecorationStyle) error {
	switch style.Kind {
	case Bold:
		return h.write("</b>")
	case Italic:
		return h.write("</i>")
	case Underline:
		return h.write("</u>")
	case Center:
		return h.write("</div>")
	case Color, Size:
		return h.write("</span>")
	}
	return nil
}

func (h *HTMLRenderer) QuoteBegin(attribution string, attributed bool) error {
	if !attributed {
		return h.write("<div>Quote:</div><blockquote>")
	}
	if err := h.write("<div>"); err != nil {
		return err
	}
	if err := h.Text(attribution); err != nil {
		return err
	}
	return h.write(" wrote:</div><blockquote>")
}

func (h *HTMLRenderer) QuoteEnd(string, bool) error {
	return h.write("</blockquote>")
}

func (h *HTMLRenderer) Code(s string) error {
	if err := h.write("<pre>"); err != nil {
		return err
	}
	if _, err := codeEscaper.WriteString(h.w, s); err != nil {
		return err
	}
	return h.write("</pre>")
}

func (h *HTMLRenderer) ListBegin(style ListStyle) error {
	switch style {
	case Numeric:
		return h.write("<ol>")
	case Alphabetic:
		return h.write(`<ol type="a">`)
	default:
		return h.write("<ul>")
	}
}

func (h *HTMLRenderer) ListItemBegin(ListStyle) error {
	return h.write("<li>")
}

func (h *HTMLRenderer) ListItemEnd(ListStyle) error {
	return h.write("</li>")
}

func (h *HTMLRenderer) ListEnd(style ListStyle) error {
	if style == Unordered {
		return h.write("</ul>")
	}
	return h.write("</ol>")
}

func (h *HTMLRenderer) LinkBegin(target string) error {
	if err := h.write(`<a href="`); err != nil {
		return err
	}
	if _, err := attrEscaper.WriteString(h.w, target); err != nil {
		return err
	}
	return h.write(`">`)
}

func (h *HTMLRenderer) LinkEnd(string) error {
	return h.write("</a>")
}

// Image writes an <img> element with src escaped for the attribute.
func (h *HTMLRenderer) Image(src string) error {
	if err := h.write(`<img src="`); err != nil {
		return err
	}
	if _, err := attrEscaper.WriteString(h.w, src); err != nil {
		return err
	}
	return h.write(`">`)
}
