package bbcode

import (
	"sort"
	"strings"

	"pkt.systems/bbcode/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by ANSIRenderer.
type Styles struct {
	Text        Style
	Bold        Style
	Italic      Style
	Underline   Style
	Quote       Style
	QuoteBar    Style
	Attribution Style
	CodeBlock   Style
	ListMarker  Style
	LinkText    Style
	LinkURL     Style
	Image       Style
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:        style(p.Text),
		Bold:        style(palette.Bold, p.Strong),
		Italic:      style(palette.Italic, p.Emphasis),
		Underline:   style(palette.Underline, p.Underline),
		Quote:       style(p.Quote),
		QuoteBar:    style(p.QuoteBar),
		Attribution: style(palette.Bold, p.Attribution),
		CodeBlock:   style(p.CodeBlock),
		ListMarker:  style(p.ListMarker),
		LinkText:    style(palette.Underline, p.LinkText),
		LinkURL:     style(palette.Faint, p.LinkURL),
		Image:       style(palette.Italic, p.Image),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"dracula": theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":    theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"boring":  theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
