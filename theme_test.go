package bbcode

import "testing"

func TestThemeByName(t *testing.T) {
	expected := []string{"boring", "default", "dracula", "gruvbox", "nord"}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("theme %q reports name %q", name, theme.Name())
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("AvailableThemes = %v, want %v", available, expected)
	}
	for i, name := range expected {
		if available[i] != name {
			t.Fatalf("AvailableThemes = %v, want sorted %v", available, expected)
		}
	}

	if theme, ok := ThemeByName(" Nord "); !ok || theme.Name() != "nord" {
		t.Fatalf("expected case-insensitive lookup")
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected empty name to select the default theme")
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Fatalf("unexpected theme")
	}
}

func TestBuiltinThemesStyleEveryRole(t *testing.T) {
	for _, name := range AvailableThemes() {
		if name == "boring" {
			continue
		}
		theme, _ := ThemeByName(name)
		s := theme.Styles()
		roles := map[string]Style{
			"bold":        s.Bold,
			"italic":      s.Italic,
			"underline":   s.Underline,
			"quote":       s.Quote,
			"quote bar":   s.QuoteBar,
			"attribution": s.Attribution,
			"code":        s.CodeBlock,
			"list marker": s.ListMarker,
			"link text":   s.LinkText,
			"link url":    s.LinkURL,
			"image":       s.Image,
		}
		for role, st := range roles {
			if st.Prefix == "" {
				t.Fatalf("theme %q has no %s style", name, role)
			}
		}
	}
}

func TestBoringThemeIsPlain(t *testing.T) {
	theme, _ := ThemeByName("boring")
	if theme.Styles() != (Styles{}) {
		t.Fatalf("expected boring theme without styles")
	}
}
