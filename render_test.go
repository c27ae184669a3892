package bbcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder logs every hook call and fails at call failAt when it is set.
type recorder struct {
	events []string
	failAt int
	err    error
}

func (r *recorder) record(format string, args ...any) error {
	r.events = append(r.events, fmt.Sprintf(format, args...))
	if r.err != nil && len(r.events) == r.failAt {
		return r.err
	}
	return nil
}

func (r *recorder) Text(s string) error { return r.record("text %q", s) }
func (r *recorder) DecorationBegin(style DecorationStyle) error {
	return r.record("begin %s", style.Kind)
}
func (r *recorder) DecorationEnd(style DecorationStyle) error {
	return r.record("end %s", style.Kind)
}
func (r *recorder) QuoteBegin(attribution string, attributed bool) error {
	return r.record("quote %q %v", attribution, attributed)
}
func (r *recorder) QuoteEnd(string, bool) error     { return r.record("/quote") }
func (r *recorder) Code(s string) error             { return r.record("code %q", s) }
func (r *recorder) ListBegin(style ListStyle) error { return r.record("list %s", style) }
func (r *recorder) ListItemBegin(ListStyle) error   { return r.record("item") }
func (r *recorder) ListItemEnd(ListStyle) error     { return r.record("/item") }
func (r *recorder) ListEnd(ListStyle) error         { return r.record("/list") }
func (r *recorder) LinkBegin(target string) error   { return r.record("link %q", target) }
func (r *recorder) LinkEnd(string) error            { return r.record("/link") }
func (r *recorder) Image(src string) error          { return r.record("img %q", src) }

func TestRenderSegmentsOrder(t *testing.T) {
	var r recorder
	err := RenderSegments(&r, Parse(`[b]a[i]b[/i][/b][img]x[/img][quote="Q"][code]c[/code][/quote][list=1][*]d[/list][url=u]e[/url]`))
	require.NoError(t, err)
	require.Equal(t, []string{
		"begin bold",
		`text "a"`,
		"begin italic",
		`text "b"`,
		"end italic",
		"end bold",
		`img "x"`,
		`quote "Q" true`,
		`code "c"`,
		"/quote",
		"list numeric",
		"item",
		`text "d"`,
		"/item",
		"/list",
		`link "u"`,
		`text "e"`,
		"/link",
	}, r.events)
}

func TestRenderEmptyCompoundsAreAdjacent(t *testing.T) {
	cases := map[string][]string{
		"[quote][/quote]":   {`quote "" false`, "/quote"},
		"[b][/b]":           {"begin bold", "end bold"},
		"[list][/list]":     {"list unordered", "/list"},
		"[list][*][/list]":  {"list unordered", "item", "/item", "/list"},
		"[url=x][/url]":     {`link "x"`, "/link"},
		"[center][/center]": {"begin center", "end center"},
	}
	for in, want := range cases {
		var r recorder
		require.NoError(t, RenderSegments(&r, Parse(in)))
		require.Equal(t, want, r.events, "input %q", in)
	}
}

func TestRenderSegmentsStopsAtFirstError(t *testing.T) {
	errSink := errors.New("sink failed")
	segs := Parse("[b]a[/b][i]b[/i]")
	for failAt := 1; failAt <= 6; failAt++ {
		r := recorder{failAt: failAt, err: errSink}
		err := RenderSegments(&r, segs)
		if err != errSink {
			t.Fatalf("failAt %d: got %v, want the sink error itself", failAt, err)
		}
		require.Len(t, r.events, failAt)
	}
}
