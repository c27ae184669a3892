package bbcode

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func renderHTML(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, RenderSegments(NewHTMLRenderer(&out), Parse(src)))
	return out.String()
}

func TestHTMLTextEscaping(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RenderSegments(NewHTMLRenderer(&out), []Segment{Text("a&b<c>d\ne'f\"g")}))
	require.Equal(t, "a&amp;b&lt;c&gt;d<br>e'f\"g", out.String())
}

func TestHTMLMapping(t *testing.T) {
	cases := map[string]string{
		"[b]bold[/b] [i]it[/i] [u]u[/u]":  "<b>bold</b> <i>it</i> <u>u</u>",
		"[center]c[/center]":              `<div style="text-align:center">c</div>`,
		"[color=#81f]x[/color]":           `<span style="color: #8811ff">x</span>`,
		"[size=12]x[/size]":               `<span style="font-size: 12pt">x</span>`,
		`[quote="A<B"]q[/quote]`:          "<div>A&lt;B wrote:</div><blockquote>q</blockquote>",
		"[quote]q[/quote]":                "<div>Quote:</div><blockquote>q</blockquote>",
		"[code]a<b\n&c[/code]":            "<pre>a&lt;b\n&amp;c</pre>",
		`[img]x"y<z>.png[/img]`:           `<img src="x&quot;y&lt;z&gt;.png">`,
		"[list][*]a[*]b[/list]":           "<ul><li>a</li><li>b</li></ul>",
		"[list=1][*]a[/list]":             "<ol><li>a</li></ol>",
		"[list=a][*]a[/list]":             `<ol type="a"><li>a</li></ol>`,
		"[url=http://x/?a=1&b=2]x[/url]":  `<a href="http://x/?a=1&b=2">x</a>`,
		`[url="http://x/"][b]y[/b][/url]`: `<a href="http://x/"><b>y</b></a>`,
		"[url]http://x/<y>[/url]":         `<a href="http://x/&lt;y&gt;">http://x/&lt;y&gt;</a>`,
		"[b]unterminated <tag>":           "[b]unterminated &lt;tag&gt;",
		"line one\n[quote][/quote]":       "line one<br><div>Quote:</div><blockquote></blockquote>",
	}
	for in, want := range cases {
		require.Equal(t, want, renderHTML(t, in), "input %q", in)
	}
}

var voidElements = map[string]bool{"br": true, "img": true}

// requireBalanced checks that every element opened in doc is closed in
// order.
func requireBalanced(t *testing.T, doc string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(doc))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			require.ErrorIs(t, z.Err(), io.EOF)
			require.Empty(t, stack, "unclosed elements in %q", doc)
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			require.NotEmpty(t, stack, "stray </%s> in %q", name, doc)
			require.Equal(t, stack[len(stack)-1], string(name), "mismatched end tag in %q", doc)
			stack = stack[:len(stack)-1]
		}
	}
}

func TestHTMLIsBalanced(t *testing.T) {
	docs := []string{
		`[quote="Ann"][b]x[i]y[/i][/b][list=a][*][url=u][color=red]z[/color][/url][*][size=9]w[/size][/list][/quote]`,
		"[center][code]<b>not markup</b>[/code][img]a.png[/img][/center]",
		"[b]open [i]never closed [u]x[/u]",
		"[list][*]a[list=1][*]b[/list][*][quote][/quote][/list]",
	}
	for _, doc := range docs {
		requireBalanced(t, renderHTML(t, doc))
	}
}

func TestHTMLAttributesRoundTrip(t *testing.T) {
	out := renderHTML(t, `[img]a"b<c>.png[/img]`)
	z := html.NewTokenizer(strings.NewReader(out))
	require.Equal(t, html.StartTagToken, z.Next())
	tok := z.Token()
	require.Equal(t, "img", tok.Data)
	require.Len(t, tok.Attr, 1)
	require.Equal(t, `a"b<c>.png`, tok.Attr[0].Val)
}

func TestHTMLStructure(t *testing.T) {
	out := renderHTML(t, `[quote="Ann"][list=1][*][b]one[/b][*][url=x]two[/url][/list][/quote][center]c[/center]`)
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	count := func(sel string) int {
		return len(cascadia.MustCompile(sel).MatchAll(doc))
	}
	require.Equal(t, 1, count("div + blockquote"))
	require.Equal(t, 2, count("blockquote > ol > li"))
	require.Equal(t, 1, count("li > b"))
	require.Equal(t, 1, count(`li > a[href="x"]`))
	require.Equal(t, 1, count(`div[style="text-align:center"]`))

	attribution := cascadia.MustCompile("body > div").MatchFirst(doc)
	require.NotNil(t, attribution)
	require.Equal(t, "Ann wrote:", attribution.FirstChild.Data)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestHTMLWriteErrorIsReturned(t *testing.T) {
	errDisk := errors.New("disk full")
	for _, src := range []string{"[b]x[/b]", "plain", "[img]x[/img]", "[code]x[/code]"} {
		err := RenderSegments(NewHTMLRenderer(failingWriter{err: errDisk}), Parse(src))
		if err != errDisk {
			t.Fatalf("%q: got %v, want the writer error", src, err)
		}
	}
}
