package bbcode

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
)

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}

func intToWidthLabel(width int) string {
	return "w" + strconv.Itoa(width)
}

func BenchmarkParse(b *testing.B) {
	samples := map[string]string{
		"forum_post": string(mustReadSample(b, "testdata/forum_post.bbcode")),
		"malformed":  string(mustReadSample(b, "testdata/malformed.bbcode")),
		"plain":      strings.Repeat("alpha beta gamma delta epsilon\n", 200),
		"near_miss":  strings.Repeat("[b][i][quote][url=", 100),
	}
	for name, src := range samples {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			for i := 0; i < b.N; i++ {
				_ = Parse(src)
			}
		})
	}
}

func BenchmarkTranslate(b *testing.B) {
	data := mustReadSample(b, "testdata/forum_post.bbcode")
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, err := Translate(data); err != nil {
			b.Fatalf("translate: %v", err)
		}
	}
}

func BenchmarkRenderTerminal(b *testing.B) {
	data := mustReadSample(b, "testdata/forum_post.bbcode")
	for _, width := range []int{50, 60, 80} {
		b.Run(intToWidthLabel(width), func(b *testing.B) {
			b.ReportAllocs()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Render(RenderRequest{
					Reader: reader,
					Writer: io.Discard,
					Format: FormatANSI,
					Width:  width,
					Theme:  DefaultTheme(),
				})
			}
		})
	}
}

func BenchmarkHTTPRender(b *testing.B) {
	data := mustReadSample(b, "testdata/forum_post.bbcode")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := HTTPRender(context.Background(), HTTPRenderRequest{
			URL:    server.URL,
			Writer: io.Discard,
		}); err != nil {
			b.Fatalf("render http: %v", err)
		}
	}
}
