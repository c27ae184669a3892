package bbcode

import (
	"bytes"
	"os"
	"testing"
)

func TestTranslateAllocations(t *testing.T) {
	src, err := os.ReadFile("testdata/forum_post.bbcode")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Translate(src)
	})
	if allocs > 400 {
		t.Fatalf("too many allocations per Translate: got %.2f", allocs)
	}
}

func TestRenderHTMLAllocations(t *testing.T) {
	src, err := os.ReadFile("testdata/forum_post.bbcode")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out bytes.Buffer
	out.Grow(4 * len(src))
	allocs := testing.AllocsPerRun(100, func() {
		out.Reset()
		_ = Render(RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
		})
	})
	if allocs > 400 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}
