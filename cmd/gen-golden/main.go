// Command gen-golden regenerates the golden files under testdata: one HTML
// rendering per sample and one plain terminal rendering per width.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pkt.systems/bbcode"
)

func main() {
	widths := []int{60}
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	paths, err := filepath.Glob(filepath.Join(root, "*.bbcode"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no BBCode samples found under %s", root)
	}
	boring, _ := bbcode.ThemeByName("boring")
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		base := strings.TrimSuffix(path, ".bbcode")

		html, err := bbcode.Translate(src)
		if err != nil {
			fatalf("translate %s: %v", path, err)
		}
		writeGolden(base+".html.golden", html)

		for _, width := range widths {
			var out bytes.Buffer
			err := bbcode.Render(bbcode.RenderRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Format: bbcode.FormatANSI,
				Width:  width,
				Theme:  boring,
			})
			if err != nil {
				fatalf("render %s width %d: %v", path, width, err)
			}
			writeGolden(base+".w"+strconv.Itoa(width)+".golden", out.Bytes())
		}
	}
}

func writeGolden(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
