package bbcode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 4096)
	},
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Format selects the output of Render.
type Format uint8

const (
	// FormatHTML renders with HTMLRenderer.
	FormatHTML Format = iota
	// FormatANSI renders with ANSIRenderer.
	FormatANSI
)

// ParseFormat maps "html" or "ansi" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html":
		return FormatHTML, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	default:
		return 0, fmt.Errorf("unknown format %q: expected html|ansi", name)
	}
}

func (f Format) String() string {
	if f == FormatANSI {
		return "ansi"
	}
	return "html"
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Format Format
	// Parser defaults to the package parser.
	Parser *Parser
	// Width and Theme apply to FormatANSI.
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads all of Reader, parses it as BBCode and writes the rendered
// document to Writer. Invalid UTF-8 is replaced with U+FFFD. Errors from
// Writer are returned unchanged. HTML output is buffered, so a failed write
// surfaces at the next flush and rendering may continue past it until then.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	src, err := readInput(req.Reader, cfg.maxInput)
	if err != nil {
		return err
	}
	parser := req.Parser
	if parser == nil {
		parser = defaultParser
	}
	segments := parser.Parse(Repair(src))

	if req.Format == FormatANSI {
		r := NewANSIRenderer(req.Writer, req.Width, req.Theme, req.Options...)
		if err := RenderSegments(r, segments); err != nil {
			return err
		}
		return r.Flush()
	}

	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(req.Writer)
	err = RenderSegments(NewHTMLRenderer(bw), segments)
	if err == nil {
		err = bw.Flush()
	}
	bw.Reset(nil)
	writerPool.Put(bw)
	return err
}

// Translate renders src to HTML. Invalid UTF-8 in src is replaced with
// U+FFFD. The returned buffer is owned by the caller.
func Translate(src []byte, opts ...RenderOption) ([]byte, error) {
	cfg := newRenderConfig(opts)
	if err := checkInputSize(int64(len(src)), cfg.maxInput); err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	segments := Parse(Repair(src))
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	// bytes.Buffer writes cannot fail.
	_ = RenderSegments(NewHTMLRenderer(buf), segments)
	out := bytes.Clone(buf.Bytes())
	buf.Reset()
	bufferPool.Put(buf)
	return out, nil
}

func readInput(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("render: read: %w", err)
	}
	if err := checkInputSize(int64(len(src)), limit); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return src, nil
}
