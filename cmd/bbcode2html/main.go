package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/bbcode"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/bbcode")
}

type options struct {
	format      string
	themeName   string
	width       int
	osc8        string
	listThemes  bool
	outPath     string
	boring      bool
	softWrap    bool
	maxBytes    int64
	verbose     bool
	showVersion bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("bbcode2html", pflag.ExitOnError)
	flags.StringVarP(&opts.format, "format", "f", "html", "Output format: html|ansi")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for ansi output (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks in ansi output: auto|on|off")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Plain ansi output without colors")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the width")
	flags.Int64Var(&opts.maxBytes, "max-bytes", 0, "Reject input larger than this many bytes (0 disables)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: bbcode2html [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, BBCode is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	log := newLogger(os.Stderr, opts.verbose)

	if opts.showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if opts.listThemes {
		printThemes(os.Stdout)
		return
	}

	format, err := bbcode.ParseFormat(opts.format)
	if err != nil {
		log.Error("invalid --format", "error", err)
		os.Exit(2)
	}
	theme, ok := bbcode.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", opts.themeName)
		if guess := suggestTheme(opts.themeName); guess != "" {
			fmt.Fprintf(os.Stderr, "did you mean %q?\n", guess)
		}
		fmt.Fprintln(os.Stderr)
		printThemes(os.Stderr)
		os.Exit(2)
	}
	if opts.boring {
		theme = boringTheme()
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		log.Error("invalid --osc8", "value", opts.osc8, "error", err)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		log.Info("reading BBCode from terminal; end input with Ctrl-D")
	}
	limit := bbcode.WithMaxInputBytes(opts.maxBytes)
	reader, closer, err := openInputs(context.Background(), args, limit)
	if err != nil {
		log.Error("open input", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(opts.outPath)
	if err != nil {
		log.Error("open output", "path", opts.outPath, "error", err)
		os.Exit(1)
	}

	counted := &countingReader{r: reader}
	start := time.Now()
	err = bbcode.Render(bbcode.RenderRequest{
		Reader: counted,
		Writer: writer,
		Format: format,
		Width:  resolveWidth(opts.width),
		Theme:  theme,
		Options: []bbcode.RenderOption{
			bbcode.WithOSC8(osc8),
			bbcode.WithSoftWrap(opts.softWrap),
			limit,
		},
	})
	if closeOut != nil {
		if cerr := closeOut.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Error("render", "error", err)
		os.Exit(1)
	}
	log.Debug("rendered", "format", format.String(), "size", humanize.Bytes(uint64(counted.n)), "duration", time.Since(start))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func printThemes(w io.Writer) {
	for _, name := range bbcode.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

// suggestTheme returns the closest built-in theme name, or "" when none
// contains the letters of name in order.
func suggestTheme(name string) string {
	ranks := fuzzy.RankFindFold(name, bbcode.AvailableThemes())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return bbcode.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() bbcode.Theme {
	return bbcode.NewTheme("boring", bbcode.Styles{})
}

// input is one command-line source. It is opened on the first Read and
// closed at EOF.
type input struct {
	open func() (io.ReadCloser, error)
	rc   io.ReadCloser
	err  error
}

func (in *input) Read(p []byte) (int, error) {
	if in.err != nil {
		return 0, in.err
	}
	if in.rc == nil {
		rc, err := in.open()
		if err != nil {
			in.err = err
			return 0, err
		}
		in.rc = rc
	}
	n, err := in.rc.Read(p)
	if err != nil {
		in.err = err
		if err == io.EOF {
			_ = in.Close()
		}
	}
	return n, err
}

func (in *input) Close() error {
	if in.rc == nil {
		return nil
	}
	err := in.rc.Close()
	in.rc = nil
	return err
}

type inputs []*input

func (all inputs) Close() error {
	var first error
	for _, in := range all {
		if err := in.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInputs concatenates args in order; no args means stdin. opts bound
// the size of HTTP inputs that declare a Content-Length.
func openInputs(ctx context.Context, args []string, opts ...bbcode.RenderOption) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	all := make(inputs, 0, len(args))
	readers := make([]io.Reader, 0, len(args))
	for _, raw := range args {
		in, err := newInput(ctx, raw, opts)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, in)
		readers = append(readers, in)
	}
	return io.MultiReader(readers...), all, nil
}

// newInput accepts "-" for stdin, http(s) and file URLs, or a path.
func newInput(ctx context.Context, raw string, opts []bbcode.RenderOption) (*input, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return &input{open: func() (io.ReadCloser, error) {
			return io.NopCloser(os.Stdin), nil
		}}, nil
	}
	path := raw
	if u, err := url.Parse(raw); err == nil {
		switch u.Scheme {
		case "http", "https":
			return &input{open: func() (io.ReadCloser, error) {
				return bbcode.FetchBBCode(ctx, nil, raw, opts...)
			}}, nil
		case "file":
			path = u.Path
		}
	}
	return &input{open: func() (io.ReadCloser, error) {
		return os.Open(path)
	}}, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
