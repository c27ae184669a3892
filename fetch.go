package bbcode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrHTTPStatus reports a fetch answered with a non-2xx status.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// FetchBBCode opens a BBCode document over HTTP(S); the caller closes the
// returned body. With WithMaxInputBytes, a declared Content-Length over the
// limit fails with ErrInputTooLarge before the body is read. Bodies of
// unknown length are checked by Render as they are read.
func FetchBBCode(ctx context.Context, client *http.Client, rawURL string, opts ...RenderOption) (io.ReadCloser, error) {
	if rawURL == "" {
		return nil, errors.New("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if s := req.URL.Scheme; s != "http" && s != "https" {
		return nil, fmt.Errorf("fetch %s: unsupported scheme %q", rawURL, s)
	}
	req.Header.Set("Accept", "text/plain, */*;q=0.5")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode/100 != 2 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %w: %s", rawURL, ErrHTTPStatus, resp.Status)
	}
	// ContentLength is -1 when the server does not declare it.
	if err := checkInputSize(resp.ContentLength, newRenderConfig(opts).maxInput); err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return resp.Body, nil
}

// HTTPRenderRequest configures HTTPRender. Its fields other than URL and
// Client mean the same as in RenderRequest.
type HTTPRenderRequest struct {
	URL    string
	Client *http.Client
	Writer io.Writer
	Format Format
	Parser *Parser
	Width  int
	Theme  Theme
	// Options also bound the fetched size (WithMaxInputBytes).
	Options []RenderOption
}

// HTTPRender fetches a document with FetchBBCode and renders it with Render.
// Nothing is written when the fetch fails.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.Writer == nil {
		return errors.New("render: writer is nil")
	}
	body, err := FetchBBCode(ctx, req.Client, req.URL, req.Options...)
	if err != nil {
		return err
	}
	defer body.Close()
	return Render(RenderRequest{
		Reader:  body,
		Writer:  req.Writer,
		Format:  req.Format,
		Parser:  req.Parser,
		Width:   req.Width,
		Theme:   req.Theme,
		Options: req.Options,
	})
}
