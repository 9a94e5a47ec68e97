// Package http provides net/http implementations of docs2skill.Fetcher and a
// small JSON POST helper used by the LLM clients.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/jcharovsky/docs2skill"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docs2skill.Fetcher at compile time.
var _ docs2skill.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using plain HTTP GET requests.
// JavaScript is not executed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves url and returns its body decoded to UTF-8 according to
// the declared or sniffed charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*docs2skill.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docs2skill.Errorf(docs2skill.EINVALID, "invalid URL %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docs2skill.Errorf(docs2skill.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")

	r, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return &docs2skill.Response{
		URL:         url,
		ContentType: contentType,
		Body:        string(body),
	}, nil
}
