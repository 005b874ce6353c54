// Package http provides HTTP implementations of the locwidget services:
// a Fetcher and DatasetLoader for the locations endpoint and a Server that
// renders the facility directory.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/locwidget"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps the size of a fetched page or dataset.
const DefaultMaxBodySize = 8 << 20

// DefaultAccept asks for the dataset's JSON first while still accepting
// the HTML of source and host pages.
const DefaultAccept = "application/json, text/html;q=0.9, */*;q=0.1"

// Ensure Fetcher implements locwidget.Fetcher at compile time.
var _ locwidget.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using plain HTTP GET requests.
// It makes a single attempt per call.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	accept      string
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

// WithMaxBodySize sets the largest response body Fetch accepts.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithAccept overrides the Accept header sent with every request.
func WithAccept(accept string) Option {
	return func(f *Fetcher) {
		f.accept = accept
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
		accept:      DefaultAccept,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
// Returns ENOTFOUND for 404 and 410 responses and EINVALID for bodies larger
// than the configured limit. Other failed statuses are reported with their
// code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", locwidget.Errorf(locwidget.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", f.accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", locwidget.Errorf(locwidget.ENOTFOUND, "%s not found (HTTP %d)", url, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", locwidget.Errorf(locwidget.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return "", locwidget.Errorf(locwidget.EINVALID, "%s is larger than %d bytes", url, f.maxBodySize)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
