package locwidget

import "context"

// Fetcher retrieves a document from a URL.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
