package http

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/locwidget"
)

// Ensure DatasetLoader implements locwidget.DatasetLoader at compile time.
var _ locwidget.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader loads the dataset from the locations endpoint.
type DatasetLoader struct {
	fetcher locwidget.Fetcher
	url     string
}

// NewDatasetLoader creates a DatasetLoader that fetches url with fetcher.
func NewDatasetLoader(fetcher locwidget.Fetcher, url string) *DatasetLoader {
	return &DatasetLoader{fetcher: fetcher, url: url}
}

// Load fetches and decodes the dataset. There is no retry: a failed fetch
// or a malformed body is reported as ELOAD.
func (l *DatasetLoader) Load(ctx context.Context) (*locwidget.Dataset, error) {
	body, err := l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		return nil, locwidget.Errorf(locwidget.ELOAD, "failed to fetch %s: %s", l.url, describe(err))
	}
	if strings.HasPrefix(strings.TrimSpace(body), "<") {
		return nil, locwidget.Errorf(locwidget.ELOAD, "%s returned HTML instead of JSON, check the data endpoint", l.url)
	}
	return locwidget.DecodeDataset([]byte(body))
}

// describe returns the message of application errors and the full text of
// anything else.
func describe(err error) string {
	var e *locwidget.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
