package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locwidget"
)

// Ensure LoggingBundleStore implements locwidget.BundleStore.
var _ locwidget.BundleStore = (*LoggingBundleStore)(nil)

// LoggingBundleStore wraps a BundleStore with logging.
type LoggingBundleStore struct {
	next   locwidget.BundleStore
	dir    string
	logger *slog.Logger
}

// NewLoggingBundleStore creates a new LoggingBundleStore.
func NewLoggingBundleStore(next locwidget.BundleStore, dir string, logger *slog.Logger) *LoggingBundleStore {
	return &LoggingBundleStore{next: next, dir: dir, logger: logger}
}

// SaveBundle delegates to the wrapped store and logs the written sizes.
func (s *LoggingBundleStore) SaveBundle(ctx context.Context, bundle *locwidget.Bundle) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save bundle",
			"dir", s.dir,
			"content_bytes", len(bundle.Content),
			"instructions_bytes", len(bundle.Instructions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveBundle(ctx, bundle)
}
