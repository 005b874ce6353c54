package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locwidget"
)

// Ensure LoggingDatasetLoader implements locwidget.DatasetLoader.
var _ locwidget.DatasetLoader = (*LoggingDatasetLoader)(nil)

// LoggingDatasetLoader wraps a DatasetLoader with logging.
type LoggingDatasetLoader struct {
	next   locwidget.DatasetLoader
	source string
	logger *slog.Logger
}

// NewLoggingDatasetLoader creates a new LoggingDatasetLoader.
// source names where the wrapped loader reads from.
func NewLoggingDatasetLoader(next locwidget.DatasetLoader, source string, logger *slog.Logger) *LoggingDatasetLoader {
	return &LoggingDatasetLoader{next: next, source: source, logger: logger}
}

// Load delegates to the wrapped loader and logs the facility count.
func (l *LoggingDatasetLoader) Load(ctx context.Context) (ds *locwidget.Dataset, err error) {
	defer func(begin time.Time) {
		l.logger.Info("dataset load",
			"source", l.source,
			"facilities", len(ds.Facilities()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx)
}
