package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locwidget"
)

// Ensure LoggingSnapshotService implements locwidget.SnapshotService.
var _ locwidget.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService, logging writes.
type LoggingSnapshotService struct {
	next   locwidget.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next locwidget.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the stored snapshot.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snapshot *locwidget.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create snapshot",
			"id", snapshot.ID,
			"source", snapshot.Source,
			"count", snapshot.Count,
			"hash", snapshot.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snapshot)
}

// FindSnapshotByID delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshotByID(ctx context.Context, id string) (*locwidget.Snapshot, error) {
	return s.next.FindSnapshotByID(ctx, id)
}

// FindSnapshots delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter locwidget.SnapshotFilter) ([]*locwidget.Snapshot, error) {
	return s.next.FindSnapshots(ctx, filter)
}

// DeleteSnapshot delegates to the wrapped service and logs the removal.
func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete snapshot",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, id)
}
