package mock

import (
	"context"

	"github.com/fwojciec/locwidget"
)

var _ locwidget.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of locwidget.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snapshot *locwidget.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*locwidget.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter locwidget.SnapshotFilter) ([]*locwidget.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *locwidget.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*locwidget.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter locwidget.SnapshotFilter) ([]*locwidget.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
