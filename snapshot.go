package locwidget

import (
	"context"
	"time"
)

// Snapshot is a stored copy of the dataset as it was loaded from a source.
type Snapshot struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Dataset     *Dataset  `json:"dataset"`
	Count       int       `json:"count"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "snapshot source required")
	}
	if s.Dataset == nil {
		return Errorf(EINVALID, "snapshot dataset required")
	}
	return nil
}

// SnapshotService represents a service for managing dataset snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot, assigning its ID, count,
	// content hash and creation time.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
