package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/locwidget"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ locwidget.SnapshotService = (*SnapshotService)(nil)
	_ locwidget.DatasetLoader   = (*DatasetLoader)(nil)
)

// SnapshotService implements locwidget.SnapshotService using SQLite.
type SnapshotService struct {
	db  *DB
	now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, now: time.Now}
}

// CreateSnapshot stores a new snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *locwidget.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(snapshot.Dataset)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	snapshot.ID = uuid.New().String()
	snapshot.Count = len(snapshot.Dataset.Facilities())
	snapshot.ContentHash = hashContent(data)
	snapshot.CreatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, dataset, count, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.Source, string(data), snapshot.Count, snapshot.ContentHash,
		formatTime(snapshot.CreatedAt))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*locwidget.Snapshot, error) {
	snapshot, err := scanSnapshot(s.db.QueryRowContext(ctx, `
		SELECT id, source, dataset, count, content_hash, created_at
		FROM snapshots
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, locwidget.Errorf(locwidget.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter locwidget.SnapshotFilter) ([]*locwidget.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, dataset, count, content_hash, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*locwidget.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locwidget.Errorf(locwidget.ENOTFOUND, "snapshot not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*locwidget.Snapshot, error) {
	var snapshot locwidget.Snapshot
	var data, createdAt string

	if err := row.Scan(&snapshot.ID, &snapshot.Source, &data, &snapshot.Count,
		&snapshot.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	ds, err := locwidget.DecodeDataset([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset of snapshot %s: %w", snapshot.ID, err)
	}
	snapshot.Dataset = ds

	snapshot.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// DatasetLoader loads the dataset of the newest stored snapshot.
type DatasetLoader struct {
	snapshots locwidget.SnapshotService
}

// NewDatasetLoader creates a DatasetLoader reading from snapshots.
func NewDatasetLoader(snapshots locwidget.SnapshotService) *DatasetLoader {
	return &DatasetLoader{snapshots: snapshots}
}

// Load returns the dataset of the newest snapshot.
// Returns ELOAD if no snapshot is stored or the lookup fails.
func (l *DatasetLoader) Load(ctx context.Context) (*locwidget.Dataset, error) {
	snapshots, err := l.snapshots.FindSnapshots(ctx, locwidget.SnapshotFilter{Limit: 1})
	if err != nil {
		return nil, locwidget.Errorf(locwidget.ELOAD, "failed to read snapshots: %v", err)
	}
	if len(snapshots) == 0 {
		return nil, locwidget.Errorf(locwidget.ELOAD, "no snapshot stored, run sync first")
	}
	return snapshots[0].Dataset, nil
}
