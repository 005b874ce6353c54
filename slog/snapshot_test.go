package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/mock"
	locslog "github.com/fwojciec/locwidget/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSnapshotService(t *testing.T) {
	t.Parallel()

	t.Run("logs created snapshot", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, s *locwidget.Snapshot) error {
				s.ID = "snap-1"
				s.Count = 3
				return nil
			},
		}

		err := locslog.NewLoggingSnapshotService(inner, logger).CreateSnapshot(context.Background(),
			&locwidget.Snapshot{Source: "https://example.com/locations.json"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create snapshot")
		assert.Contains(t, output, "id=snap-1")
		assert.Contains(t, output, "count=3")
	})

	t.Run("delegates reads without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := []*locwidget.Snapshot{{ID: "a"}}
		inner := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ locwidget.SnapshotFilter) ([]*locwidget.Snapshot, error) {
				return want, nil
			},
		}

		got, err := locslog.NewLoggingSnapshotService(inner, logger).FindSnapshots(context.Background(), locwidget.SnapshotFilter{})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Empty(t, buf.String())
	})

	t.Run("logs deletion", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, _ string) error { return nil },
		}

		require.NoError(t, locslog.NewLoggingSnapshotService(inner, logger).DeleteSnapshot(context.Background(), "snap-1"))

		assert.Contains(t, buf.String(), "delete snapshot")
	})
}
