package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/mock"
	locslog "github.com/fwojciec/locwidget/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDatasetLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs source and facility count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ds := locwidget.NewDataset([]*locwidget.Facility{{Title: "a"}, {Title: "b"}})
		inner := &mock.DatasetLoader{
			LoadFn: func(_ context.Context) (*locwidget.Dataset, error) { return ds, nil },
		}

		got, err := locslog.NewLoggingDatasetLoader(inner, "data/locations.json", logger).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, ds, got)
		output := buf.String()
		assert.Contains(t, output, "dataset load")
		assert.Contains(t, output, "source=data/locations.json")
		assert.Contains(t, output, "facilities=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DatasetLoader{
			LoadFn: func(_ context.Context) (*locwidget.Dataset, error) { return nil, errors.New("timeout") },
		}

		_, err := locslog.NewLoggingDatasetLoader(inner, "x", logger).Load(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "facilities=0")
		assert.Contains(t, output, "err=timeout")
	})
}
