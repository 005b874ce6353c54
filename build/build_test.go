package build_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/build"
	"github.com/fwojciec/locwidget/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<nav>menu</nav>
<div id="main-content" class="container">
  <div class="row"><div class="col">widget</div></div>
</div>
</body></html>`

func instructionsStub(captured *locwidget.BuildInfo) *mock.InstructionsWriter {
	return &mock.InstructionsWriter{
		WriteInstructionsFn: func(w io.Writer, info locwidget.BuildInfo) error {
			*captured = info
			_, err := fmt.Fprintf(w, "# %s\n", info.Title)
			return err
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("extracts region and saves bundle", func(t *testing.T) {
		t.Parallel()

		var info locwidget.BuildInfo
		var saved *locwidget.Bundle
		builtAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
		b := &build.Builder{
			Instructions: instructionsStub(&info),
			Store: &mock.BundleStore{
				SaveBundleFn: func(_ context.Context, bundle *locwidget.Bundle) error {
					saved = bundle
					return nil
				},
			},
			Now: func() time.Time { return builtAt },
		}

		bundle, err := b.Build(context.Background(), page, build.Options{})

		require.NoError(t, err)
		assert.Equal(t, `<div class="row"><div class="col">widget</div></div>`, bundle.Content)
		assert.Equal(t, "# "+build.DefaultTitle+"\n", bundle.Instructions)
		assert.Equal(t, bundle, saved)
		assert.Equal(t, builtAt, info.BuiltAt)
		assert.Equal(t, locwidget.DefaultDataEndpoint, info.DataEndpoint)
	})

	t.Run("uses custom marker and endpoint", func(t *testing.T) {
		t.Parallel()

		var info locwidget.BuildInfo
		b := &build.Builder{
			Instructions: instructionsStub(&info),
			Store: &mock.BundleStore{
				SaveBundleFn: func(_ context.Context, _ *locwidget.Bundle) error { return nil },
			},
		}

		bundle, err := b.Build(context.Background(), `<nav id="menu"><nav>x</nav></nav>`, build.Options{
			Marker:       `<nav id="menu"`,
			DataEndpoint: "/data/locations.json",
		})

		require.NoError(t, err)
		assert.Equal(t, "<nav>x</nav>", bundle.Content)
		assert.Equal(t, "/data/locations.json", info.DataEndpoint)
		assert.False(t, info.BuiltAt.IsZero())
	})

	t.Run("saves nothing when marker is missing", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{
			Instructions: &mock.InstructionsWriter{},
			Store:        &mock.BundleStore{},
		}

		_, err := b.Build(context.Background(), "<html></html>", build.Options{})

		require.Error(t, err)
		assert.Equal(t, locwidget.ENOTFOUND, locwidget.ErrorCode(err))
	})

	t.Run("saves nothing when region is unbalanced", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{
			Instructions: &mock.InstructionsWriter{},
			Store:        &mock.BundleStore{},
		}

		_, err := b.Build(context.Background(), `<div id="main-content"><div>`, build.Options{})

		require.Error(t, err)
		assert.Equal(t, locwidget.EUNBALANCED, locwidget.ErrorCode(err))
	})

	t.Run("returns store error", func(t *testing.T) {
		t.Parallel()

		var info locwidget.BuildInfo
		b := &build.Builder{
			Instructions: instructionsStub(&info),
			Store: &mock.BundleStore{
				SaveBundleFn: func(_ context.Context, _ *locwidget.Bundle) error {
					return errors.New("read-only file system")
				},
			},
		}

		_, err := b.Build(context.Background(), page, build.Options{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only file system")
	})
}
