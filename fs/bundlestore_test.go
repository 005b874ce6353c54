package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Build Output
// The store writes a bundle to a temp directory and swaps it into place.

func TestBundleStore_SaveWritesBothFiles(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewBundleStore(base, "dist")

	// When I save a bundle
	err := store.SaveBundle(context.Background(), &locwidget.Bundle{
		Content:      "<p>widget</p>",
		Instructions: "# Widget\n",
	})

	// Then both files exist in the output directory
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(base, "dist", locwidget.ContentFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>widget</p>", string(content))

	instructions, err := os.ReadFile(filepath.Join(base, "dist", locwidget.InstructionsFile))
	require.NoError(t, err)
	assert.Equal(t, "# Widget\n", string(instructions))

	// And the temp directory is gone
	_, err = os.Stat(filepath.Join(base, "dist.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestBundleStore_ReplacesPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given an output directory from a previous build with a stale file
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "dist"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "dist", "stale.html"), []byte("old"), 0644))
	store := fs.NewBundleStore(base, "dist")

	// When I save a new bundle
	err := store.SaveBundle(context.Background(), &locwidget.Bundle{Content: "new"})

	// Then the stale file is gone
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "dist", "stale.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestBundleStore_CanceledContextKeepsPreviousOutput(t *testing.T) {
	t.Parallel()

	// Given a previous build
	base := t.TempDir()
	store := fs.NewBundleStore(base, "dist")
	require.NoError(t, store.SaveBundle(context.Background(), &locwidget.Bundle{Content: "v1"}))

	// When a save is canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := store.SaveBundle(ctx, &locwidget.Bundle{Content: "v2"})

	// Then the previous output is untouched and no temp directory remains
	require.Error(t, err)
	content, err := os.ReadFile(filepath.Join(base, "dist", locwidget.ContentFile))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(content))
	_, err = os.Stat(filepath.Join(base, "dist.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewBundleStoreForPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewBundleStoreForPath(filepath.Join(base, "out", "dist") + "/")

	assert.Equal(t, filepath.Join(base, "out", "dist"), store.Dir())
}
