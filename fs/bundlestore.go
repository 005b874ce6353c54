// Package fs provides file-based storage for widget builds and datasets.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/locwidget"
)

// Ensure BundleStore implements locwidget.BundleStore at compile time.
var _ locwidget.BundleStore = (*BundleStore)(nil)

// BundleStore writes a bundle into an output directory with atomic update
// semantics. Files are written to a temporary sibling directory which
// replaces the output directory only once every file has been written.
type BundleStore struct {
	baseDir string
	name    string
}

// NewBundleStore creates a new BundleStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on commit.
func NewBundleStore(baseDir, name string) *BundleStore {
	return &BundleStore{
		baseDir: baseDir,
		name:    name,
	}
}

// NewBundleStoreForPath creates a BundleStore for the output directory path.
func NewBundleStoreForPath(path string) *BundleStore {
	path = filepath.Clean(path)
	return NewBundleStore(filepath.Dir(path), filepath.Base(path))
}

// Dir returns the final output directory.
func (s *BundleStore) Dir() string {
	return s.finalDir()
}

func (s *BundleStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *BundleStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// SaveBundle writes the widget content and instructions, then commits them.
// On any failure the temporary directory is removed and the previous output
// is left untouched.
func (s *BundleStore) SaveBundle(ctx context.Context, bundle *locwidget.Bundle) error {
	if err := s.save(ctx, bundle); err != nil {
		_ = s.abort()
		return err
	}
	return s.commit()
}

func (s *BundleStore) save(ctx context.Context, bundle *locwidget.Bundle) error {
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	files := []struct {
		name    string
		content string
	}{
		{locwidget.ContentFile, bundle.Content},
		{locwidget.InstructionsFile, bundle.Instructions},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(s.tempDir(), f.name), []byte(f.content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (s *BundleStore) commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *BundleStore) abort() error {
	return os.RemoveAll(s.tempDir())
}
