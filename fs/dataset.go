package fs

import (
	"context"
	"os"

	"github.com/fwojciec/locwidget"
)

// Ensure DatasetLoader implements locwidget.DatasetLoader at compile time.
var _ locwidget.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader reads the dataset from a local JSON file.
type DatasetLoader struct {
	path string
}

// NewDatasetLoader creates a DatasetLoader for the file at path.
func NewDatasetLoader(path string) *DatasetLoader {
	return &DatasetLoader{path: path}
}

// Load reads and decodes the dataset file.
// Returns ELOAD if the file cannot be read or parsed.
func (l *DatasetLoader) Load(ctx context.Context) (*locwidget.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, locwidget.Errorf(locwidget.ELOAD, "load %s: %v", l.path, err)
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, locwidget.Errorf(locwidget.ELOAD, "failed to read %s: %v", l.path, err)
	}
	return locwidget.DecodeDataset(data)
}
