package mock

import (
	"context"

	"github.com/fwojciec/locwidget"
)

var _ locwidget.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader is a mock implementation of locwidget.DatasetLoader.
type DatasetLoader struct {
	LoadFn func(ctx context.Context) (*locwidget.Dataset, error)
}

func (l *DatasetLoader) Load(ctx context.Context) (*locwidget.Dataset, error) {
	return l.LoadFn(ctx)
}
