package mock

import "github.com/fwojciec/locwidget"

var _ locwidget.Converter = (*Converter)(nil)

// Converter is a mock implementation of locwidget.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
