// Package htmltomarkdown renders extracted widget regions as Markdown for
// terminal previews.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/locwidget"
)

// Ensure Converter implements locwidget.Converter at compile time.
var _ locwidget.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to preview a region.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a region into Markdown.
// Returns EINVALID for blank input; a region with no text yields a
// placeholder line so the preview is never silently empty.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", locwidget.Errorf(locwidget.EINVALID, "empty region")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", locwidget.Errorf(locwidget.EINTERNAL, "failed to convert region: %v", err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return EmptyPreview, nil
	}
	return result + "\n", nil
}

// EmptyPreview is returned for regions that contain markup but no text.
const EmptyPreview = "_(region has no text content)_\n"
