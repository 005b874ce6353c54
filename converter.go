package locwidget

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as an extracted region,
	// into Markdown for terminal preview.
	Convert(html string) (string, error)
}
