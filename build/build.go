// Package build produces an embeddable widget bundle from a static page.
package build

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/locwidget"
)

// DefaultTitle heads the generated instructions.
const DefaultTitle = "National Archives Locations Widget - Drupal Integration"

// Builder extracts the widget region from a page and stores it together
// with the integration instructions.
type Builder struct {
	Instructions locwidget.InstructionsWriter
	Store        locwidget.BundleStore

	// Now returns the build time. Defaults to time.Now.
	Now func() time.Time
}

// Options configures a single build.
type Options struct {
	Marker       string
	Title        string
	DataEndpoint string
}

// Build extracts the region from document and saves the bundle.
// Extraction errors (ENOTFOUND, EUNBALANCED, EINVALID) are returned
// unchanged and nothing is saved.
func (b *Builder) Build(ctx context.Context, document string, opts Options) (*locwidget.Bundle, error) {
	marker := opts.Marker
	if marker == "" {
		marker = locwidget.DefaultMarker
	}

	content, err := locwidget.ExtractRegion(document, marker)
	if err != nil {
		return nil, err
	}

	info := locwidget.BuildInfo{
		Title:        opts.Title,
		DataEndpoint: opts.DataEndpoint,
		BuiltAt:      b.now(),
	}
	if info.Title == "" {
		info.Title = DefaultTitle
	}
	if info.DataEndpoint == "" {
		info.DataEndpoint = locwidget.DefaultDataEndpoint
	}

	var buf bytes.Buffer
	if err := b.Instructions.WriteInstructions(&buf, info); err != nil {
		return nil, fmt.Errorf("render instructions: %w", err)
	}

	bundle := &locwidget.Bundle{
		Content:      content,
		Instructions: buf.String(),
	}

	if err := b.Store.SaveBundle(ctx, bundle); err != nil {
		return nil, fmt.Errorf("save bundle: %w", err)
	}

	return bundle, nil
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
