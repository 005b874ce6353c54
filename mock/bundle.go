package mock

import (
	"context"
	"io"

	"github.com/fwojciec/locwidget"
)

var (
	_ locwidget.BundleStore        = (*BundleStore)(nil)
	_ locwidget.InstructionsWriter = (*InstructionsWriter)(nil)
	_ locwidget.ListingWriter      = (*ListingWriter)(nil)
)

// BundleStore is a mock implementation of locwidget.BundleStore.
type BundleStore struct {
	SaveBundleFn func(ctx context.Context, bundle *locwidget.Bundle) error
}

func (s *BundleStore) SaveBundle(ctx context.Context, bundle *locwidget.Bundle) error {
	return s.SaveBundleFn(ctx, bundle)
}

// InstructionsWriter is a mock implementation of locwidget.InstructionsWriter.
type InstructionsWriter struct {
	WriteInstructionsFn func(w io.Writer, info locwidget.BuildInfo) error
}

func (iw *InstructionsWriter) WriteInstructions(w io.Writer, info locwidget.BuildInfo) error {
	return iw.WriteInstructionsFn(w, info)
}

// ListingWriter is a mock implementation of locwidget.ListingWriter.
type ListingWriter struct {
	WriteListingsFn func(w io.Writer, c locwidget.Category, listings []locwidget.Listing) error
}

func (lw *ListingWriter) WriteListings(w io.Writer, c locwidget.Category, listings []locwidget.Listing) error {
	return lw.WriteListingsFn(w, c, listings)
}
