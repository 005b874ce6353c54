package locwidget

import (
	"context"
	"io"
	"time"
)

// Bundle is the output of a widget build: the extracted region and the
// instructions for embedding it.
type Bundle struct {
	Content      string
	Instructions string
}

// Build file names.
const (
	ContentFile      = "widget-content.html"
	InstructionsFile = "README.md"
)

// DefaultDataEndpoint is the path the embedded widget loads its data from.
const DefaultDataEndpoint = "/sites/all/modules/custom/nwsync/locations.js"

// BuildInfo describes a build for the instructions document.
type BuildInfo struct {
	Title        string
	DataEndpoint string
	BuiltAt      time.Time
}

// InstructionsWriter renders the integration instructions for a build.
type InstructionsWriter interface {
	WriteInstructions(w io.Writer, info BuildInfo) error
}

// BundleStore persists a build with atomic semantics: either every file of
// the bundle is written or none is.
type BundleStore interface {
	SaveBundle(ctx context.Context, bundle *Bundle) error
}

// ListingWriter renders listings as a report.
type ListingWriter interface {
	WriteListings(w io.Writer, c Category, listings []Listing) error
}
