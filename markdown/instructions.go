// Package markdown renders build instructions and listing reports using the
// nao1215/markdown builder.
package markdown

import (
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/locwidget"
	"github.com/nao1215/markdown"
)

var (
	_ locwidget.InstructionsWriter = (*InstructionsWriter)(nil)
	_ locwidget.ListingWriter      = (*ListingWriter)(nil)
)

// InstructionsWriter writes the integration guide that ships with a build.
type InstructionsWriter struct{}

// NewInstructionsWriter creates a new InstructionsWriter.
func NewInstructionsWriter() *InstructionsWriter {
	return &InstructionsWriter{}
}

// WriteInstructions writes the guide for info to w.
func (iw *InstructionsWriter) WriteInstructions(w io.Writer, info locwidget.BuildInfo) error {
	endpoint := info.DataEndpoint
	if endpoint == "" {
		endpoint = locwidget.DefaultDataEndpoint
	}

	md := markdown.NewMarkdown(w)
	md.H1(info.Title)
	md.PlainText("")

	md.H2("Quick Integration")
	md.PlainText("Copy the contents of `" + locwidget.ContentFile + "` and paste directly into your Drupal content area.")
	md.PlainText("")

	md.H2("What's Included")
	md.BulletList(
		"Complete widget HTML with inline styles and JavaScript",
		"All functionality self-contained",
		"No external dependencies beyond jQuery and Bootstrap (standard in Drupal)",
	)
	md.PlainText("")

	md.H2("Dependencies")
	md.PlainText("The widget requires:")
	md.BulletList(
		"jQuery 1.7+ (included with Drupal 7)",
		"Bootstrap 3.x CSS (for basic styling)",
		"Access to NARA locations data endpoint",
	)
	md.PlainText("")

	md.H2("Data Endpoint")
	md.PlainText("The widget fetches data from: " + endpoint)
	md.PlainText("")

	md.PlainText("Build date: " + info.BuiltAt.UTC().Format("2006-01-02"))

	return md.Build()
}

// ListingWriter writes listings as a Markdown table.
type ListingWriter struct{}

// NewListingWriter creates a new ListingWriter.
func NewListingWriter() *ListingWriter {
	return &ListingWriter{}
}

// WriteListings writes the listings shown for c to w. An empty result is
// reported with the no results message.
func (lw *ListingWriter) WriteListings(w io.Writer, c locwidget.Category, listings []locwidget.Listing) error {
	md := markdown.NewMarkdown(w)
	md.H2(c.Label())
	md.PlainText("")

	if len(listings) == 0 {
		md.PlainText(locwidget.NoResultsMessage)
		return md.Build()
	}

	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			strconv.Itoa(l.Index),
			cell(l.Title),
			cell(l.Address),
			cell(l.Services),
			"[map](" + l.DirectionsURL + ")",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Facility", "Address", "Services", "Directions"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText(strconv.Itoa(len(listings)) + " facilities")

	return md.Build()
}

// cell escapes pipes so facility text cannot split a table column.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
