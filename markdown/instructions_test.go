package markdown_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionsWriter_WriteInstructions(t *testing.T) {
	t.Parallel()

	t.Run("writes every section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		info := locwidget.BuildInfo{
			Title:        "National Archives Locations Widget - Drupal Integration",
			DataEndpoint: "/data/locations.json",
			BuiltAt:      time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC),
		}

		err := markdown.NewInstructionsWriter().WriteInstructions(&buf, info)

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "# National Archives Locations Widget - Drupal Integration")
		assert.Contains(t, out, "## Quick Integration")
		assert.Contains(t, out, "`widget-content.html`")
		assert.Contains(t, out, "## What's Included")
		assert.Contains(t, out, "- All functionality self-contained")
		assert.Contains(t, out, "## Dependencies")
		assert.Contains(t, out, "- jQuery 1.7+ (included with Drupal 7)")
		assert.Contains(t, out, "## Data Endpoint")
		assert.Contains(t, out, "The widget fetches data from: /data/locations.json")
		assert.Contains(t, out, "Build date: 2026-03-09")
	})

	t.Run("defaults the data endpoint", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := markdown.NewInstructionsWriter().WriteInstructions(&buf, locwidget.BuildInfo{Title: "W"})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), locwidget.DefaultDataEndpoint)
	})

	t.Run("build date uses UTC", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		east := time.FixedZone("east", 10*60*60)

		err := markdown.NewInstructionsWriter().WriteInstructions(&buf, locwidget.BuildInfo{
			Title:   "W",
			BuiltAt: time.Date(2026, 3, 10, 5, 0, 0, 0, east),
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Build date: 2026-03-09")
	})
}

func TestListingWriter_WriteListings(t *testing.T) {
	t.Parallel()

	t.Run("writes table of listings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		listings := locwidget.Render([]*locwidget.Facility{
			{
				Title:             "Archives | II",
				Location:          &locwidget.Location{Street: "8601 Adelphi Rd", City: "College Park", Province: "MD", PostalCode: "20740"},
				FacilityTypes:     []locwidget.Tag{{Name: "research"}},
				AvailableServices: []locwidget.Tag{{Name: "Research Room"}},
			},
		})

		err := markdown.NewListingWriter().WriteListings(&buf, locwidget.CategoryResearch, listings)

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "## Research Facilities")
		assert.Contains(t, out, "Archives")
		assert.Contains(t, out, "8601 Adelphi Rd, College Park, MD 20740")
		assert.Contains(t, out, "Research Room")
		assert.Contains(t, out, "[map](https://bing.com/maps/default.aspx?rtp=adr.8601%20Adelphi%20Rd")
		assert.Contains(t, out, "1 facilities")
	})

	t.Run("writes no results message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := markdown.NewListingWriter().WriteListings(&buf, locwidget.CategoryPresidentialLibrary, nil)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "## Presidential Libraries")
		assert.Contains(t, buf.String(), locwidget.NoResultsMessage)
	})
}
