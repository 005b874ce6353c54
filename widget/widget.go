// Package widget drives the facility directory: it loads the dataset once,
// derives the initial filter from the host page fragment and re-renders the
// listings on every selection.
package widget

import (
	"context"

	"github.com/fwojciec/locwidget"
)

// Widget is the filter state machine behind the directory.
// It is not safe for concurrent use; the host drives it from a single
// goroutine.
type Widget struct {
	Loader locwidget.DatasetLoader
	Host   locwidget.Host

	facilities []*locwidget.Facility
	category   locwidget.Category
	listings   []locwidget.Listing
	loaded     bool
}

// Init loads the dataset in a single attempt and shows the listings for the
// category named by the host fragment. On failure the host shows the load
// error message, the widget stays unloaded and an ELOAD error is returned.
func (w *Widget) Init(ctx context.Context) error {
	ds, err := w.Loader.Load(ctx)
	if err != nil {
		w.Host.ShowError(locwidget.LoadErrorMessage)
		if locwidget.ErrorCode(err) == locwidget.ELOAD {
			return err
		}
		return locwidget.Errorf(locwidget.ELOAD, "failed to load locations data: %v", err)
	}

	w.facilities = ds.Facilities()
	w.loaded = true
	w.apply(locwidget.CategoryFromFragment(w.Host.Fragment()))
	return nil
}

// Select applies a user selection: it recomputes the filter, re-renders the
// listings, marks the active trigger and writes the category's fragment.
// Selections made before a successful Init are ignored.
func (w *Widget) Select(c locwidget.Category) {
	if !w.loaded {
		return
	}
	next := locwidget.Next(w.category, locwidget.Selection{Category: c})
	w.apply(next)
	w.Host.SetFragment(next.Fragment())
}

// Loaded reports whether the dataset was loaded successfully.
func (w *Widget) Loaded() bool {
	return w.loaded
}

// Category returns the active category.
func (w *Widget) Category() locwidget.Category {
	return w.category
}

// Listings returns the listings currently shown.
func (w *Widget) Listings() []locwidget.Listing {
	return w.listings
}

func (w *Widget) apply(c locwidget.Category) {
	w.category = c
	w.listings = locwidget.Render(locwidget.Filter(w.facilities, c))
	w.Host.SetActive(c)
	w.Host.ShowListings(w.listings)
}
