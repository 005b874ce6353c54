package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/locwidget"
)

var _ locwidget.Host = (*terminalHost)(nil)

// terminalHost hosts the widget in a one-shot command: the fragment comes
// from a flag and errors go to stderr.
type terminalHost struct {
	fragment string
	active   locwidget.Category
	listings []locwidget.Listing
	stderr   io.Writer
}

func (h *terminalHost) Fragment() string { return h.fragment }

func (h *terminalHost) SetFragment(fragment string) { h.fragment = fragment }

func (h *terminalHost) SetActive(c locwidget.Category) { h.active = c }

func (h *terminalHost) ShowListings(listings []locwidget.Listing) { h.listings = listings }

func (h *terminalHost) ShowError(message string) {
	fmt.Fprintln(h.stderr, message)
}
