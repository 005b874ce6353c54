package main

import (
	"fmt"

	"github.com/fwojciec/locwidget/widget"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	host := &terminalHost{fragment: c.Filter, stderr: deps.Stderr}
	w := &widget.Widget{Loader: deps.Loader, Host: host}

	if err := w.Init(deps.Ctx); err != nil {
		return err
	}

	if err := deps.Listings.WriteListings(deps.Stdout, w.Category(), w.Listings()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	return nil
}
