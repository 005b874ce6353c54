package main

import (
	"fmt"

	"github.com/fwojciec/locwidget"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	html, err := readSource(deps, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	report, err := deps.Checker.Check(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	if report.Title != "" {
		fmt.Fprintf(deps.Stdout, "Page: %s\n", report.Title)
	}
	for _, el := range report.Found {
		fmt.Fprintf(deps.Stdout, "  ok       %s\n", el.Selector)
	}
	for _, el := range report.Missing {
		fmt.Fprintf(deps.Stdout, "  missing  %s\n", el.Selector)
	}
	if report.Active != "" {
		fmt.Fprintf(deps.Stdout, "Active filter: %s\n", report.Active.Label())
	} else {
		fmt.Fprintln(deps.Stdout, "Active filter: none marked")
	}

	if !report.OK() {
		err := locwidget.Errorf(locwidget.ENOTFOUND, "host page is missing %d of %d widget elements", len(report.Missing), len(report.Missing)+len(report.Found))
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Host page provides every widget element.")
	return nil
}
