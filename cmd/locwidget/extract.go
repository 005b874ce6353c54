package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/build"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	source := c.Source
	if source == "" {
		source = deps.Config.Source
	}
	marker := c.Marker
	if marker == "" {
		marker = deps.Config.Marker
	}

	document, err := readSource(deps, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	if c.Preview {
		return c.preview(deps, document, marker)
	}

	endpoint := c.DataEndpoint
	if endpoint == "" {
		endpoint = deps.Config.DataEndpoint
	}

	bundle, err := deps.Builder.Build(deps.Ctx, document, build.Options{
		Marker:       marker,
		Title:        c.Title,
		DataEndpoint: endpoint,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Build failed: %s\n", describe(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = deps.Config.Out
	}
	fmt.Fprintf(deps.Stdout, "Build complete! Files generated in %s:\n", out)
	fmt.Fprintf(deps.Stdout, "  - %s (%d bytes, ready to paste into Drupal)\n", filepath.Join(out, locwidget.ContentFile), len(bundle.Content))
	fmt.Fprintf(deps.Stdout, "  - %s (integration instructions)\n", filepath.Join(out, locwidget.InstructionsFile))
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Next steps:")
	fmt.Fprintf(deps.Stdout, "  1. Copy the contents of %s\n", filepath.Join(out, locwidget.ContentFile))
	fmt.Fprintln(deps.Stdout, "  2. Paste into your Drupal content area")
	fmt.Fprintln(deps.Stdout, "  3. Ensure jQuery and Bootstrap are loaded on the page")
	return nil
}

func (c *ExtractCmd) preview(deps *Dependencies, document, marker string) error {
	region, err := locwidget.ExtractRegion(document, marker)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Build failed: %s\n", describe(err))
		return err
	}
	md, err := deps.Converter.Convert(region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	fmt.Fprint(deps.Stdout, md)
	return nil
}
