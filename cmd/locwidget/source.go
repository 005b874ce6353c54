package main

import (
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/locwidget"
)

// readSource returns the page at source, fetching http(s) URLs and reading
// anything else from disk.
func readSource(deps *Dependencies, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return deps.Fetcher.Fetch(deps.Ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", locwidget.Errorf(locwidget.ENOTFOUND, "cannot read %s: %v", source, err)
	}
	return string(data), nil
}

// describe returns the message of application errors and the full text of
// anything else.
func describe(err error) string {
	var e *locwidget.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
