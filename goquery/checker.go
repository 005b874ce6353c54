// Package goquery inspects host pages using the goquery HTML library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locwidget"
)

// Ensure HostChecker implements locwidget.HostChecker at compile time.
var _ locwidget.HostChecker = (*HostChecker)(nil)

// HostChecker verifies that a page carries the filter triggers and the
// listing container the widget attaches to.
type HostChecker struct {
	// Elements overrides the elements to look for. Defaults to
	// locwidget.HostElements.
	Elements []locwidget.HostElement
}

// NewHostChecker creates a new HostChecker.
func NewHostChecker() *HostChecker {
	return &HostChecker{}
}

// Check parses html and reports which host elements are present. The
// active category is taken from the first trigger whose parent carries the
// "active" class.
func (c *HostChecker) Check(html string) (*locwidget.HostReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locwidget.Errorf(locwidget.EINVALID, "failed to parse HTML: %v", err)
	}

	elements := c.Elements
	if elements == nil {
		elements = locwidget.HostElements
	}

	report := &locwidget.HostReport{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	for _, el := range elements {
		if doc.Find(el.Selector).Length() > 0 {
			report.Found = append(report.Found, el)
		} else {
			report.Missing = append(report.Missing, el)
		}
		if report.Active == "" && el.Category != "" && doc.Find(".active > "+el.Selector).Length() > 0 {
			report.Active = el.Category
		}
	}
	return report, nil
}
