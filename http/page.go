package http

import (
	"html/template"
	"strings"

	"github.com/fwojciec/locwidget"
)

// Ensure pageHost implements locwidget.Host at compile time.
var _ locwidget.Host = (*pageHost)(nil)

// pageHost collects the widget's output for a single page render.
type pageHost struct {
	fragment string
	active   locwidget.Category
	listings []locwidget.Listing
	errMsg   string
}

func (h *pageHost) Fragment() string                          { return h.fragment }
func (h *pageHost) SetFragment(fragment string)               { h.fragment = fragment }
func (h *pageHost) SetActive(c locwidget.Category)            { h.active = c }
func (h *pageHost) ShowListings(listings []locwidget.Listing) { h.listings = listings }
func (h *pageHost) ShowError(message string)                  { h.errMsg = message }

type filterView struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

type pageView struct {
	Filters   []filterView
	Listings  []locwidget.Listing
	Error     string
	NoResults string
}

func newPageView(host *pageHost) pageView {
	v := pageView{
		Listings:  host.listings,
		Error:     host.errMsg,
		NoResults: locwidget.NoResultsMessage,
	}
	for _, el := range locwidget.HostElements {
		if el.Category == "" {
			continue
		}
		v.Filters = append(v.Filters, filterView{
			ID:     strings.TrimPrefix(el.Selector, "a#"),
			Label:  el.Category.Label(),
			Href:   "/?select=" + string(el.Category),
			Active: el.Category == host.active && host.errMsg == "",
		})
	}
	return v
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Locations</title>
</head>
<body>
<div id="main-content">
<ul class="nav nav-pills">
{{- range .Filters}}
<li{{if .Active}} class="active"{{end}}><a id="{{.ID}}" href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
</ul>
<section id="facility-index">
{{- if .Error}}
<p class="alert alert-danger">{{.Error}}</p>
{{- else if not .Listings}}
<p class="alert alert-info">{{.NoResults}}</p>
{{- else}}
{{- range .Listings}}
<div id="facil-{{.Index}}" class="facility {{.CSSClass}} facility-row">
<div data-facil_index="{{.Index}}"></div>
<h3>{{range .Icons}}<span class="glyphicon glyphicon-{{.}}"></span> {{end}}{{.Title}}</h3>
<address data-latlong="{{.LatLong}}">{{.Address}}</address>
<p><strong>Available services:</strong> {{.Services}}</p>
<p><a target="_blank" class="directions" href="{{.DirectionsURL}}">Get Directions</a> &middot; <a href="{{.WebsiteURL}}" target="_blank">Visit Website</a></p>
</div>
{{- end}}
{{- end}}
</section>
</div>
</body>
</html>
`))
