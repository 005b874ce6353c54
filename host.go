package locwidget

// Host is the page the widget is embedded in. It owns the filter triggers,
// the listing container and the URL fragment.
type Host interface {
	// Fragment returns the URL fragment the page was loaded with.
	Fragment() string

	// SetFragment records the fragment of the active filter so the page
	// state is shareable. The empty string clears it.
	SetFragment(fragment string)

	// SetActive marks the filter trigger of c as the active one and clears
	// the others.
	SetActive(c Category)

	// ShowListings replaces the container content with listings.
	// An empty slice shows the no results message.
	ShowListings(listings []Listing)

	// ShowError replaces the container content with a static error message.
	ShowError(message string)
}

// HostElement identifies an element the widget attaches to in the host page.
type HostElement struct {
	Selector string
	Category Category // empty for the listing container
}

// HostElements lists the elements a host page must provide.
var HostElements = []HostElement{
	{Selector: "a#all-filter_static", Category: CategoryAll},
	{Selector: "a#research-filter_static", Category: CategoryResearch},
	{Selector: "a#frc-filter_static", Category: CategoryRecordsCenter},
	{Selector: "a#presidential-libraries-filter_static", Category: CategoryPresidentialLibrary},
	{Selector: "section#facility-index"},
}

// HostReport describes how well a page satisfies the host contract.
type HostReport struct {
	Title   string
	Found   []HostElement
	Missing []HostElement

	// Active is the category whose trigger the page marks active, or the
	// empty category if no trigger is marked.
	Active Category
}

// OK reports whether every required element was found.
func (r *HostReport) OK() bool {
	return len(r.Missing) == 0
}

// HostChecker verifies that a page provides the elements the widget needs.
type HostChecker interface {
	// Check parses html and reports found and missing host elements and
	// the active filter trigger.
	// Returns EINVALID if html cannot be parsed.
	Check(html string) (*HostReport, error)
}
