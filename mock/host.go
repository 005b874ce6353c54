package mock

import "github.com/fwojciec/locwidget"

var (
	_ locwidget.Host        = (*Host)(nil)
	_ locwidget.HostChecker = (*HostChecker)(nil)
)

// Host is a mock implementation of locwidget.Host.
type Host struct {
	FragmentFn     func() string
	SetFragmentFn  func(fragment string)
	SetActiveFn    func(c locwidget.Category)
	ShowListingsFn func(listings []locwidget.Listing)
	ShowErrorFn    func(message string)
}

func (h *Host) Fragment() string {
	return h.FragmentFn()
}

func (h *Host) SetFragment(fragment string) {
	h.SetFragmentFn(fragment)
}

func (h *Host) SetActive(c locwidget.Category) {
	h.SetActiveFn(c)
}

func (h *Host) ShowListings(listings []locwidget.Listing) {
	h.ShowListingsFn(listings)
}

func (h *Host) ShowError(message string) {
	h.ShowErrorFn(message)
}

// HostChecker is a mock implementation of locwidget.HostChecker.
type HostChecker struct {
	CheckFn func(html string) (*locwidget.HostReport, error)
}

func (c *HostChecker) Check(html string) (*locwidget.HostReport, error) {
	return c.CheckFn(html)
}
