package locwidget

import "strings"

// Category is one of the mutually exclusive facility classifications used
// for filtering.
type Category string

// Supported categories.
const (
	CategoryAll                 Category = "all"
	CategoryResearch            Category = "research"
	CategoryRecordsCenter       Category = "records-center"
	CategoryPresidentialLibrary Category = "presidential-library"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAll,
	CategoryResearch,
	CategoryRecordsCenter,
	CategoryPresidentialLibrary,
}

type categoryInfo struct {
	keyword  string
	fragment string
	label    string
}

var categoryTable = map[Category]categoryInfo{
	CategoryAll:                 {keyword: "", fragment: "", label: "All Locations"},
	CategoryResearch:            {keyword: "research", fragment: "research-facilities", label: "Research Facilities"},
	CategoryRecordsCenter:       {keyword: "records", fragment: "frc", label: "Federal Records Centers"},
	CategoryPresidentialLibrary: {keyword: "presidential", fragment: "presidential-libraries", label: "Presidential Libraries"},
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Keyword returns the facility type name matched by the category.
// All has no keyword.
func (c Category) Keyword() string {
	return categoryTable[c].keyword
}

// Fragment returns the URL fragment that selects the category.
// All maps to the empty fragment.
func (c Category) Fragment() string {
	return categoryTable[c].fragment
}

// Label returns the human readable name of the category.
func (c Category) Label() string {
	return categoryTable[c].label
}

// CategoryFromFragment maps a URL fragment to a category.
// Unrecognized fragments select All.
func CategoryFromFragment(fragment string) Category {
	fragment = strings.TrimPrefix(fragment, "#")
	for _, c := range Categories {
		if c != CategoryAll && c.Fragment() == fragment {
			return c
		}
	}
	return CategoryAll
}

// FragmentFromURL returns the text after the last '#' of rawURL,
// or the empty string if rawURL has no fragment.
func FragmentFromURL(rawURL string) string {
	i := strings.LastIndexByte(rawURL, '#')
	if i < 0 {
		return ""
	}
	return rawURL[i+1:]
}

// Selection is an explicit user choice of a filter category.
type Selection struct {
	Category Category
}

// Next returns the category that results from applying sel to current.
// Selecting an unknown category leaves the filter unchanged.
func Next(current Category, sel Selection) Category {
	if !sel.Category.Valid() {
		return current
	}
	return sel.Category
}

// Classify reports whether f belongs to category c.
func Classify(f *Facility, c Category) bool {
	if c == CategoryAll {
		return true
	}
	keyword := c.Keyword()
	if keyword == "" {
		return false
	}
	return f.HasType(keyword)
}

// Filter returns, in their original order, the facilities that belong to c.
// For All the input is returned unchanged.
func Filter(facilities []*Facility, c Category) []*Facility {
	if c == CategoryAll {
		return facilities
	}
	result := make([]*Facility, 0, len(facilities))
	for _, f := range facilities {
		if Classify(f, c) {
			result = append(result, f)
		}
	}
	return result
}
