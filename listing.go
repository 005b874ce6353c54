package locwidget

import "strings"

// DirectionsBaseURL is the map service URL the encoded address is appended to.
const DirectionsBaseURL = "https://bing.com/maps/default.aspx?rtp=adr."

// NoResultsMessage is shown when a filter matches no facilities.
const NoResultsMessage = "No facilities found for the selected filter."

// LoadErrorMessage is shown when the dataset cannot be loaded.
const LoadErrorMessage = "Error loading locations data. Please check the network connection and try again."

// Icon names a glyph displayed next to a facility title.
type Icon string

// Facility icons.
const (
	IconResearch     Icon = "search"
	IconRecords      Icon = "folder-open"
	IconPresidential Icon = "book"
	IconMarker       Icon = "map-marker"
)

// Listing is the presentation unit for a single facility.
type Listing struct {
	Index         int // 1-based position in the rendered sequence
	Title         string
	Icons         []Icon
	CSSClass      string
	Address       string
	LatLong       string
	Services      string
	DirectionsURL string
	WebsiteURL    string
}

// Render produces one Listing per facility, preserving order.
func Render(facilities []*Facility) []Listing {
	listings := make([]Listing, 0, len(facilities))
	for i, f := range facilities {
		listings = append(listings, RenderFacility(i+1, f))
	}
	return listings
}

// RenderFacility produces the Listing for f at the given 1-based index.
func RenderFacility(index int, f *Facility) Listing {
	address := FormatAddress(f.Location)
	return Listing{
		Index:         index,
		Title:         f.Title,
		Icons:         FacilityIcons(f),
		CSSClass:      FacilityClass(f),
		Address:       address,
		LatLong:       formatLatLong(f.Location),
		Services:      strings.Join(f.ServiceNames(), ", "),
		DirectionsURL: DirectionsURL(address),
		WebsiteURL:    f.WebSite,
	}
}

// FacilityIcons returns one icon per category the facility belongs to,
// or the generic marker icon if it belongs to none.
func FacilityIcons(f *Facility) []Icon {
	var icons []Icon
	if Classify(f, CategoryResearch) {
		icons = append(icons, IconResearch)
	}
	if Classify(f, CategoryRecordsCenter) {
		icons = append(icons, IconRecords)
	}
	if Classify(f, CategoryPresidentialLibrary) {
		icons = append(icons, IconPresidential)
	}
	if len(icons) == 0 {
		icons = append(icons, IconMarker)
	}
	return icons
}

// FacilityClass returns the style class of the facility's most specific type.
func FacilityClass(f *Facility) string {
	switch {
	case Classify(f, CategoryPresidentialLibrary):
		return "library"
	case Classify(f, CategoryRecordsCenter):
		return "records"
	case Classify(f, CategoryResearch):
		return "research"
	default:
		return ""
	}
}

// FormatAddress builds a single-line postal address. Each present field is
// followed by its separator: street, additional line and city by ", ",
// province by " ". A nil location yields the empty string.
func FormatAddress(loc *Location) string {
	if loc == nil {
		return ""
	}
	var b strings.Builder
	if loc.Street != "" {
		b.WriteString(loc.Street)
		b.WriteString(", ")
	}
	if loc.Additional != "" {
		b.WriteString(loc.Additional)
		b.WriteString(", ")
	}
	if loc.City != "" {
		b.WriteString(loc.City)
		b.WriteString(", ")
	}
	if loc.Province != "" {
		b.WriteString(loc.Province)
		b.WriteString(" ")
	}
	b.WriteString(loc.PostalCode)
	return b.String()
}

func formatLatLong(loc *Location) string {
	if loc == nil {
		return ","
	}
	return string(loc.Latitude) + "," + string(loc.Longitude)
}

// DirectionsURL returns the map service link for address.
func DirectionsURL(address string) string {
	return DirectionsBaseURL + EscapeComponent(address)
}

// EscapeComponent percent-encodes s the way browsers encode a URI component:
// ASCII letters, digits and -_.!~*'() are kept, every other byte of the
// UTF-8 encoding is escaped.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
