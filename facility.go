package locwidget

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// Facility represents one entry in the locations dataset.
type Facility struct {
	Title             string    `json:"title"`
	Location          *Location `json:"location,omitempty"`
	FacilityTypes     []Tag     `json:"facility_type,omitempty"`
	AvailableServices []Tag     `json:"available_services,omitempty"`
	WebSite           string    `json:"web_site,omitempty"`
}

// HasType reports whether any facility type tag equals name, ignoring case.
func (f *Facility) HasType(name string) bool {
	for _, t := range f.FacilityTypes {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// ServiceNames returns the names of the services offered by the facility.
func (f *Facility) ServiceNames() []string {
	if len(f.AvailableServices) == 0 {
		return nil
	}
	names := make([]string, 0, len(f.AvailableServices))
	for _, s := range f.AvailableServices {
		names = append(names, s.Name)
	}
	return names
}

// Location is the postal and geographic location of a facility.
// Every field is optional.
type Location struct {
	Street     string     `json:"street,omitempty"`
	Additional string     `json:"additional,omitempty"`
	City       string     `json:"city,omitempty"`
	Province   string     `json:"province,omitempty"`
	PostalCode string     `json:"postal_code,omitempty"`
	Latitude   Coordinate `json:"latitude,omitempty"`
	Longitude  Coordinate `json:"longitude,omitempty"`
}

// Tag is a named facility type or service.
type Tag struct {
	Name string `json:"name"`
}

// Coordinate holds a latitude or longitude in its textual form.
// The dataset publishes coordinates both as JSON numbers and as strings.
type Coordinate string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Coordinate(n.String())
	return nil
}

// Dataset is the envelope the locations endpoint returns.
type Dataset struct {
	Response struct {
		List []*Facility `json:"list"`
	} `json:"response"`
}

// NewDataset wraps facilities in a Dataset envelope.
func NewDataset(facilities []*Facility) *Dataset {
	ds := &Dataset{}
	ds.Response.List = facilities
	return ds
}

// MarshalJSON encodes the dataset envelope. An empty dataset encodes its
// list as [] so the document decodes again.
func (d Dataset) MarshalJSON() ([]byte, error) {
	type envelope Dataset
	e := envelope(d)
	if e.Response.List == nil {
		e.Response.List = []*Facility{}
	}
	return json.Marshal(e)
}

// Facilities returns the facility records held by the dataset.
func (d *Dataset) Facilities() []*Facility {
	if d == nil {
		return nil
	}
	return d.Response.List
}

// DecodeDataset parses the JSON form of a dataset.
// Returns ELOAD if the data is not a valid dataset document, including a
// document without a response list or with a null facility entry.
func DecodeDataset(data []byte) (*Dataset, error) {
	var doc struct {
		Response *struct {
			List []*Facility `json:"list"`
		} `json:"response"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Errorf(ELOAD, "failed to parse locations data: %v", err)
	}
	if doc.Response == nil || doc.Response.List == nil {
		return nil, Errorf(ELOAD, "locations data has no response list")
	}
	for i, f := range doc.Response.List {
		if f == nil {
			return nil, Errorf(ELOAD, "locations data has a null entry at index %d", i)
		}
	}
	return NewDataset(doc.Response.List), nil
}

// DatasetLoader loads the facility dataset.
type DatasetLoader interface {
	// Load retrieves and decodes the dataset in a single attempt.
	// Returns ELOAD if the dataset cannot be fetched or parsed.
	Load(ctx context.Context) (*Dataset, error)
}
