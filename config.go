package locwidget

import (
	"strings"
	"time"
)

// Config holds settings shared by the command line tools.
type Config struct {
	// Dataset is the dataset source: an http(s) URL, a file path or
	// "snapshot:" for the newest stored snapshot.
	Dataset string `yaml:"dataset"`

	// Source is the page the widget region is extracted from.
	Source string `yaml:"source"`

	// Marker is the opening tag signature of the widget region.
	Marker string `yaml:"marker"`

	// Out is the build output directory.
	Out string `yaml:"out"`

	// DataEndpoint is the dataset path advertised in build instructions.
	DataEndpoint string `yaml:"data_endpoint"`

	// Listen is the address the widget server binds to.
	Listen string `yaml:"listen"`

	// RateLimit is the per-client request rate of the widget server.
	RateLimit float64 `yaml:"rate_limit"`

	// Timeout bounds the dataset fetch.
	Timeout time.Duration `yaml:"timeout"`
}

// SnapshotSource selects the newest stored snapshot as dataset source.
const SnapshotSource = "snapshot:"

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Dataset:      "data/locations.json",
		Source:       "index.html",
		Marker:       DefaultMarker,
		Out:          "dist",
		DataEndpoint: DefaultDataEndpoint,
		Listen:       ":8080",
		RateLimit:    5,
		Timeout:      10 * time.Second,
	}
}

// Merge overlays the non-zero fields of other onto c.
func (c Config) Merge(other Config) Config {
	if other.Dataset != "" {
		c.Dataset = other.Dataset
	}
	if other.Source != "" {
		c.Source = other.Source
	}
	if other.Marker != "" {
		c.Marker = other.Marker
	}
	if other.Out != "" {
		c.Out = other.Out
	}
	if other.DataEndpoint != "" {
		c.DataEndpoint = other.DataEndpoint
	}
	if other.Listen != "" {
		c.Listen = other.Listen
	}
	if other.RateLimit != 0 {
		c.RateLimit = other.RateLimit
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	return c
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.Marker != "" && !strings.HasPrefix(c.Marker, "<") {
		return Errorf(EINVALID, "marker %q must start with '<'", c.Marker)
	}
	if c.RateLimit < 0 {
		return Errorf(EINVALID, "rate limit must not be negative")
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	return nil
}

// IsRemoteDataset reports whether the dataset source is an http(s) URL.
func (c Config) IsRemoteDataset() bool {
	return strings.HasPrefix(c.Dataset, "http://") || strings.HasPrefix(c.Dataset, "https://")
}
