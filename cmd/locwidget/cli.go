package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/locwidget"
	"github.com/fwojciec/locwidget/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config locwidget.Config

	Fetcher   locwidget.Fetcher
	Loader    locwidget.DatasetLoader
	Snapshots locwidget.SnapshotService
	Builder   *build.Builder
	Converter locwidget.Converter
	Checker   locwidget.HostChecker
	Listings  locwidget.ListingWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Path to config file" type:"path"`
	Verbose bool   `short:"v" help:"Log operations to stderr"`
	Dataset string `short:"d" help:"Dataset source: URL, file path or 'snapshot:'"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the widget region and write the embeddable bundle"`
	List      ListCmd      `cmd:"" help:"Print the facility listings for a filter"`
	Sync      SyncCmd      `cmd:"" help:"Store a snapshot of the dataset"`
	Snapshots SnapshotsCmd `cmd:"" help:"List stored dataset snapshots"`
	Serve     ServeCmd     `cmd:"" help:"Serve the widget page and dataset"`
	Check     CheckCmd     `cmd:"" help:"Check that a host page provides the widget elements"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source       string `arg:"" optional:"" help:"Source page path or URL (default from config)"`
	Marker       string `short:"m" help:"Opening tag signature of the region"`
	Out          string `short:"o" help:"Output directory"`
	Title        string `short:"t" help:"Title of the integration instructions"`
	DataEndpoint string `name:"data-endpoint" help:"Dataset path advertised in the instructions"`
	Preview      bool   `short:"p" help:"Print the region as Markdown without writing files"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter string `short:"f" help:"Filter fragment: research-facilities, frc or presidential-libraries"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Keep int `short:"k" help:"Number of snapshots of the dataset source to keep (0 keeps all)"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	ID     string `arg:"" optional:"" help:"Show only the snapshot with this ID"`
	Source string `short:"s" help:"Show only snapshots of this dataset source"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of snapshots to show"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Listen      string  `short:"l" help:"Listen address"`
	RateLimit   float64 `name:"rate-limit" help:"Requests per second per client (default from config)"`
	NoRateLimit bool    `name:"no-rate-limit" help:"Disable per-client rate limiting"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Page string `arg:"" help:"Host page path or URL"`
}
