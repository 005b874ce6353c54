package main

import (
	"fmt"

	"github.com/fwojciec/locwidget"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if deps.Config.Dataset == locwidget.SnapshotSource {
		err := locwidget.Errorf(locwidget.EINVALID, "sync needs a URL or file dataset, not %q", locwidget.SnapshotSource)
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	ds, err := deps.Loader.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintln(deps.Stderr, locwidget.LoadErrorMessage)
		return err
	}

	snapshot := &locwidget.Snapshot{Source: deps.Config.Dataset, Dataset: ds}
	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snapshot); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Stored snapshot %s (%d facilities, hash %s)\n", snapshot.ID, snapshot.Count, snapshot.ContentHash)

	if c.Keep > 0 {
		return c.prune(deps)
	}
	return nil
}

// prune deletes all but the newest Keep snapshots of the synced source.
func (c *SyncCmd) prune(deps *Dependencies) error {
	source := deps.Config.Dataset
	stale, err := deps.Snapshots.FindSnapshots(deps.Ctx, locwidget.SnapshotFilter{Source: &source, Offset: c.Keep})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}
	for _, s := range stale {
		if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, s.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
			return err
		}
	}
	if len(stale) > 0 {
		fmt.Fprintf(deps.Stdout, "Removed %d old snapshot(s)\n", len(stale))
	}
	return nil
}

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	filter := locwidget.SnapshotFilter{Limit: c.Limit}
	if c.ID != "" {
		filter.ID = &c.ID
	}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	if len(snapshots) == 0 {
		if c.ID != "" {
			err := locwidget.Errorf(locwidget.ENOTFOUND, "snapshot %s not found", c.ID)
			fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'locwidget sync' to store one.")
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %4d  %s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Count, s.ContentHash, s.Source)
	}
	return nil
}
