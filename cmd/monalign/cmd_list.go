package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

// listCmd shows the monitors of a snapshot
var listCmd = &cobra.Command{
	Use:   "list [snapshot-id]",
	Short: "List the monitors of a snapshot (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snapshotID := ""
	if len(args) == 1 {
		snapshotID = args[0]
	} else {
		snaps, err := st.ListSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}
		latest, ok := store.Latest(snaps)
		if !ok {
			return fmt.Errorf("%w: import a layout first (monalign import <file>)", store.ErrNoSnapshots)
		}
		snapshotID = latest.ID
	}

	monitors, err := st.ReadMonitors(ctx, snapshotID)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", snapshotID, err)
	}

	styles := outputStyles()
	fmt.Print(ui.MonitorTable("Snapshot "+snapshotID, monitors).View(styles))
	fmt.Println(styles.Muted.Render(fmt.Sprintf("%d monitors", len(monitors))))
	return nil
}
