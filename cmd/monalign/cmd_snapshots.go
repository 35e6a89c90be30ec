package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

// snapshotsCmd lists stored snapshots
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots, newest marked with *",
	Args:  cobra.NoArgs,
	RunE:  runSnapshots,
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	snaps, err := st.ListSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println("No snapshots stored.")
		return nil
	}

	latest, _ := store.Latest(snaps)

	styles := outputStyles()
	fmt.Print(ui.SnapshotTable(snaps, latest.ID).View(styles))
	fmt.Println(styles.Muted.Render(fmt.Sprintf("%d snapshots, * is what align acts on", len(snaps))))
	return nil
}
