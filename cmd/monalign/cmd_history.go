package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/journal"
)

var historyLimit int

// historyCmd shows past corrections from the journal
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show corrections monalign applied in the past",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Max entries to show, 0 for all")
}

func runHistory(cmd *cobra.Command, args []string) error {
	entries, err := journal.Read(cfg.HistoryPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No corrections applied yet.")
		return nil
	}

	styles := outputStyles()
	shown := journal.Tail(entries, historyLimit)

	table := ui.NewTable("Correction history", []string{"Time", "Snapshot", "Monitor", "Axis", "Change", "Status"})
	for _, e := range shown {
		status := "ok"
		if !e.Success {
			status = e.Error
		}
		table.AddRow(
			time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04:05"),
			e.SnapshotID,
			e.MonitorID,
			e.Axis,
			fmt.Sprintf("%s -> %s", ui.FormatCoord(e.OldValue), ui.FormatCoord(e.NewValue)),
			status,
		)
	}
	fmt.Print(table.View(styles))
	fmt.Println(styles.Muted.Render(fmt.Sprintf("%d of %d entries, journal at %s", len(shown), len(entries), cfg.HistoryPath)))
	return nil
}
