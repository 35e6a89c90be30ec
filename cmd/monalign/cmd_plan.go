package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

var planLayout string

// planCmd shows the correction plan without writing anything
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show planned corrections without applying them",
	Long: `Plans corrections for the latest stored snapshot and prints them.
Nothing is written.

With --layout the plan is computed from a YAML layout file instead of
the store, which is handy for checking a layout before importing it.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planLayout, "layout", "", "Plan from a YAML layout file instead of the store")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		monitors []align.Monitor
		source   string
	)
	if planLayout != "" {
		layout, err := store.ReadLayout(planLayout)
		if err != nil {
			return fmt.Errorf("failed to read layout: %w", err)
		}
		monitors = layout.MonitorEntries()
		source = planLayout
	} else {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		snaps, err := st.ListSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("failed to list snapshots: %w", err)
		}
		latest, ok := store.Latest(snaps)
		if !ok {
			return fmt.Errorf("%w: import a layout first (monalign import <file>)", store.ErrNoSnapshots)
		}
		monitors, err = st.ReadMonitors(ctx, latest.ID)
		if err != nil {
			return fmt.Errorf("failed to read snapshot %s: %w", latest.ID, err)
		}
		source = "snapshot " + latest.ID
	}

	threshold := effectiveThreshold(cmd)
	if err := align.Validate(monitors, threshold); err != nil {
		return err
	}

	styles := outputStyles()
	fmt.Print(ui.MonitorTable("Monitors from "+source, monitors).View(styles))

	corrections := align.Plan(monitors, threshold)
	if len(corrections) == 0 {
		fmt.Println(styles.Success.Render("All monitors aligned, nothing to do."))
		return nil
	}

	fmt.Println()
	fmt.Print(ui.CorrectionTable(corrections).View(styles))
	fmt.Println(styles.Muted.Render(fmt.Sprintf("Dry run, %d corrections planned but not applied.", len(corrections))))
	return nil
}
