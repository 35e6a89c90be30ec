// Package main implements the monalign CLI. This file holds the align
// command: plan corrections for the latest snapshot, confirm, apply.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/confirm"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/journal"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

var (
	alignYes         bool
	alignInteractive bool
)

// alignCmd corrects the latest snapshot
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align the latest snapshot's monitors",
	Long: `Reads the latest stored snapshot, plans coordinate corrections, and
applies them after confirmation.

Examples:
  monalign align              # review the plan, answer y/n
  monalign align -i           # pick corrections interactively
  monalign align --yes -t 5   # apply everything within 5px without asking`,
	Args: cobra.NoArgs,
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().BoolVar(&alignYes, "yes", false, "Apply without asking")
	alignCmd.Flags().BoolVarP(&alignInteractive, "interactive", "i", false, "Pick corrections in a TUI before applying")

	// The bare invocation runs align, so the root carries the same flags.
	rootCmd.Flags().BoolVar(&alignYes, "yes", false, "Apply without asking")
	rootCmd.Flags().BoolVarP(&alignInteractive, "interactive", "i", false, "Pick corrections in a TUI before applying")
}

func runAlign(cmd *cobra.Command, args []string) error {
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
	latest, ok := store.Latest(snaps)
	if !ok {
		return fmt.Errorf("%w: import a layout first (monalign import <file>)", store.ErrNoSnapshots)
	}

	monitors, err := st.ReadMonitors(ctx, latest.ID)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", latest.ID, err)
	}

	threshold := effectiveThreshold(cmd)
	if err := align.Validate(monitors, threshold); err != nil {
		return err
	}

	styles := outputStyles()
	fmt.Print(ui.MonitorTable("Latest snapshot "+latest.ID, monitors).View(styles))

	corrections := align.Plan(monitors, threshold)
	if len(corrections) == 0 {
		fmt.Println(styles.Success.Render("All monitors aligned, nothing to do."))
		return nil
	}

	fmt.Println()
	fmt.Print(ui.CorrectionTable(corrections).View(styles))

	chosen, approved, err := approveCorrections(corrections, styles)
	if err != nil {
		return err
	}
	if !approved {
		fmt.Println("Aborted, no changes applied.")
		return nil
	}
	if len(chosen) == 0 {
		fmt.Println("Nothing selected, no changes applied.")
		return nil
	}

	results := store.Apply(ctx, st, latest.ID, chosen)
	if err := journal.Open(cfg.HistoryPath).Append(journal.FromResults(latest.ID, results)...); err != nil {
		logger.Warn("failed to record history", zap.Error(err))
	}

	fmt.Println()
	fmt.Print(ui.ResultTable(results).View(styles))

	if failed := store.CountFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d corrections failed", failed, len(results))
	}
	fmt.Println(styles.Success.Render(fmt.Sprintf("Applied %d corrections to snapshot %s.", len(results), latest.ID)))
	return nil
}

// approveCorrections runs whichever confirmation mode the flags picked.
func approveCorrections(corrections []align.Correction, styles ui.Styles) ([]align.Correction, bool, error) {
	if alignYes || cfg.AutoApprove {
		return corrections, true, nil
	}

	if alignInteractive {
		model, err := tea.NewProgram(ui.NewPicker(corrections, styles)).Run()
		if err != nil {
			return nil, false, fmt.Errorf("failed to run picker: %w", err)
		}
		picker, ok := model.(ui.Picker)
		if !ok {
			return nil, false, fmt.Errorf("picker returned unexpected model %T", model)
		}
		chosen, approved := picker.Approved()
		return chosen, approved, nil
	}

	prompt := fmt.Sprintf("Apply %d corrections?", len(corrections))
	approved, err := confirm.Ask(confirm.DefaultOptions(), prompt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return corrections, approved, nil
}
