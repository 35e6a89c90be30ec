// This file handles moving layouts in and out of the store as YAML.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

var exportOut string

// importCmd stores YAML layouts as snapshots
var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import YAML layout files as snapshots",
	Long: `Stores each layout file as a new snapshot. Files without a taken_at
field are stamped with the current time, so the last import becomes the
latest snapshot.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

// exportCmd writes the latest snapshot as a YAML layout
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the latest snapshot as a YAML layout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to a file instead of stdout")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	for _, path := range args {
		layout, err := store.ReadLayout(path)
		if err != nil {
			return fmt.Errorf("failed to read layout %s: %w", path, err)
		}

		takenAt := layout.TakenAt
		if takenAt.IsZero() {
			takenAt = time.Now()
		}

		id, err := st.ImportSnapshot(ctx, takenAt, layout.MonitorEntries())
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		fmt.Printf("Imported %s as snapshot %s (%d monitors)\n", path, id, len(layout.Monitors))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("%w: nothing to export", store.ErrNoSnapshots)
	}

	monitors, err := st.ReadMonitors(ctx, latest.ID)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", latest.ID, err)
	}

	layout := store.LayoutFromMonitors(latest.TakenAt, monitors)
	if exportOut == "" {
		data, err := yaml.Marshal(layout)
		if err != nil {
			return fmt.Errorf("failed to encode layout: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := store.WriteLayout(exportOut, layout); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	fmt.Printf("Exported snapshot %s to %s (%d monitors)\n", latest.ID, exportOut, len(monitors))
	return nil
}
