package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/config"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
)

var (
	// Global flags
	verbose       bool
	noColor       bool
	configPath    string
	storePath     string
	thresholdFlag int32

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "monalign",
	Short: "monalign - snap near-equal monitor positions to a shared coordinate",
	Long: `monalign detects monitors whose saved positions are a few pixels apart
on one axis and snaps them to a shared canonical coordinate.

Layout tools round monitor offsets slightly differently, so a row of
displays that should all sit at Y=-1440 may have one saved at -1442.
monalign clusters near-equal X and Y positions, picks one value per
cluster, and rewrites the outliers after you approve the plan.

Run without arguments to review and apply corrections for the latest
stored snapshot.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAlign,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/monalign/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Monitor store database (overrides config)")
	rootCmd.PersistentFlags().Int32VarP(&thresholdFlag, "threshold", "t", config.DefaultThreshold, "Max pixel gap treated as the same position")

	// Add commands to root
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// effectiveStorePath resolves the database path from flag, then config.
func effectiveStorePath() string {
	if storePath != "" {
		return storePath
	}
	return cfg.StorePath
}

// effectiveThreshold resolves the threshold from flag, then config. The
// flag only wins when the user actually set it.
func effectiveThreshold(cmd *cobra.Command) int32 {
	if cmd.Flags().Changed("threshold") {
		return thresholdFlag
	}
	return cfg.Threshold
}

func openStore() (*store.LocalStore, error) {
	st, err := store.NewLocalStore(effectiveStorePath(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

func outputStyles() ui.Styles {
	if noColor {
		return ui.PlainStyles()
	}
	return ui.NewStyles(ui.ThemeByName(cfg.Theme))
}
