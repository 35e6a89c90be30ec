// This file implements watch mode: follow the store database and report
// drift whenever another tool rewrites monitor positions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/StoiaCode/Fix-MonitorAlignment/cmd/monalign/ui"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/store"
	"github.com/StoiaCode/Fix-MonitorAlignment/internal/watch"
)

// watchCmd follows the store and reports drift
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store and report drift as it appears",
	Long: `Follows the store database and replans whenever it changes. Each
change prints one line saying whether the latest snapshot is aligned or
how many corrections are pending. Nothing is applied automatically.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	debounce := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
	watcher, err := watch.NewStoreWatcher(effectiveStorePath(), debounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	threshold := effectiveThreshold(cmd)
	styles := outputStyles()

	fmt.Printf("Watching %s (threshold %dpx), Ctrl-C to stop.\n", effectiveStorePath(), threshold)
	checkDrift(ctx, st, threshold, styles)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-watcher.Changes():
				checkDrift(ctx, st, threshold, styles)
			}
		}
	})

	err = g.Wait()
	stats := watcher.Stats()
	fmt.Printf("Stopped after %d events, %d notifications.\n", stats.Events, stats.Notifications)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// checkDrift replans the latest snapshot and prints one status line.
// Read failures are logged, not fatal: the database may be mid-write.
func checkDrift(ctx context.Context, st *store.LocalStore, threshold int32, styles ui.Styles) {
	snaps, err := st.ListSnapshots(ctx)
	if err != nil {
		logger.Warn("failed to list snapshots", zap.Error(err))
		return
	}
	latest, ok := store.Latest(snaps)
	if !ok {
		fmt.Println(styles.Muted.Render("No snapshots yet, waiting."))
		return
	}

	monitors, err := st.ReadMonitors(ctx, latest.ID)
	if err != nil {
		logger.Warn("failed to read snapshot", zap.String("snapshot", latest.ID), zap.Error(err))
		return
	}
	if err := align.Validate(monitors, threshold); err != nil {
		fmt.Println(styles.Muted.Render(err.Error()))
		return
	}

	ts := time.Now().Format("15:04:05")
	corrections := align.Plan(monitors, threshold)
	if len(corrections) == 0 {
		fmt.Printf("%s %s\n", ts, styles.Muted.Render("snapshot "+latest.ID+" aligned"))
		return
	}
	fmt.Printf("%s %s\n", ts, styles.Warning.Render(
		fmt.Sprintf("drift in snapshot %s: %d corrections pending, run 'monalign align'", latest.ID, len(corrections))))
}
