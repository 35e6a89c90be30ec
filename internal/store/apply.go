package store

import (
	"context"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

// ApplyResult records the outcome of one correction write.
type ApplyResult struct {
	Correction align.Correction
	Err        error
}

// Apply writes every approved correction to the store, in order. A failed
// write is recorded and the remaining corrections still run; nothing is
// retried. The caller reports which items succeeded and which failed; a
// partial outcome leaves the store field-consistent, because each write is
// atomic on its own.
func Apply(ctx context.Context, w FieldWriter, snapshotID string, corrections []align.Correction) []ApplyResult {
	results := make([]ApplyResult, 0, len(corrections))
	for _, c := range corrections {
		err := w.WriteField(ctx, snapshotID, c.MonitorID, c.Axis, c.NewValue)
		results = append(results, ApplyResult{Correction: c, Err: err})
	}
	return results
}

// CountFailed returns how many results carry an error.
func CountFailed(results []ApplyResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
