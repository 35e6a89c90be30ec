// Package store persists monitor layout snapshots and applies approved
// corrections to them.
//
// The schema mirrors the layout database the tool was built to repair:
// coordinates are kept as raw unsigned 32-bit patterns, so a monitor left of
// or above the origin is stored as a two's-complement wraparound. The store
// boundary reinterprets the bits in both directions; everything above it
// works with signed values only.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

// SnapshotInfo identifies one stored layout snapshot.
type SnapshotInfo struct {
	ID      string
	TakenAt time.Time
}

var (
	// ErrNoSnapshots reports an empty store where a snapshot was required.
	ErrNoSnapshots = errors.New("no snapshots in store")
	// ErrSnapshotNotFound reports an unknown snapshot id.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrMonitorNotFound reports a write against a monitor the snapshot
	// does not contain.
	ErrMonitorNotFound = errors.New("monitor not found")
)

// FieldWriter is the write half of the store: one monitor coordinate on one
// axis set to a new value. Each write is atomic on its own; there is no
// multi-field transaction across corrections.
type FieldWriter interface {
	WriteField(ctx context.Context, snapshotID, monitorID string, axis align.Axis, value int32) error
}

// Store is the capability the alignment pipeline needs from persistence.
type Store interface {
	ListSnapshots(ctx context.Context) ([]SnapshotInfo, error)
	ReadMonitors(ctx context.Context, snapshotID string) ([]align.Monitor, error)
	FieldWriter
}

// Latest selects the snapshot with the greatest timestamp. Equal timestamps
// keep the earlier entry, so the choice is stable for a stable listing
// order. ok is false when the listing is empty.
func Latest(snaps []SnapshotInfo) (SnapshotInfo, bool) {
	if len(snaps) == 0 {
		return SnapshotInfo{}, false
	}
	latest := snaps[0]
	for _, s := range snaps[1:] {
		if s.TakenAt.After(latest.TakenAt) {
			latest = s
		}
	}
	return latest, true
}

// signedCoord reinterprets a stored 32-bit pattern as a signed coordinate.
func signedCoord(raw int64) int32 {
	return int32(uint32(raw))
}

// rawCoord converts a signed coordinate back to its stored pattern.
func rawCoord(v int32) int64 {
	return int64(uint32(v))
}
