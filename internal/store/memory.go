package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore holds snapshots in memory. It provides Store semantics
// without a database file, for tests and tooling.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots []SnapshotInfo
	monitors  map[string][]align.Monitor
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{monitors: make(map[string][]align.Monitor)}
}

// AddSnapshot records a snapshot under the given id. Listing order is
// insertion order, matching the SQLite store.
func (s *MemoryStore) AddSnapshot(id string, takenAt time.Time, monitors []align.Monitor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, SnapshotInfo{ID: id, TakenAt: takenAt})
	s.monitors[id] = append([]align.Monitor(nil), monitors...)
}

// ListSnapshots returns every snapshot in insertion order.
func (s *MemoryStore) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]SnapshotInfo(nil), s.snapshots...), nil
}

// ReadMonitors returns a copy of one snapshot's monitors.
func (s *MemoryStore) ReadMonitors(ctx context.Context, snapshotID string) ([]align.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	monitors, ok := s.monitors[snapshotID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, snapshotID)
	}
	return append([]align.Monitor(nil), monitors...), nil
}

// WriteField sets one monitor's coordinate on one axis.
func (s *MemoryStore) WriteField(ctx context.Context, snapshotID, monitorID string, axis align.Axis, value int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	monitors, ok := s.monitors[snapshotID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, snapshotID)
	}
	for i := range monitors {
		if monitors[i].ID != monitorID {
			continue
		}
		if axis == align.AxisX {
			monitors[i].X = value
		} else {
			monitors[i].Y = value
		}
		return nil
	}
	return fmt.Errorf("%w: %s in snapshot %s", ErrMonitorNotFound, monitorID, snapshotID)
}
