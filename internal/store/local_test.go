package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "monitors.db")
	s, err := NewLocalStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testMonitors() []align.Monitor {
	return []align.Monitor{
		{ID: "DP-1", X: 0, Y: 0, Width: 3440, Height: 1440},
		{ID: "DP-2", X: -298, Y: -1440, Width: 2560, Height: 1440},
		{ID: "HDMI-1", X: 2262, Y: -1442, Width: 2560, Height: 1440},
	}
}

// Negative coordinates cross the signed/unsigned boundary twice and must
// come back bit-identical.
func TestLocalStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.ImportSnapshot(ctx, time.Unix(1700000000, 0), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	got, err := s.ReadMonitors(ctx, id)
	if err != nil {
		t.Fatalf("ReadMonitors failed: %v", err)
	}
	want := testMonitors()
	if len(got) != len(want) {
		t.Fatalf("ReadMonitors returned %d monitors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("monitor %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLocalStoreWriteField(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.ImportSnapshot(ctx, time.Now(), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	if err := s.WriteField(ctx, id, "HDMI-1", align.AxisY, -1440); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}

	monitors, err := s.ReadMonitors(ctx, id)
	if err != nil {
		t.Fatalf("ReadMonitors failed: %v", err)
	}
	for _, m := range monitors {
		if m.ID == "HDMI-1" && m.Y != -1440 {
			t.Errorf("HDMI-1 Y = %d, want -1440", m.Y)
		}
		if m.ID == "DP-2" && (m.X != -298 || m.Y != -1440) {
			t.Errorf("DP-2 moved: %+v", m)
		}
	}
}

func TestLocalStoreWriteFieldUnknownMonitor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.ImportSnapshot(ctx, time.Now(), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	err = s.WriteField(ctx, id, "VGA-9", align.AxisX, 0)
	if !errors.Is(err, ErrMonitorNotFound) {
		t.Errorf("WriteField on unknown monitor = %v, want ErrMonitorNotFound", err)
	}
}

func TestLocalStoreReadUnknownSnapshot(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadMonitors(context.Background(), "nope")
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("ReadMonitors on unknown snapshot = %v, want ErrSnapshotNotFound", err)
	}
}

func TestLocalStoreListSnapshotsOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.ImportSnapshot(ctx, time.Unix(300, 0), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	second, err := s.ImportSnapshot(ctx, time.Unix(100, 0), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	snaps, err := s.ListSnapshots(ctx)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("ListSnapshots returned %d snapshots, want 2", len(snaps))
	}
	if snaps[0].ID != first || snaps[1].ID != second {
		t.Errorf("listing order = [%s %s], want insertion order [%s %s]",
			snaps[0].ID, snaps[1].ID, first, second)
	}
	if !snaps[0].TakenAt.Equal(time.Unix(300, 0)) {
		t.Errorf("TakenAt = %v, want %v", snaps[0].TakenAt, time.Unix(300, 0))
	}
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitors.db")

	s, err := NewLocalStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	id, err := s.ImportSnapshot(context.Background(), time.Unix(42, 0), testMonitors())
	if err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewLocalStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	monitors, err := reopened.ReadMonitors(context.Background(), id)
	if err != nil {
		t.Fatalf("ReadMonitors after reopen failed: %v", err)
	}
	if len(monitors) != 3 {
		t.Errorf("ReadMonitors after reopen returned %d monitors, want 3", len(monitors))
	}
}
