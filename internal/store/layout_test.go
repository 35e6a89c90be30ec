package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

func TestReadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := `taken_at: 2026-08-20T10:30:00Z
monitors:
  - id: DP-1
    x: 0
    y: 0
    width: 3440
    height: 1440
  - id: DP-2
    x: -298
    y: -1440
    width: 2560
    height: 1440
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	layout, err := ReadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC), layout.TakenAt.UTC())
	require.Len(t, layout.Monitors, 2)
	assert.Equal(t, LayoutMonitor{ID: "DP-2", X: -298, Y: -1440, Width: 2560, Height: 1440}, layout.Monitors[1])
}

func TestReadLayoutRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadLayout(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ReadLayout(write("bad.yaml", "monitors: [\n"))
		assert.Error(t, err)
	})

	t.Run("no monitors", func(t *testing.T) {
		_, err := ReadLayout(write("empty.yaml", "monitors: []\n"))
		assert.ErrorContains(t, err, "no monitors")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ReadLayout(write("noid.yaml", "monitors:\n  - x: 1\n    y: 2\n"))
		assert.ErrorContains(t, err, "has no id")
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := ReadLayout(write("dup.yaml", "monitors:\n  - id: a\n  - id: a\n"))
		assert.ErrorContains(t, err, "duplicate monitor id")
	})
}

func TestLayoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	takenAt := time.Unix(1700000000, 0).UTC()
	monitors := []align.Monitor{
		{ID: "DP-1", X: 0, Y: 0, Width: 3440, Height: 1440},
		{ID: "HDMI-1", X: 2262, Y: -1442, Width: 2560, Height: 1440},
	}

	require.NoError(t, WriteLayout(path, LayoutFromMonitors(takenAt, monitors)))

	layout, err := ReadLayout(path)
	require.NoError(t, err)
	assert.True(t, layout.TakenAt.Equal(takenAt), "TakenAt = %v, want %v", layout.TakenAt, takenAt)
	assert.Equal(t, monitors, layout.MonitorEntries())
}
