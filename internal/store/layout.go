package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/StoiaCode/Fix-MonitorAlignment/internal/align"
)

// Layout is the YAML exchange format for snapshots. Coordinates are signed
// here; the raw-pattern representation never leaves the database.
type Layout struct {
	TakenAt  time.Time       `yaml:"taken_at,omitempty"`
	Monitors []LayoutMonitor `yaml:"monitors"`
}

// LayoutMonitor is one monitor entry of a layout file.
type LayoutMonitor struct {
	ID     string `yaml:"id"`
	X      int32  `yaml:"x"`
	Y      int32  `yaml:"y"`
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
}

// ReadLayout parses and validates a layout file.
func ReadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	if len(layout.Monitors) == 0 {
		return Layout{}, fmt.Errorf("layout %s: no monitors", path)
	}
	seen := make(map[string]bool, len(layout.Monitors))
	for i, m := range layout.Monitors {
		if m.ID == "" {
			return Layout{}, fmt.Errorf("layout %s: monitor %d has no id", path, i)
		}
		if seen[m.ID] {
			return Layout{}, fmt.Errorf("layout %s: duplicate monitor id %q", path, m.ID)
		}
		seen[m.ID] = true
	}
	return layout, nil
}

// WriteLayout writes a layout file.
func WriteLayout(path string, layout Layout) error {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}

// MonitorEntries converts the layout to planner input.
func (l Layout) MonitorEntries() []align.Monitor {
	monitors := make([]align.Monitor, len(l.Monitors))
	for i, m := range l.Monitors {
		monitors[i] = align.Monitor{
			ID:     m.ID,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	return monitors
}

// LayoutFromMonitors builds the exchange form of one snapshot.
func LayoutFromMonitors(takenAt time.Time, monitors []align.Monitor) Layout {
	layout := Layout{TakenAt: takenAt, Monitors: make([]LayoutMonitor, len(monitors))}
	for i, m := range monitors {
		layout.Monitors[i] = LayoutMonitor{
			ID:     m.ID,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	return layout
}
