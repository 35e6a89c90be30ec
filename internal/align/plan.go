package align

import (
	"errors"
	"fmt"
	"sort"
)

// Axis names one of the two coordinate directions monitors are compared on.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Monitor is one display output's last-known position. Width and Height are
// zero when the resolution is unknown; they are carried for presentation and
// never influence planning.
type Monitor struct {
	ID     string
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// Coord returns the monitor's position on the given axis.
func (m Monitor) Coord(axis Axis) int32 {
	if axis == AxisX {
		return m.X
	}
	return m.Y
}

// Resolution formats the monitor's size for display.
func (m Monitor) Resolution() string {
	if m.Width == 0 && m.Height == 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Correction moves one monitor's coordinate on one axis to its cluster's
// canonical value. OldValue and NewValue always differ.
type Correction struct {
	MonitorID string
	Axis      Axis
	OldValue  int32
	NewValue  int32
	Delta     int32
}

var (
	// ErrTooFewMonitors reports a snapshot with fewer than two monitors.
	ErrTooFewMonitors = errors.New("fewer than two monitors in snapshot")
	// ErrNegativeThreshold reports a threshold below zero.
	ErrNegativeThreshold = errors.New("threshold must not be negative")
)

// Validate checks the planning preconditions. Plan itself has no failure
// modes; a snapshot rejected by Validate must not be planned.
func Validate(monitors []Monitor, threshold int32) error {
	if threshold < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeThreshold, threshold)
	}
	if len(monitors) < 2 {
		return fmt.Errorf("%w: have %d", ErrTooFewMonitors, len(monitors))
	}
	return nil
}

// Plan computes the corrections that bring monitors within threshold into
// exact alignment.
//
// Each axis is planned independently: the distinct values on the axis are
// clustered, every cluster of two or more values gets a canonical value, and
// each monitor not already at its cluster's canonical value receives one
// correction. X-axis corrections precede Y-axis corrections; within an axis
// they follow cluster order, then the monitor order of the input. A snapshot
// that is already aligned yields an empty plan, which is not an error. A
// single monitor may be corrected on both axes in one pass.
func Plan(monitors []Monitor, threshold int32) []Correction {
	var corrections []Correction
	for _, axis := range []Axis{AxisX, AxisY} {
		corrections = append(corrections, planAxis(monitors, axis, threshold)...)
	}
	return corrections
}

func planAxis(monitors []Monitor, axis Axis, threshold int32) []Correction {
	distinct := distinctValues(monitors, axis)
	if len(distinct) < 2 {
		// Nothing to align: no monitors, or all already equal.
		return nil
	}

	var corrections []Correction
	for _, cluster := range ClusterValues(distinct, threshold) {
		if len(cluster) < 2 {
			continue
		}
		canonical := cluster.Canonical()
		member := make(map[int32]bool, len(cluster))
		for _, v := range cluster {
			member[v] = true
		}
		for _, m := range monitors {
			v := m.Coord(axis)
			if !member[v] || v == canonical {
				continue
			}
			corrections = append(corrections, Correction{
				MonitorID: m.ID,
				Axis:      axis,
				OldValue:  v,
				NewValue:  canonical,
				Delta:     canonical - v,
			})
		}
	}
	return corrections
}

// distinctValues collects the unique coordinates on one axis, sorted so the
// result does not depend on monitor order.
func distinctValues(monitors []Monitor, axis Axis) []int32 {
	seen := make(map[int32]struct{}, len(monitors))
	values := make([]int32, 0, len(monitors))
	for _, m := range monitors {
		v := m.Coord(axis)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}
