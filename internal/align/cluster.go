// Package align computes monitor alignment corrections.
//
// Monitors that are meant to share an edge often end up a few pixels apart
// after a resolution change, a driver update, or a cable swap. The planner
// groups near-equal coordinate values on each axis into clusters and snaps
// every member to one canonical value per cluster. Clustering and planning
// are pure functions; reading and writing monitor positions belongs to the
// store layer.
package align

import "sort"

// Cluster is an ascending run of distinct coordinate values that are meant
// to be equal on one axis. Every value is within the clustering threshold of
// the value appended before it. The chain rule means the first and last
// value of a long cluster can differ by more than the threshold.
type Cluster []int32

// Canonical returns the value cluster members are snapped to: the middle
// element, taking the upper of the two middles when the size is even.
func (c Cluster) Canonical() int32 {
	return c[len(c)/2]
}

// ClusterValues partitions distinct coordinate values into clusters. Values
// are scanned in ascending order; a value joins the open cluster when it is
// within threshold of the last value added to it, otherwise the cluster is
// closed and a new one opened. The clusters concatenated are exactly the
// sorted input: nothing is dropped, duplicated, or reordered. The input
// slice is not mutated.
func ClusterValues(values []int32, threshold int32) []Cluster {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]int32, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var clusters []Cluster
	current := Cluster{sorted[0]}
	for _, v := range sorted[1:] {
		last := current[len(current)-1]
		// Widen before subtracting: the gap between int32 extremes does
		// not fit in an int32.
		if int64(v)-int64(last) <= int64(threshold) {
			current = append(current, v)
			continue
		}
		clusters = append(clusters, current)
		current = Cluster{v}
	}
	return append(clusters, current)
}
