package align

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClusterValuesChaining(t *testing.T) {
	// 0 and 18 differ by more than the threshold but chain through 9.
	got := ClusterValues([]int32{0, 9, 18}, 9)
	want := []Cluster{{0, 9, 18}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterValuesSplitsOnGap(t *testing.T) {
	got := ClusterValues([]int32{-1442, -1440, 0}, 10)
	want := []Cluster{{-1442, -1440}, {0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterValuesZeroThreshold(t *testing.T) {
	got := ClusterValues([]int32{5, 6, 7}, 0)
	want := []Cluster{{5}, {6}, {7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterValuesSingleValue(t *testing.T) {
	got := ClusterValues([]int32{42}, 10)
	want := []Cluster{{42}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterValuesEmpty(t *testing.T) {
	if got := ClusterValues(nil, 10); got != nil {
		t.Fatalf("ClusterValues(nil) = %v, want nil", got)
	}
}

// Concatenating the clusters must reproduce the sorted input exactly, for
// any threshold.
func TestClusterValuesCoverInput(t *testing.T) {
	inputs := [][]int32{
		{3, 1, 4, 1594, 92, 6, 5, 35, 89, 79, 32, 38, 46},
		{-2147483648, 2147483647, 0},
		{0, 1, 2, 3, 4, 5},
		{-10, -9, -8, 10, 11, 30},
	}
	thresholds := []int32{0, 1, 5, 100, 2147483647}

	for _, values := range inputs {
		for _, threshold := range thresholds {
			sorted := make([]int32, len(values))
			copy(sorted, values)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

			var flat []int32
			for _, c := range ClusterValues(values, threshold) {
				if len(c) == 0 {
					t.Fatalf("threshold %d: empty cluster in output", threshold)
				}
				flat = append(flat, c...)
			}
			if diff := cmp.Diff(sorted, flat); diff != "" {
				t.Errorf("threshold %d: cover mismatch (-want +got):\n%s", threshold, diff)
			}
		}
	}
}

func TestClusterValuesExtremeGap(t *testing.T) {
	// The int32 extremes must not wrap into the same cluster.
	got := ClusterValues([]int32{-2147483648, 2147483647}, 10)
	want := []Cluster{{-2147483648}, {2147483647}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClusterValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterValuesDoesNotMutateInput(t *testing.T) {
	values := []int32{30, 10, 20}
	ClusterValues(values, 5)
	want := []int32{30, 10, 20}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		cluster Cluster
		want    int32
	}{
		{"single", Cluster{7}, 7},
		{"pair takes upper", Cluster{-1442, -1440}, -1440},
		{"odd takes middle", Cluster{1, 2, 3}, 2},
		{"even takes upper middle", Cluster{10, 12, 14, 16}, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cluster.Canonical(); got != tt.want {
				t.Errorf("Canonical() = %d, want %d", got, tt.want)
			}
		})
	}
}
