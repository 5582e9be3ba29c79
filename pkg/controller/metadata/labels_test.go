package metadata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommonLabels(t *testing.T) {
	want := map[string]string{
		"app":                "shazamq",
		"shazamq.io/cluster": "my-cluster",
		"managed-by":         "shazamq-operator",
	}

	if diff := cmp.Diff(want, CommonLabels("my-cluster")); diff != "" {
		t.Errorf("CommonLabels() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorLabelsAreSubsetOfCommonLabels(t *testing.T) {
	common := CommonLabels("my-cluster")
	selector := SelectorLabels("my-cluster")

	if len(selector) >= len(common) {
		t.Errorf("selector labels (%d keys) must be a strict subset of common labels (%d keys)", len(selector), len(common))
	}

	for k, v := range selector {
		if common[k] != v {
			t.Errorf("selector label %s=%s not present in common labels", k, v)
		}
	}
}

func TestMergeLabels(t *testing.T) {
	tests := map[string]struct {
		managed map[string]string
		custom  map[string]string
		want    map[string]string
	}{
		"nil custom labels": {
			managed: map[string]string{"app": "shazamq"},
			custom:  nil,
			want:    map[string]string{"app": "shazamq"},
		},
		"disjoint keys are merged": {
			managed: map[string]string{"app": "shazamq"},
			custom:  map[string]string{"team": "data"},
			want:    map[string]string{"app": "shazamq", "team": "data"},
		},
		"managed labels win on conflict": {
			managed: map[string]string{"app": "shazamq", "shazamq.io/cluster": "a"},
			custom:  map[string]string{"app": "intruder", "shazamq.io/cluster": "b", "team": "data"},
			want:    map[string]string{"app": "shazamq", "shazamq.io/cluster": "a", "team": "data"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, MergeLabels(tc.managed, tc.custom)); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
