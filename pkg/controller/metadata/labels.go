// Package metadata provides the label sets applied to every object the
// operator manages.
//
// Two sets exist: the common labels stamped on all subordinate objects, and
// the selector labels used to match broker pods. The selector set is always
// a strict subset of the common set, and user-supplied labels can never
// override either.
package metadata

import "maps"

const (
	// LabelApp is the application label key.
	LabelApp = "app"

	// LabelCluster identifies which ShazamqCluster an object belongs to.
	LabelCluster = "shazamq.io/cluster"

	// LabelManagedBy is the label key identifying the managing tool.
	LabelManagedBy = "managed-by"
)

const (
	// AppName is the fixed application label value.
	AppName = "shazamq"

	// ManagedByOperator identifies the operator managing these objects.
	ManagedByOperator = "shazamq-operator"
)

// CommonLabels returns the labels applied to every subordinate object of the
// named cluster.
func CommonLabels(clusterName string) map[string]string {
	return map[string]string{
		LabelApp:       AppName,
		LabelCluster:   clusterName,
		LabelManagedBy: ManagedByOperator,
	}
}

// SelectorLabels returns the labels used to select broker pods of the named
// cluster. They are a strict subset of CommonLabels, which keeps the
// StatefulSet selector stable regardless of any other labeling.
func SelectorLabels(clusterName string) map[string]string {
	return map[string]string{
		LabelApp:     AppName,
		LabelCluster: clusterName,
	}
}

// MergeLabels merges custom labels with operator-managed labels.
//
// Note that managed labels take precedence over custom labels, so users
// cannot break the StatefulSet's own selector by supplying conflicting keys.
func MergeLabels(managedLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string)

	// Copy custom labels first (if provided)
	maps.Copy(merged, customLabels)

	// Copy managed labels (overwriting any duplicates from custom)
	maps.Copy(merged, managedLabels)

	return merged
}
