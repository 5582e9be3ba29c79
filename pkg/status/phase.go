// Package status projects observed replica-group health onto the
// ShazamqCluster status.
//
// The projection is pure and memoryless: phase depends only on the latest
// (replicas, readyReplicas) observation, never on the previous phase, so the
// status written each cycle is a wholesale overwrite.
package status

import (
	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
)

// ProjectPhase determines the phase of a cluster from replica readiness.
//
//   - all desired replicas ready (including zero desired) -> Running
//   - some but not all ready -> Updating
//   - none ready -> Creating
func ProjectPhase(replicas, readyReplicas int32) shazamqv1alpha1.Phase {
	switch {
	case readyReplicas == replicas:
		return shazamqv1alpha1.PhaseRunning
	case readyReplicas > 0:
		return shazamqv1alpha1.PhaseUpdating
	default:
		return shazamqv1alpha1.PhaseCreating
	}
}

// ProjectStatus assembles the full status value written back each cycle.
//
// readyReplicas is clamped to the desired count so the published status
// never reports more ready replicas than desired, which can otherwise happen
// transiently during a scale-down. Conditions and Brokers are reset to empty
// every cycle; nothing populates them yet.
func ProjectStatus(replicas, readyReplicas int32) shazamqv1alpha1.ShazamqClusterStatus {
	if readyReplicas > replicas {
		readyReplicas = replicas
	}

	return shazamqv1alpha1.ShazamqClusterStatus{
		Phase:         ProjectPhase(replicas, readyReplicas),
		Replicas:      replicas,
		ReadyReplicas: readyReplicas,
		Conditions:    []shazamqv1alpha1.StatusCondition{},
		Brokers:       []shazamqv1alpha1.BrokerStatus{},
	}
}
