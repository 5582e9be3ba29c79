package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	clusterInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shazamq_operator_cluster_info",
			Help: "Info-style metric for ShazamqCluster discovery and phase tracking. Always 1.",
		},
		[]string{"name", "namespace", "phase"},
	)

	clusterReplicas = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shazamq_operator_cluster_replicas",
			Help: "Broker replica counts for a ShazamqCluster.",
		},
		[]string{"cluster", "namespace", "state"},
	)

	webhookRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shazamq_operator_webhook_request_total",
			Help: "Total number of webhook admission requests.",
		},
		[]string{"operation", "resource", "result"},
	)

	webhookRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shazamq_operator_webhook_request_duration_seconds",
			Help:    "Latency of webhook admission handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "resource"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		clusterInfo,
		clusterReplicas,
		webhookRequestTotal,
		webhookRequestDuration,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		clusterInfo,
		clusterReplicas,
		webhookRequestTotal,
		webhookRequestDuration,
	}
}
