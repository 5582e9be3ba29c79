// Package monitoring provides Prometheus metrics and recording helpers for
// the Shazamq Operator. It exposes domain-specific gauges and counters that
// complement the generic controller-runtime metrics already registered by
// the framework.
//
// All metrics follow the naming convention shazamq_operator_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus
// registry on import.
//
// Usage in controllers:
//
//	monitoring.SetClusterInfo(cluster.Name, cluster.Namespace, string(cluster.Status.Phase))
//	monitoring.SetClusterReplicas(cluster.Name, cluster.Namespace, desired, ready)
//
// Usage in webhooks:
//
//	monitoring.RecordWebhookRequest("CREATE", "ShazamqCluster", err, elapsed)
package monitoring
