package monitoring

import "time"

// SetClusterInfo sets the info-style gauge for a ShazamqCluster.
// Old phase labels are automatically cleaned up via DeletePartialMatch.
func SetClusterInfo(name, namespace, phase string) {
	clusterInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	clusterInfo.WithLabelValues(name, namespace, phase).Set(1)
}

// SetClusterReplicas sets the desired and ready broker replica gauges for a
// ShazamqCluster.
func SetClusterReplicas(cluster, namespace string, desired, ready int32) {
	clusterReplicas.WithLabelValues(cluster, namespace, "desired").Set(float64(desired))
	clusterReplicas.WithLabelValues(cluster, namespace, "ready").Set(float64(ready))
}

// RecordWebhookRequest records a webhook admission request's result and duration.
func RecordWebhookRequest(operation, resource string, err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	webhookRequestTotal.WithLabelValues(operation, resource, result).Inc()
	webhookRequestDuration.WithLabelValues(operation, resource).Observe(duration.Seconds())
}
