package shazamqcluster

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/controller/metadata"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

const (
	// ConfigKey is the ConfigMap key holding the rendered broker configuration.
	ConfigKey = "config.toml"

	// ConfigMountPath is where the configuration volume is mounted in the
	// broker container.
	ConfigMountPath = "/etc/shazamq"

	// DataMountPath is where the durable data volume is mounted in the
	// broker container.
	DataMountPath = "/data/shazamq"
)

// ConfigMapName returns the name of the generated configuration object for
// the named cluster.
func ConfigMapName(clusterName string) string {
	return clusterName + "-config"
}

// BuildConfigMap creates the ConfigMap carrying the rendered broker
// configuration. Returns a deterministic ConfigMap based on the resolved spec.
func BuildConfigMap(
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
	scheme *runtime.Scheme,
) (*corev1.ConfigMap, error) {
	cm := &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      ConfigMapName(cluster.Name),
			Namespace: cluster.Namespace,
			Labels:    metadata.CommonLabels(cluster.Name),
		},
		Data: map[string]string{
			ConfigKey: RenderBrokerConfig(resolved),
		},
	}

	if err := ctrl.SetControllerReference(cluster, cm, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return cm, nil
}

// RenderBrokerConfig renders the sectioned configuration text consumed by
// the broker process.
//
// The text is the broker's only configuration input, so section order,
// conditional emission, and the blank-line layout are a contract: identical
// specs must render to byte-identical text. That rules out a generic TOML
// marshaler; sections are written out one at a time instead.
func RenderBrokerConfig(resolved *resolver.ResolvedSpec) string {
	var b strings.Builder

	b.WriteString("[broker]\n")
	b.WriteString("host = \"0.0.0.0\"\n")
	fmt.Fprintf(&b, "port = %d\n", KafkaContainerPort)
	fmt.Fprintf(&b, "data_dir = %q\n\n", DataMountPath)

	b.WriteString("[storage]\n")
	if resolved.Storage.SegmentBytes != nil {
		fmt.Fprintf(&b, "segment_bytes = %d\n", *resolved.Storage.SegmentBytes)
	}
	if resolved.Storage.RetentionHours != nil {
		fmt.Fprintf(&b, "retention_hours = %d\n", *resolved.Storage.RetentionHours)
	}
	b.WriteString("\n")

	b.WriteString("[metrics]\n")
	b.WriteString("enabled = true\n")
	b.WriteString("host = \"0.0.0.0\"\n")
	fmt.Fprintf(&b, "port = %d\n\n", MetricsContainerPort)

	if resolved.TieredStorage.Enabled {
		b.WriteString("[tiered_storage]\n")
		b.WriteString("enabled = true\n")
		fmt.Fprintf(&b, "provider = %q\n", resolved.TieredStorage.Provider)

		if s3 := resolved.TieredStorage.S3; s3 != nil {
			b.WriteString("\n[tiered_storage.s3]\n")
			fmt.Fprintf(&b, "bucket = %q\n", s3.Bucket)
			fmt.Fprintf(&b, "region = %q\n", s3.Region)
			fmt.Fprintf(&b, "prefix = %q\n", s3.Prefix)
		}
		b.WriteString("\n")
	}

	if resolved.Mirror.Enabled {
		b.WriteString("[mirror]\n")
		b.WriteString("enabled = true\n\n")

		for _, source := range resolved.Mirror.Sources {
			b.WriteString("[[mirror.sources]]\n")
			fmt.Fprintf(&b, "name = %q\n", source.Name)
			fmt.Fprintf(&b, "bootstrap_servers = %q\n", source.BootstrapServers)
			fmt.Fprintf(&b, "security_protocol = %q\n", source.SecurityProtocol)
			fmt.Fprintf(&b, "consumer_group_id = %q\n", source.ConsumerGroupId)

			b.WriteString("topic_whitelist = [")
			for i, topic := range source.TopicWhitelist {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%q", topic)
			}
			b.WriteString("]\n\n")
		}
	}

	return b.String()
}
