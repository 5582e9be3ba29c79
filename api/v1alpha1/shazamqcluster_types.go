/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// ShazamqCluster Spec
// ============================================================================

// ShazamqClusterSpec defines the desired state of a Shazamq broker cluster.
//
// Every optional field has a documented default; absence never fails
// validation. Defaults are resolved once per reconcile cycle, before any
// subordinate object is synthesized.
type ShazamqClusterSpec struct {
	// Replicas is the desired number of broker replicas.
	// +kubebuilder:validation:Minimum=0
	Replicas int32 `json:"replicas"`

	// Version is the Shazamq version to deploy.
	// Defaults to "0.1.1-rc1".
	// +optional
	Version string `json:"version,omitempty"`

	// Image is the container image repository, without a tag.
	// Defaults to "shazamq/shazamq".
	// +optional
	Image string `json:"image,omitempty"`

	// ImagePullPolicy for the broker container.
	// Defaults to "IfNotPresent".
	// +optional
	ImagePullPolicy string `json:"imagePullPolicy,omitempty"`

	// Storage configures log segment sizing and retention.
	// +optional
	Storage *StorageConfig `json:"storage,omitempty"`

	// TieredStorage configures offloading of cold segments to object storage.
	// +optional
	TieredStorage *TieredStorageConfig `json:"tieredStorage,omitempty"`

	// Mirror configures replication of topics from upstream clusters.
	// +optional
	Mirror *MirrorConfig `json:"mirror,omitempty"`

	// Replication configures topic replication defaults.
	// +optional
	Replication *ReplicationConfig `json:"replication,omitempty"`

	// Resources defines compute resource requests and limits for the
	// broker container.
	// +optional
	Resources *ResourceRequirements `json:"resources,omitempty"`

	// PodAnnotations are additional annotations for broker pods.
	// +optional
	PodAnnotations map[string]string `json:"podAnnotations,omitempty"`

	// PodLabels are additional labels for broker pods. Operator-managed
	// selector labels always take precedence over these.
	// +optional
	PodLabels map[string]string `json:"podLabels,omitempty"`

	// NodeSelector constrains broker pods to matching nodes.
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// Service configures the client-facing Service.
	// +optional
	Service *ServiceConfig `json:"service,omitempty"`

	// Security configures TLS and client authentication.
	// +optional
	Security *SecurityConfig `json:"security,omitempty"`

	// Monitoring configures scraping of broker metrics.
	// +optional
	Monitoring *MonitoringConfig `json:"monitoring,omitempty"`
}

// StorageConfig configures local log storage.
type StorageConfig struct {
	// SegmentBytes is the maximum size of a single log segment.
	// +optional
	SegmentBytes *int64 `json:"segmentBytes,omitempty"`

	// RetentionHours is how long log data is retained.
	// +optional
	RetentionHours *int32 `json:"retentionHours,omitempty"`

	// RetentionBytes is the maximum log size before old segments are deleted.
	// +optional
	RetentionBytes *int64 `json:"retentionBytes,omitempty"`
}

// TieredStorageConfig configures a cold storage tier for log segments.
type TieredStorageConfig struct {
	// Enabled turns the tiered storage subsystem on.
	Enabled bool `json:"enabled"`

	// Provider is the storage backend, e.g. "s3".
	Provider string `json:"provider"`

	// HotTierRetentionHours is how long segments stay on local disk before
	// they become eligible for offload.
	// +optional
	HotTierRetentionHours *int32 `json:"hotTierRetentionHours,omitempty"`

	// S3 holds provider-specific configuration when Provider is "s3".
	// +optional
	S3 *S3Config `json:"s3,omitempty"`
}

// S3Config configures an S3-compatible tiered storage backend.
type S3Config struct {
	Bucket string `json:"bucket"`
	Region string `json:"region"`
	Prefix string `json:"prefix"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	// +optional
	Endpoint string `json:"endpoint,omitempty"`

	// CredentialsSecret names a Secret holding access credentials.
	// +optional
	CredentialsSecret string `json:"credentialsSecret,omitempty"`
}

// MirrorConfig configures mirroring of topics from upstream clusters.
type MirrorConfig struct {
	// Enabled turns the mirroring subsystem on.
	Enabled bool `json:"enabled"`

	// Sources is the ordered list of upstream clusters to mirror from.
	Sources []MirrorSource `json:"sources"`
}

// MirrorSource describes one upstream cluster to mirror topics from.
type MirrorSource struct {
	// Name identifies this source in configuration and metrics.
	Name string `json:"name"`

	// BootstrapServers is the upstream cluster's bootstrap address list.
	BootstrapServers string `json:"bootstrapServers"`

	// SecurityProtocol used when connecting upstream, e.g. "PLAINTEXT".
	SecurityProtocol string `json:"securityProtocol"`

	// SaslMechanism used when SecurityProtocol requires SASL.
	// +optional
	SaslMechanism string `json:"saslMechanism,omitempty"`

	// CredentialsSecret names a Secret holding upstream credentials.
	// +optional
	CredentialsSecret string `json:"credentialsSecret,omitempty"`

	// TopicWhitelist lists topics to mirror.
	TopicWhitelist []string `json:"topicWhitelist"`

	// TopicBlacklist lists topics to exclude from mirroring.
	// +optional
	TopicBlacklist []string `json:"topicBlacklist,omitempty"`

	// ConsumerGroupId is the consumer group used against the upstream.
	ConsumerGroupId string `json:"consumerGroupId"`

	// NumConsumers is the number of mirror consumers for this source.
	// +optional
	NumConsumers *int32 `json:"numConsumers,omitempty"`

	// ExactlyOnce enables exactly-once mirroring semantics.
	// +optional
	ExactlyOnce *bool `json:"exactlyOnce,omitempty"`
}

// ReplicationConfig configures topic replication defaults.
type ReplicationConfig struct {
	DefaultReplicationFactor int32 `json:"defaultReplicationFactor"`
	MinInsyncReplicas        int32 `json:"minInsyncReplicas"`
}

// ResourceRequirements defines compute resource requests and limits.
type ResourceRequirements struct {
	// +optional
	Requests *ResourceList `json:"requests,omitempty"`
	// +optional
	Limits *ResourceList `json:"limits,omitempty"`
}

// ResourceList holds quantity strings per resource.
type ResourceList struct {
	// +optional
	Cpu string `json:"cpu,omitempty"`
	// +optional
	Memory string `json:"memory,omitempty"`
}

// ServiceConfig configures the client-facing Service.
type ServiceConfig struct {
	// Type is the Service type, e.g. "ClusterIP". Defaults to "ClusterIP".
	Type string `json:"type"`

	// Port is the client protocol port. Defaults to 9092.
	Port int32 `json:"port"`

	// MetricsPort is the metrics port. Defaults to 9090.
	MetricsPort int32 `json:"metricsPort"`
}

// SecurityConfig configures TLS and client authentication.
type SecurityConfig struct {
	Enabled bool `json:"enabled"`
	// +optional
	Tls *TlsConfig `json:"tls,omitempty"`
	// +optional
	Auth *AuthConfig `json:"auth,omitempty"`
}

// TlsConfig configures transport encryption.
type TlsConfig struct {
	Enabled    bool   `json:"enabled"`
	SecretName string `json:"secretName"`
}

// AuthConfig configures client authentication.
type AuthConfig struct {
	Enabled    bool   `json:"enabled"`
	Mechanism  string `json:"mechanism"`
	SecretName string `json:"secretName"`
}

// MonitoringConfig configures metrics scraping.
type MonitoringConfig struct {
	Enabled bool `json:"enabled"`
	// +optional
	ServiceMonitor *ServiceMonitorConfig `json:"serviceMonitor,omitempty"`
}

// ServiceMonitorConfig configures a Prometheus ServiceMonitor.
type ServiceMonitorConfig struct {
	Enabled       bool   `json:"enabled"`
	Interval      string `json:"interval"`
	ScrapeTimeout string `json:"scrapeTimeout"`
}

// ============================================================================
// ShazamqCluster Status
// ============================================================================

// Phase is the coarse lifecycle phase of a ShazamqCluster.
//
// The phase is a pure function of (replicas, readyReplicas) from the latest
// observation; it never depends on the previous phase.
// +kubebuilder:validation:Enum=Creating;Updating;Running
type Phase string

const (
	// PhaseCreating means no replicas are ready yet.
	PhaseCreating Phase = "Creating"

	// PhaseUpdating means some but not all replicas are ready.
	PhaseUpdating Phase = "Updating"

	// PhaseRunning means all desired replicas are ready, including the
	// trivial case of zero desired replicas.
	PhaseRunning Phase = "Running"
)

// StatusCondition mirrors the shape of a Kubernetes condition.
type StatusCondition struct {
	Type               string `json:"type"`
	Status             string `json:"status"`
	LastTransitionTime string `json:"lastTransitionTime"`
	// +optional
	Reason string `json:"reason,omitempty"`
	// +optional
	Message string `json:"message,omitempty"`
}

// BrokerStatus describes one broker replica.
type BrokerStatus struct {
	Id     int32  `json:"id"`
	Pod    string `json:"pod"`
	Ready  bool   `json:"ready"`
	Leader bool   `json:"leader"`
}

// ShazamqClusterStatus is the observed state of a ShazamqCluster.
//
// It is written exclusively by the operator and overwritten wholesale on
// every successful reconcile cycle.
type ShazamqClusterStatus struct {
	// Phase is the coarse lifecycle phase derived from replica readiness.
	// +optional
	Phase Phase `json:"phase,omitempty"`

	// Replicas is the desired replica count at the time of observation.
	// +optional
	Replicas int32 `json:"replicas,omitempty"`

	// ReadyReplicas is the observed number of ready broker replicas.
	// +optional
	ReadyReplicas int32 `json:"readyReplicas,omitempty"`

	// Conditions is reserved for detailed condition reporting. The operator
	// currently resets it to empty every cycle.
	// +optional
	Conditions []StatusCondition `json:"conditions,omitempty"`

	// Brokers is reserved for per-broker leader/readiness detail. The
	// operator currently resets it to empty every cycle.
	// +optional
	Brokers []BrokerStatus `json:"brokers,omitempty"`
}

// ============================================================================
// Kind Definition and registration
// ============================================================================

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=sqc
// +kubebuilder:printcolumn:name="Version",type="string",JSONPath=".spec.version"
// +kubebuilder:printcolumn:name="Replicas",type="integer",JSONPath=".spec.replicas"
// +kubebuilder:printcolumn:name="Ready",type="integer",JSONPath=".status.readyReplicas"
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// ShazamqCluster is the Schema for the shazamqclusters API.
type ShazamqCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ShazamqClusterSpec   `json:"spec,omitempty"`
	Status ShazamqClusterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ShazamqClusterList contains a list of ShazamqCluster.
type ShazamqClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ShazamqCluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ShazamqCluster{}, &ShazamqClusterList{})
}
