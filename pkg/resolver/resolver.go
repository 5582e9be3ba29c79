// Package resolver turns the deeply optional ShazamqCluster spec into a
// fully populated value the synthesizers can consume without nil checks.
//
// Every documented default is applied here, exactly once per reconcile
// cycle. It serves as the single source of truth for defaulting logic across
// the operator: the reconciler and the admission defaulter both go through
// this package.
package resolver

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
)

const (
	// DefaultVersion is the Shazamq version deployed when none is specified.
	DefaultVersion = "0.1.1-rc1"

	// DefaultImage is the broker image repository, without a tag.
	DefaultImage = "shazamq/shazamq"

	// DefaultImagePullPolicy is the pull policy for the broker container.
	DefaultImagePullPolicy = corev1.PullIfNotPresent

	// DefaultServiceType is the client Service type.
	DefaultServiceType = corev1.ServiceTypeClusterIP

	// DefaultPort is the client protocol port.
	DefaultPort int32 = 9092

	// DefaultMetricsPort is the metrics port.
	DefaultMetricsPort int32 = 9090

	// DefaultStorageSize is the per-replica data volume capacity.
	DefaultStorageSize = "100Gi"

	// DefaultLogLevel is the broker process log level.
	DefaultLogLevel = "info"
)

// ResolvedSpec is a ShazamqCluster spec with every default applied.
//
// Scalar fields are always populated. Optional sub-configurations keep their
// enabled/absent shape (a disabled mirror stays disabled) because conditional
// rendering of the broker configuration is driven by them.
type ResolvedSpec struct {
	Replicas        int32
	Version         string
	Image           string
	ImagePullPolicy corev1.PullPolicy

	ServiceType corev1.ServiceType
	Port        int32
	MetricsPort int32

	StorageSize string
	LogLevel    string

	Storage       shazamqv1alpha1.StorageConfig
	TieredStorage shazamqv1alpha1.TieredStorageConfig
	Mirror        shazamqv1alpha1.MirrorConfig

	Resources      corev1.ResourceRequirements
	PodAnnotations map[string]string
	PodLabels      map[string]string
	NodeSelector   map[string]string
}

// BrokerImage returns the fully qualified broker image reference.
func (r *ResolvedSpec) BrokerImage() string {
	return r.Image + ":" + r.Version
}

// MirrorEnabled reports whether the mirroring subsystem is on.
func (r *ResolvedSpec) MirrorEnabled() bool {
	return r.Mirror.Enabled
}

// Resolve applies every documented default to the given spec and returns a
// fully populated value. The input is deep-copied first, so the result never
// aliases maps or slices owned by the caller.
//
// Resolve is pure and idempotent: identical specs resolve to identical
// values, and resolving a spec whose defaults are already explicit is a
// no-op. The only failure mode is an unparseable resource quantity.
func Resolve(spec *shazamqv1alpha1.ShazamqClusterSpec) (ResolvedSpec, error) {
	spec = spec.DeepCopy()

	resolved := ResolvedSpec{
		Replicas:        spec.Replicas,
		Version:         spec.Version,
		Image:           spec.Image,
		ImagePullPolicy: corev1.PullPolicy(spec.ImagePullPolicy),
		ServiceType:     DefaultServiceType,
		Port:            DefaultPort,
		MetricsPort:     DefaultMetricsPort,
		StorageSize:     DefaultStorageSize,
		LogLevel:        DefaultLogLevel,
		PodAnnotations:  spec.PodAnnotations,
		PodLabels:       spec.PodLabels,
		NodeSelector:    spec.NodeSelector,
	}

	if resolved.Version == "" {
		resolved.Version = DefaultVersion
	}
	if resolved.Image == "" {
		resolved.Image = DefaultImage
	}
	if resolved.ImagePullPolicy == "" {
		resolved.ImagePullPolicy = DefaultImagePullPolicy
	}

	if svc := spec.Service; svc != nil {
		if svc.Type != "" {
			resolved.ServiceType = corev1.ServiceType(svc.Type)
		}
		if svc.Port != 0 {
			resolved.Port = svc.Port
		}
		if svc.MetricsPort != 0 {
			resolved.MetricsPort = svc.MetricsPort
		}
	}

	if spec.Storage != nil {
		resolved.Storage = *spec.Storage
	}
	if spec.TieredStorage != nil {
		resolved.TieredStorage = *spec.TieredStorage
	}
	if spec.Mirror != nil {
		resolved.Mirror = *spec.Mirror
	}

	resources, err := resolveResources(spec.Resources)
	if err != nil {
		return ResolvedSpec{}, err
	}
	resolved.Resources = resources

	return resolved, nil
}

// resolveResources converts the spec's string-typed resource requirements
// into parsed Kubernetes quantities.
func resolveResources(rr *shazamqv1alpha1.ResourceRequirements) (corev1.ResourceRequirements, error) {
	var out corev1.ResourceRequirements
	if rr == nil {
		return out, nil
	}

	var err error
	if rr.Requests != nil {
		if out.Requests, err = resolveResourceList(rr.Requests); err != nil {
			return corev1.ResourceRequirements{}, fmt.Errorf("invalid resource requests: %w", err)
		}
	}
	if rr.Limits != nil {
		if out.Limits, err = resolveResourceList(rr.Limits); err != nil {
			return corev1.ResourceRequirements{}, fmt.Errorf("invalid resource limits: %w", err)
		}
	}
	return out, nil
}

func resolveResourceList(rl *shazamqv1alpha1.ResourceList) (corev1.ResourceList, error) {
	out := corev1.ResourceList{}
	if rl.Cpu != "" {
		q, err := resource.ParseQuantity(rl.Cpu)
		if err != nil {
			return nil, fmt.Errorf("cpu quantity %q: %w", rl.Cpu, err)
		}
		out[corev1.ResourceCPU] = q
	}
	if rl.Memory != "" {
		q, err := resource.ParseQuantity(rl.Memory)
		if err != nil {
			return nil, fmt.Errorf("memory quantity %q: %w", rl.Memory, err)
		}
		out[corev1.ResourceMemory] = q
	}
	return out, nil
}
