package handlers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

// +kubebuilder:webhook:path=/validate-shazamq-io-v1alpha1-shazamqcluster,mutating=false,failurePolicy=fail,sideEffects=None,groups=shazamq.io,resources=shazamqclusters,verbs=create;update,versions=v1alpha1,name=vshazamqcluster.kb.io,admissionReviewVersions=v1

// ShazamqClusterValidator validates Create and Update events for
// ShazamqClusters.
type ShazamqClusterValidator struct{}

var _ webhook.CustomValidator = &ShazamqClusterValidator{}

// NewShazamqClusterValidator creates a new validator for ShazamqClusters.
func NewShazamqClusterValidator() *ShazamqClusterValidator {
	return &ShazamqClusterValidator{}
}

func (v *ShazamqClusterValidator) ValidateCreate(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(obj)
}

func (v *ShazamqClusterValidator) ValidateUpdate(
	ctx context.Context,
	oldObj, newObj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(newObj)
}

func (v *ShazamqClusterValidator) ValidateDelete(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *ShazamqClusterValidator) validate(obj runtime.Object) (admission.Warnings, error) {
	cluster, ok := obj.(*shazamqv1alpha1.ShazamqCluster)
	if !ok {
		return nil, fmt.Errorf("expected ShazamqCluster, got %T", obj)
	}

	if cluster.Spec.Replicas < 0 {
		return nil, fmt.Errorf("replicas must not be negative, got %d", cluster.Spec.Replicas)
	}

	// Resolution covers quantity parsing, so a spec that would fail every
	// reconcile cycle is rejected at admission instead.
	if _, err := resolver.Resolve(&cluster.Spec); err != nil {
		return nil, err
	}

	if err := validateMirror(cluster.Spec.Mirror); err != nil {
		return nil, err
	}
	if err := validateTieredStorage(cluster.Spec.TieredStorage); err != nil {
		return nil, err
	}
	if err := validateSecurity(cluster.Spec.Security); err != nil {
		return nil, err
	}

	return nil, nil
}

func validateMirror(mirror *shazamqv1alpha1.MirrorConfig) error {
	if mirror == nil || !mirror.Enabled {
		return nil
	}

	if len(mirror.Sources) == 0 {
		return fmt.Errorf("mirror is enabled but has no sources")
	}

	for i, source := range mirror.Sources {
		if source.Name == "" {
			return fmt.Errorf("mirror source %d has no name", i)
		}
		if source.BootstrapServers == "" {
			return fmt.Errorf("mirror source %q has no bootstrapServers", source.Name)
		}
		if source.ConsumerGroupId == "" {
			return fmt.Errorf("mirror source %q has no consumerGroupId", source.Name)
		}
	}

	return nil
}

func validateTieredStorage(ts *shazamqv1alpha1.TieredStorageConfig) error {
	if ts == nil || !ts.Enabled {
		return nil
	}

	if ts.Provider == "" {
		return fmt.Errorf("tieredStorage is enabled but has no provider")
	}
	if ts.Provider == "s3" && ts.S3 == nil {
		return fmt.Errorf("tieredStorage provider is %q but the s3 block is missing", ts.Provider)
	}
	if ts.S3 != nil && ts.S3.Bucket == "" {
		return fmt.Errorf("tieredStorage s3 block has no bucket")
	}

	return nil
}

func validateSecurity(sec *shazamqv1alpha1.SecurityConfig) error {
	if sec == nil || !sec.Enabled {
		return nil
	}

	if sec.Tls != nil && sec.Tls.Enabled && sec.Tls.SecretName == "" {
		return fmt.Errorf("security tls is enabled but has no secretName")
	}
	if sec.Auth != nil && sec.Auth.Enabled && sec.Auth.SecretName == "" {
		return fmt.Errorf("security auth is enabled but has no secretName")
	}

	return nil
}
