package handlers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

// +kubebuilder:webhook:path=/mutate-shazamq-io-v1alpha1-shazamqcluster,mutating=true,failurePolicy=fail,sideEffects=None,groups=shazamq.io,resources=shazamqclusters,verbs=create;update,versions=v1alpha1,name=mshazamqcluster.kb.io,admissionReviewVersions=v1

// ShazamqClusterDefaulter handles the mutation of ShazamqCluster resources.
type ShazamqClusterDefaulter struct{}

var _ webhook.CustomDefaulter = &ShazamqClusterDefaulter{}

// NewShazamqClusterDefaulter creates a new defaulter handler.
func NewShazamqClusterDefaulter() *ShazamqClusterDefaulter {
	return &ShazamqClusterDefaulter{}
}

// Default implements webhook.CustomDefaulter. It materializes the documented
// defaults onto the stored spec, so users reading the object back see the
// values the reconciler will act on rather than empty fields.
func (d *ShazamqClusterDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	cluster, ok := obj.(*shazamqv1alpha1.ShazamqCluster)
	if !ok {
		return fmt.Errorf("expected ShazamqCluster, got %T", obj)
	}

	resolved, err := resolver.Resolve(&cluster.Spec)
	if err != nil {
		return fmt.Errorf("failed to resolve defaults: %w", err)
	}

	cluster.Spec.Version = resolved.Version
	cluster.Spec.Image = resolved.Image
	cluster.Spec.ImagePullPolicy = string(resolved.ImagePullPolicy)

	if cluster.Spec.Service == nil {
		cluster.Spec.Service = &shazamqv1alpha1.ServiceConfig{}
	}
	cluster.Spec.Service.Type = string(resolved.ServiceType)
	cluster.Spec.Service.Port = resolved.Port
	cluster.Spec.Service.MetricsPort = resolved.MetricsPort

	return nil
}
