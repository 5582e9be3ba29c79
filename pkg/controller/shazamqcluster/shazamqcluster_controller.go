package shazamqcluster

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/util/workqueue"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/monitoring"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
	"github.com/shazamq/shazamq-operator/pkg/status"
)

const (
	// FieldManager is the fixed actor identity used for every apply
	// operation, so the API server can track field ownership and detect
	// conflicts consistently across cycles.
	FieldManager = "shazamq-operator"

	// resyncInterval is how long after a successful cycle the cluster is
	// reconciled again. Pod readiness transitions produce no events for the
	// parent resource, so health is re-verified by polling.
	resyncInterval = 5 * time.Minute

	// errorRetryDelay is the fixed delay before a failed cycle is retried.
	// The reconciler has no internal retry loop; resilience is entirely
	// re-invocation based.
	errorRetryDelay = time.Minute
)

// ShazamqClusterReconciler reconciles a ShazamqCluster object.
type ShazamqClusterReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=shazamq.io,resources=shazamqclusters,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=shazamq.io,resources=shazamqclusters/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=shazamq.io,resources=shazamqclusters/finalizers,verbs=update
// +kubebuilder:rbac:groups=apps,resources=statefulsets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=configmaps,verbs=get;list;watch;create;update;patch;delete

// Reconcile drives one convergence cycle for a ShazamqCluster.
//
// The five steps run strictly in order, each awaited before the next:
// configuration, client Service, headless Service, StatefulSet, status.
// The StatefulSet references the ConfigMap and headless Service by name at
// pod-creation time, so applying it last avoids transient mount and DNS
// failures; since every step is idempotent, the ordering is a latency
// optimization rather than a correctness requirement.
//
// The first failing step aborts the cycle. Earlier applies are left in
// place: each is independently idempotent and is reapplied, or already
// correct, on the retry.
func (r *ShazamqClusterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	cluster := &shazamqv1alpha1.ShazamqCluster{}
	if err := r.Get(ctx, req.NamespacedName, cluster); err != nil {
		if apierrors.IsNotFound(err) {
			logger.Info("ShazamqCluster resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get ShazamqCluster")
		return ctrl.Result{}, err
	}

	// Nothing to clean up on deletion: subordinate objects are garbage
	// collected through their owner references.
	if !cluster.DeletionTimestamp.IsZero() {
		return ctrl.Result{}, nil
	}

	ctx, span := monitoring.StartReconcileSpan(ctx, "Reconcile", cluster.Name, cluster.Namespace, "ShazamqCluster")
	defer span.End()

	resolved, err := resolver.Resolve(&cluster.Spec)
	if err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to resolve ShazamqCluster spec")
		return ctrl.Result{}, err
	}

	logger.Info("Reconciling ShazamqCluster",
		"replicas", resolved.Replicas,
		"version", resolved.Version,
	)

	if err := r.reconcileConfigMap(ctx, cluster, &resolved); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to reconcile ConfigMap")
		return ctrl.Result{}, err
	}

	if err := r.reconcileClientService(ctx, cluster, &resolved); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to reconcile client Service")
		return ctrl.Result{}, err
	}

	if err := r.reconcileHeadlessService(ctx, cluster); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to reconcile headless Service")
		return ctrl.Result{}, err
	}

	if err := r.reconcileStatefulSet(ctx, cluster, &resolved); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to reconcile StatefulSet")
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, cluster); err != nil {
		monitoring.RecordSpanError(span, err)
		logger.Error(err, "Failed to update status")
		return ctrl.Result{}, err
	}

	return ctrl.Result{RequeueAfter: resyncInterval}, nil
}

// apply performs a server-side apply of obj under the operator's fixed
// field-manager identity. Applying the same object twice yields the same
// live state, which is what makes interrupted cycles safe.
func (r *ShazamqClusterReconciler) apply(ctx context.Context, obj client.Object) error {
	return r.Patch(ctx, obj, client.Apply, client.FieldOwner(FieldManager), client.ForceOwnership)
}

// reconcileConfigMap applies the generated broker configuration.
func (r *ShazamqClusterReconciler) reconcileConfigMap(
	ctx context.Context,
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
) error {
	cm, err := BuildConfigMap(cluster, resolved, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build ConfigMap: %w", err)
	}

	if err := r.apply(ctx, cm); err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}

	log.FromContext(ctx).Info("ConfigMap reconciled", "name", cm.Name)
	return nil
}

// reconcileClientService applies the client-facing Service.
func (r *ShazamqClusterReconciler) reconcileClientService(
	ctx context.Context,
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
) error {
	svc, err := BuildClientService(cluster, resolved, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build client Service: %w", err)
	}

	if err := r.apply(ctx, svc); err != nil {
		return fmt.Errorf("failed to apply client Service: %w", err)
	}

	log.FromContext(ctx).Info("Client Service reconciled", "name", svc.Name)
	return nil
}

// reconcileHeadlessService applies the discovery Service.
func (r *ShazamqClusterReconciler) reconcileHeadlessService(
	ctx context.Context,
	cluster *shazamqv1alpha1.ShazamqCluster,
) error {
	svc, err := BuildHeadlessService(cluster, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build headless Service: %w", err)
	}

	if err := r.apply(ctx, svc); err != nil {
		return fmt.Errorf("failed to apply headless Service: %w", err)
	}

	log.FromContext(ctx).Info("Headless Service reconciled", "name", svc.Name)
	return nil
}

// reconcileStatefulSet applies the broker StatefulSet.
func (r *ShazamqClusterReconciler) reconcileStatefulSet(
	ctx context.Context,
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
) error {
	sts, err := BuildStatefulSet(cluster, resolved, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build StatefulSet: %w", err)
	}

	if err := r.apply(ctx, sts); err != nil {
		return fmt.Errorf("failed to apply StatefulSet: %w", err)
	}

	log.FromContext(ctx).Info("StatefulSet reconciled", "name", sts.Name, "replicas", resolved.Replicas)
	return nil
}

// updateStatus reads the observed StatefulSet health, projects the cluster
// status from it, and applies the result through the status subresource.
// The status is overwritten wholesale every cycle.
func (r *ShazamqClusterReconciler) updateStatus(
	ctx context.Context,
	cluster *shazamqv1alpha1.ShazamqCluster,
) error {
	sts := &appsv1.StatefulSet{}
	if err := r.Get(ctx, client.ObjectKey{Namespace: cluster.Namespace, Name: cluster.Name}, sts); err != nil {
		return fmt.Errorf("failed to get StatefulSet for status: %w", err)
	}

	projected := status.ProjectStatus(cluster.Spec.Replicas, sts.Status.ReadyReplicas)

	patch := &shazamqv1alpha1.ShazamqCluster{
		TypeMeta: metav1.TypeMeta{
			APIVersion: shazamqv1alpha1.GroupVersion.String(),
			Kind:       "ShazamqCluster",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cluster.Name,
			Namespace: cluster.Namespace,
		},
		Status: projected,
	}

	if err := r.Status().Patch(ctx, patch, client.Apply, client.FieldOwner(FieldManager), client.ForceOwnership); err != nil {
		return fmt.Errorf("failed to apply status: %w", err)
	}

	monitoring.SetClusterInfo(cluster.Name, cluster.Namespace, string(projected.Phase))
	monitoring.SetClusterReplicas(cluster.Name, cluster.Namespace, projected.Replicas, projected.ReadyReplicas)

	log.FromContext(ctx).Info("Status reconciled",
		"phase", projected.Phase,
		"readyReplicas", projected.ReadyReplicas,
	)
	return nil
}

// SetupWithManager sets up the controller with the Manager.
//
// The rate limiter pins both the base and the cap of the failure backoff to
// the same value, so every failed cycle is retried after the same fixed
// delay instead of an exponential one.
func (r *ShazamqClusterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&shazamqv1alpha1.ShazamqCluster{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		WithOptions(controller.Options{
			RateLimiter: workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](
				errorRetryDelay, errorRetryDelay,
			),
		}).
		Complete(r)
}
