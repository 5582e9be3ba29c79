package shazamqcluster

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/controller/metadata"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

// HeadlessServiceName returns the name of the discovery Service for the
// named cluster. The StatefulSet references it by this name.
func HeadlessServiceName(clusterName string) string {
	return clusterName + "-headless"
}

// BuildClientService creates the load-balanced Service clients connect
// through. Type and published ports are overridable via the spec.
func BuildClientService(
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
	scheme *runtime.Scheme,
) (*corev1.Service, error) {
	svc := &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cluster.Name,
			Namespace: cluster.Namespace,
			Labels:    metadata.CommonLabels(cluster.Name),
		},
		Spec: corev1.ServiceSpec{
			Type:     resolved.ServiceType,
			Selector: metadata.SelectorLabels(cluster.Name),
			Ports:    buildClientServicePorts(resolved),
		},
	}

	if err := ctrl.SetControllerReference(cluster, svc, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return svc, nil
}

// BuildHeadlessService creates the discovery Service for the broker
// StatefulSet. It has no cluster IP: cluster membership needs direct
// per-replica addressing, which the per-pod DNS records of a headless
// Service provide. Not-ready addresses are published so brokers can find
// each other while the cluster is still forming.
func BuildHeadlessService(
	cluster *shazamqv1alpha1.ShazamqCluster,
	scheme *runtime.Scheme,
) (*corev1.Service, error) {
	svc := &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      HeadlessServiceName(cluster.Name),
			Namespace: cluster.Namespace,
			Labels:    metadata.CommonLabels(cluster.Name),
		},
		Spec: corev1.ServiceSpec{
			ClusterIP:                corev1.ClusterIPNone,
			Selector:                 metadata.SelectorLabels(cluster.Name),
			Ports:                    buildHeadlessServicePorts(),
			PublishNotReadyAddresses: true,
		},
	}

	if err := ctrl.SetControllerReference(cluster, svc, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return svc, nil
}
