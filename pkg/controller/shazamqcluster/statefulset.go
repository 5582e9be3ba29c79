package shazamqcluster

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
	"github.com/shazamq/shazamq-operator/pkg/controller/metadata"
	"github.com/shazamq/shazamq-operator/pkg/controller/storage"
	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

const (
	// BrokerContainerName is the name of the broker container.
	BrokerContainerName = "shazamq"

	// DataVolumeName is the name of the durable per-replica volume.
	DataVolumeName = "data"

	// ConfigVolumeName is the name of the configuration volume.
	ConfigVolumeName = "config"

	// ConfigFilePath is the broker configuration path inside the container,
	// passed on the command line.
	ConfigFilePath = ConfigMountPath + "/" + ConfigKey

	// EnvLogLevel is the environment variable carrying the broker log level.
	EnvLogLevel = "RUST_LOG"

	// EnvMirrorEnabled is the feature flag environment variable set when
	// mirroring is enabled.
	EnvMirrorEnabled = "SHAZAMQ_MIRROR_ENABLED"
)

// BuildStatefulSet creates the StatefulSet for the broker cluster. Returns a
// deterministic StatefulSet based on the resolved spec.
//
// Pod labels are merged user labels first, selector labels last, so the
// StatefulSet's own selector always matches its pods no matter what the user
// supplies in podLabels.
func BuildStatefulSet(
	cluster *shazamqv1alpha1.ShazamqCluster,
	resolved *resolver.ResolvedSpec,
	scheme *runtime.Scheme,
) (*appsv1.StatefulSet, error) {
	selectorLabels := metadata.SelectorLabels(cluster.Name)
	podLabels := metadata.MergeLabels(selectorLabels, resolved.PodLabels)

	sts := &appsv1.StatefulSet{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "StatefulSet",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cluster.Name,
			Namespace: cluster.Namespace,
			Labels:    metadata.CommonLabels(cluster.Name),
		},
		Spec: appsv1.StatefulSetSpec{
			ServiceName: HeadlessServiceName(cluster.Name),
			Replicas:    ptr.To(resolved.Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: selectorLabels,
			},
			// Ordered start and shrink: broker identity is positional, and
			// scale-down must retire the highest ordinals first.
			PodManagementPolicy: appsv1.OrderedReadyPodManagement,
			UpdateStrategy: appsv1.StatefulSetUpdateStrategy{
				Type: appsv1.RollingUpdateStatefulSetStrategyType,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels,
					Annotations: resolved.PodAnnotations,
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:            BrokerContainerName,
							Image:           resolved.BrokerImage(),
							ImagePullPolicy: resolved.ImagePullPolicy,
							Args:            []string{"--config", ConfigFilePath},
							Env:             buildBrokerEnv(resolved),
							Ports:           buildContainerPorts(),
							Resources:       resolved.Resources,
							VolumeMounts: []corev1.VolumeMount{
								{
									Name:      DataVolumeName,
									MountPath: DataMountPath,
								},
								{
									Name:      ConfigVolumeName,
									MountPath: ConfigMountPath,
									ReadOnly:  true,
								},
							},
						},
					},
					Volumes: []corev1.Volume{
						{
							Name: ConfigVolumeName,
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{
										Name: ConfigMapName(cluster.Name),
									},
								},
							},
						},
					},
					NodeSelector: resolved.NodeSelector,
				},
			},
			VolumeClaimTemplates: []corev1.PersistentVolumeClaim{
				storage.BuildPVCTemplate(DataVolumeName, resolved.StorageSize),
			},
		},
	}

	if err := ctrl.SetControllerReference(cluster, sts, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return sts, nil
}

// buildBrokerEnv creates the broker container environment. The mirroring
// feature flag is present only when mirroring is enabled.
func buildBrokerEnv(resolved *resolver.ResolvedSpec) []corev1.EnvVar {
	env := []corev1.EnvVar{
		{
			Name:  EnvLogLevel,
			Value: resolved.LogLevel,
		},
	}

	if resolved.MirrorEnabled() {
		env = append(env, corev1.EnvVar{
			Name:  EnvMirrorEnabled,
			Value: "true",
		})
	}

	return env
}
