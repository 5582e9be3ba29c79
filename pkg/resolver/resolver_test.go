package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
)

func int32Ptr(i int32) *int32 {
	return &i
}

func TestResolve(t *testing.T) {
	tests := map[string]struct {
		spec    *shazamqv1alpha1.ShazamqClusterSpec
		want    ResolvedSpec
		wantErr bool
	}{
		"minimal spec - all defaults": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas: 3,
			},
			want: ResolvedSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: corev1.PullIfNotPresent,
				ServiceType:     corev1.ServiceTypeClusterIP,
				Port:            9092,
				MetricsPort:     9090,
				StorageSize:     "100Gi",
				LogLevel:        "info",
			},
		},
		"explicit values are kept": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas:        5,
				Version:         "1.2.0",
				Image:           "registry.example.com/shazamq",
				ImagePullPolicy: "Always",
				Service: &shazamqv1alpha1.ServiceConfig{
					Type:        "LoadBalancer",
					Port:        9192,
					MetricsPort: 9190,
				},
			},
			want: ResolvedSpec{
				Replicas:        5,
				Version:         "1.2.0",
				Image:           "registry.example.com/shazamq",
				ImagePullPolicy: corev1.PullAlways,
				ServiceType:     corev1.ServiceTypeLoadBalancer,
				Port:            9192,
				MetricsPort:     9190,
				StorageSize:     "100Gi",
				LogLevel:        "info",
			},
		},
		"partially populated service block": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas: 1,
				Service: &shazamqv1alpha1.ServiceConfig{
					Type: "NodePort",
				},
			},
			want: ResolvedSpec{
				Replicas:        1,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: corev1.PullIfNotPresent,
				ServiceType:     corev1.ServiceTypeNodePort,
				Port:            9092,
				MetricsPort:     9090,
				StorageSize:     "100Gi",
				LogLevel:        "info",
			},
		},
		"optional blocks are carried through": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas: 3,
				Storage: &shazamqv1alpha1.StorageConfig{
					RetentionHours: int32Ptr(168),
				},
				Mirror: &shazamqv1alpha1.MirrorConfig{
					Enabled: true,
					Sources: []shazamqv1alpha1.MirrorSource{
						{
							Name:             "src1",
							BootstrapServers: "b:9092",
							SecurityProtocol: "PLAINTEXT",
							TopicWhitelist:   []string{"t1"},
							ConsumerGroupId:  "g1",
						},
					},
				},
			},
			want: ResolvedSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: corev1.PullIfNotPresent,
				ServiceType:     corev1.ServiceTypeClusterIP,
				Port:            9092,
				MetricsPort:     9090,
				StorageSize:     "100Gi",
				LogLevel:        "info",
				Storage: shazamqv1alpha1.StorageConfig{
					RetentionHours: int32Ptr(168),
				},
				Mirror: shazamqv1alpha1.MirrorConfig{
					Enabled: true,
					Sources: []shazamqv1alpha1.MirrorSource{
						{
							Name:             "src1",
							BootstrapServers: "b:9092",
							SecurityProtocol: "PLAINTEXT",
							TopicWhitelist:   []string{"t1"},
							ConsumerGroupId:  "g1",
						},
					},
				},
			},
		},
		"resource quantities are parsed": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas: 3,
				Resources: &shazamqv1alpha1.ResourceRequirements{
					Requests: &shazamqv1alpha1.ResourceList{
						Cpu:    "500m",
						Memory: "1Gi",
					},
					Limits: &shazamqv1alpha1.ResourceList{
						Memory: "2Gi",
					},
				},
			},
			want: ResolvedSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: corev1.PullIfNotPresent,
				ServiceType:     corev1.ServiceTypeClusterIP,
				Port:            9092,
				MetricsPort:     9090,
				StorageSize:     "100Gi",
				LogLevel:        "info",
				Resources: corev1.ResourceRequirements{
					Requests: corev1.ResourceList{
						corev1.ResourceCPU:    resource.MustParse("500m"),
						corev1.ResourceMemory: resource.MustParse("1Gi"),
					},
					Limits: corev1.ResourceList{
						corev1.ResourceMemory: resource.MustParse("2Gi"),
					},
				},
			},
		},
		"invalid cpu quantity - should error": {
			spec: &shazamqv1alpha1.ShazamqClusterSpec{
				Replicas: 3,
				Resources: &shazamqv1alpha1.ResourceRequirements{
					Requests: &shazamqv1alpha1.ResourceList{
						Cpu: "not-a-quantity",
					},
				},
			},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(tc.spec)

			if (err != nil) != tc.wantErr {
				t.Errorf("Resolve() error = %v, wantErr %v", err, tc.wantErr)
				return
			}

			if tc.wantErr {
				return
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	spec := &shazamqv1alpha1.ShazamqClusterSpec{
		Replicas: 3,
		Mirror: &shazamqv1alpha1.MirrorConfig{
			Enabled: true,
			Sources: []shazamqv1alpha1.MirrorSource{
				{
					Name:             "src1",
					BootstrapServers: "b:9092",
					SecurityProtocol: "PLAINTEXT",
					TopicWhitelist:   []string{"t1", "t2"},
					ConsumerGroupId:  "g1",
				},
			},
		},
	}

	first, err := Resolve(spec)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := Resolve(spec)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Resolve() not idempotent (-first +second):\n%s", diff)
	}
}

func TestResolveDoesNotAliasCallerMaps(t *testing.T) {
	spec := &shazamqv1alpha1.ShazamqClusterSpec{
		Replicas:  1,
		PodLabels: map[string]string{"team": "data"},
	}

	resolved, err := Resolve(spec)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	spec.PodLabels["team"] = "mutated"

	if resolved.PodLabels["team"] != "data" {
		t.Errorf("resolved.PodLabels aliases caller map: got %q, want %q", resolved.PodLabels["team"], "data")
	}
}

func TestBrokerImage(t *testing.T) {
	r := ResolvedSpec{Image: "shazamq/shazamq", Version: "1.2.0"}
	if got, want := r.BrokerImage(), "shazamq/shazamq:1.2.0"; got != want {
		t.Errorf("BrokerImage() = %q, want %q", got, want)
	}
}
