package handlers

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	shazamqv1alpha1 "github.com/shazamq/shazamq-operator/api/v1alpha1"
)

func TestShazamqClusterDefaulter_Default(t *testing.T) {
	tests := map[string]struct {
		cluster  *shazamqv1alpha1.ShazamqCluster
		wantSpec shazamqv1alpha1.ShazamqClusterSpec
	}{
		"empty spec gets all defaults": {
			cluster: &shazamqv1alpha1.ShazamqCluster{
				ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"},
				Spec:       shazamqv1alpha1.ShazamqClusterSpec{Replicas: 3},
			},
			wantSpec: shazamqv1alpha1.ShazamqClusterSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: "IfNotPresent",
				Service: &shazamqv1alpha1.ServiceConfig{
					Type:        "ClusterIP",
					Port:        9092,
					MetricsPort: 9090,
				},
			},
		},
		"explicit values preserved": {
			cluster: &shazamqv1alpha1.ShazamqCluster{
				ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"},
				Spec: shazamqv1alpha1.ShazamqClusterSpec{
					Replicas:        5,
					Version:         "1.2.0",
					Image:           "registry.example.com/shazamq",
					ImagePullPolicy: "Always",
					Service: &shazamqv1alpha1.ServiceConfig{
						Type:        "LoadBalancer",
						Port:        19092,
						MetricsPort: 19090,
					},
				},
			},
			wantSpec: shazamqv1alpha1.ShazamqClusterSpec{
				Replicas:        5,
				Version:         "1.2.0",
				Image:           "registry.example.com/shazamq",
				ImagePullPolicy: "Always",
				Service: &shazamqv1alpha1.ServiceConfig{
					Type:        "LoadBalancer",
					Port:        19092,
					MetricsPort: 19090,
				},
			},
		},
		"partial service block filled in": {
			cluster: &shazamqv1alpha1.ShazamqCluster{
				ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"},
				Spec: shazamqv1alpha1.ShazamqClusterSpec{
					Replicas: 3,
					Service: &shazamqv1alpha1.ServiceConfig{
						Type: "NodePort",
					},
				},
			},
			wantSpec: shazamqv1alpha1.ShazamqClusterSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: "IfNotPresent",
				Service: &shazamqv1alpha1.ServiceConfig{
					Type:        "NodePort",
					Port:        9092,
					MetricsPort: 9090,
				},
			},
		},
		"optional blocks untouched": {
			cluster: &shazamqv1alpha1.ShazamqCluster{
				ObjectMeta: metav1.ObjectMeta{Name: "test", Namespace: "default"},
				Spec: shazamqv1alpha1.ShazamqClusterSpec{
					Replicas: 3,
					Mirror: &shazamqv1alpha1.MirrorConfig{
						Enabled: true,
						Sources: []shazamqv1alpha1.MirrorSource{
							{
								Name:             "upstream",
								BootstrapServers: "kafka:9092",
								SecurityProtocol: "PLAINTEXT",
								ConsumerGroupId:  "g",
								TopicWhitelist:   []string{"t"},
							},
						},
					},
				},
			},
			wantSpec: shazamqv1alpha1.ShazamqClusterSpec{
				Replicas:        3,
				Version:         "0.1.1-rc1",
				Image:           "shazamq/shazamq",
				ImagePullPolicy: "IfNotPresent",
				Service: &shazamqv1alpha1.ServiceConfig{
					Type:        "ClusterIP",
					Port:        9092,
					MetricsPort: 9090,
				},
				Mirror: &shazamqv1alpha1.MirrorConfig{
					Enabled: true,
					Sources: []shazamqv1alpha1.MirrorSource{
						{
							Name:             "upstream",
							BootstrapServers: "kafka:9092",
							SecurityProtocol: "PLAINTEXT",
							ConsumerGroupId:  "g",
							TopicWhitelist:   []string{"t"},
						},
					},
				},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewShazamqClusterDefaulter()
			if err := d.Default(context.Background(), tc.cluster); err != nil {
				t.Fatalf("Default() error = %v", err)
			}
			if diff := cmp.Diff(tc.wantSpec, tc.cluster.Spec); diff != "" {
				t.Errorf("Default() spec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShazamqClusterDefaulter_WrongType(t *testing.T) {
	d := NewShazamqClusterDefaulter()
	if err := d.Default(context.Background(), &shazamqv1alpha1.ShazamqClusterList{}); err == nil {
		t.Error("Default() with wrong type should error")
	}
}

func TestShazamqClusterDefaulter_InvalidQuantity(t *testing.T) {
	d := NewShazamqClusterDefaulter()
	cluster := &shazamqv1alpha1.ShazamqCluster{
		Spec: shazamqv1alpha1.ShazamqClusterSpec{
			Replicas: 1,
			Resources: &shazamqv1alpha1.ResourceRequirements{
				Limits: &shazamqv1alpha1.ResourceList{Memory: "four gigabytes"},
			},
		},
	}
	if err := d.Default(context.Background(), cluster); err == nil {
		t.Error("Default() with invalid quantity should error")
	}
}
