// Package storage provides utilities for building PersistentVolumeClaim
// templates for StatefulSet-based components.
package storage

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BuildPVCTemplate creates a PersistentVolumeClaim for a StatefulSet's
// volumeClaimTemplates. The claim is single-writer (ReadWriteOnce), which
// matches one durable log directory per broker replica.
//
// Parameters:
//   - name: Name for the volume claim (e.g., "data")
//   - storageSize: Size of the volume (e.g., "100Gi")
func BuildPVCTemplate(name, storageSize string) corev1.PersistentVolumeClaim {
	return corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: []corev1.PersistentVolumeAccessMode{
				corev1.ReadWriteOnce,
			},
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: resource.MustParse(storageSize),
				},
			},
		},
	}
}
