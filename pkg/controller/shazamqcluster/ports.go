package shazamqcluster

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/shazamq/shazamq-operator/pkg/resolver"
)

const (
	// KafkaPortName is the name of the client protocol port.
	KafkaPortName = "kafka"

	// MetricsPortName is the name of the metrics port.
	MetricsPortName = "metrics"

	// KafkaContainerPort is the fixed client protocol port inside the
	// broker container. The broker configuration pins it, so service ports
	// always target this value regardless of the published port.
	KafkaContainerPort int32 = 9092

	// MetricsContainerPort is the fixed metrics port inside the broker
	// container.
	MetricsContainerPort int32 = 9090
)

// buildContainerPorts creates the port definitions for the broker container.
func buildContainerPorts() []corev1.ContainerPort {
	return []corev1.ContainerPort{
		{
			Name:          KafkaPortName,
			ContainerPort: KafkaContainerPort,
			Protocol:      corev1.ProtocolTCP,
		},
		{
			Name:          MetricsPortName,
			ContainerPort: MetricsContainerPort,
			Protocol:      corev1.ProtocolTCP,
		},
	}
}

// buildClientServicePorts creates service ports for the client Service.
// The published ports come from the spec; the target ports are the fixed
// container ports.
func buildClientServicePorts(resolved *resolver.ResolvedSpec) []corev1.ServicePort {
	return []corev1.ServicePort{
		{
			Name:       KafkaPortName,
			Port:       resolved.Port,
			TargetPort: intstr.FromInt32(KafkaContainerPort),
			Protocol:   corev1.ProtocolTCP,
		},
		{
			Name:       MetricsPortName,
			Port:       resolved.MetricsPort,
			TargetPort: intstr.FromInt32(MetricsContainerPort),
			Protocol:   corev1.ProtocolTCP,
		},
	}
}

// buildHeadlessServicePorts creates service ports for the discovery Service.
// Only the client protocol port is exposed; brokers address each other
// directly through per-pod DNS records.
func buildHeadlessServicePorts() []corev1.ServicePort {
	return []corev1.ServicePort{
		{
			Name:     KafkaPortName,
			Port:     KafkaContainerPort,
			Protocol: corev1.ProtocolTCP,
		},
	}
}
