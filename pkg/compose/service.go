package compose

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// buildHeadlessService emits the DNS-only Service every entity gets: no
// ports, no cluster IP, pods addressable as <name>.<ns>.svc.cluster.local.
func buildHeadlessService(name string, selector map[string]string) *corev1.Service {
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: corev1.ServiceSpec{
			Selector:  selector,
			ClusterIP: corev1.ClusterIPNone,
		},
	}
}

// buildProxiedService groups the entity's published ports behind a
// ClusterIP service for Traefik and the SSH gateway to target. It is not
// reachable from outside the cluster. Returns nil when no ports are
// declared.
//
// Only plain TCP is supported: published UDP would need a LoadBalancer
// path we don't have, and HostIP pinning has no cluster equivalent.
func buildProxiedService(id string, ports []Port, selector map[string]string) (*corev1.Service, error) {
	if len(ports) == 0 {
		return nil, nil
	}
	servicePorts := make([]corev1.ServicePort, 0, len(ports))
	for i := range ports {
		port := &ports[i]
		if port.HostIP != "" {
			return nil, errPortWithHostIP()
		}
		if !port.IsTCP() {
			return nil, errOther("Unsupported protocol in port definition")
		}
		servicePorts = append(servicePorts, corev1.ServicePort{
			Name:       port.Name,
			Port:       port.PublishedPort(),
			TargetPort: intstr.FromInt32(port.Target),
			Protocol:   corev1.ProtocolTCP,
		})
	}
	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: proxiedServiceName(id)},
		Spec: corev1.ServiceSpec{
			Selector: selector,
			Ports:    servicePorts,
		},
	}, nil
}

func proxiedServiceName(id string) string {
	return id + "-exposed-ports"
}
