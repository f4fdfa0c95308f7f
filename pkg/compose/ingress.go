package compose

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/plfanzen/plfanzen/pkg/kube"
)

const ingressEntryPoint = "websecure"

// exposedHost is the public name a port is reachable under. The namespace
// carries the challenge and instance ids, so the full name stays unique
// across instances.
func exposedHost(id string, target int32, namespace, domain string) string {
	return fmt.Sprintf("%s-%d-%s.%s", id, target, namespace, domain)
}

// buildIngressRoute routes every HTTP port through Traefik with TLS
// termination at the websecure entrypoint. Returns nil when the entity has
// no HTTP ports.
func buildIngressRoute(id string, ports []Port, namespace, domain string) *kube.IngressRoute {
	var routes []kube.Route
	for i := range ports {
		port := &ports[i]
		if !port.IsHTTP() {
			continue
		}
		routes = append(routes, kube.Route{
			Kind:  "Rule",
			Match: fmt.Sprintf("Host(`%s`)", exposedHost(id, port.Target, namespace, domain)),
			Services: []kube.RouteService{{
				Name: proxiedServiceName(id),
				Port: port.Target,
			}},
		})
	}
	if len(routes) == 0 {
		return nil
	}
	return &kube.IngressRoute{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "traefik.io/v1alpha1",
			Kind:       "IngressRoute",
		},
		ObjectMeta: metav1.ObjectMeta{Name: id + "-ingress-route"},
		Spec: kube.IngressRouteSpec{
			EntryPoints: []string{ingressEntryPoint},
			Routes:      routes,
		},
	}
}

// buildIngressRouteTCP routes the remaining TCP ports (neither HTTP nor
// SSH) by SNI. Traefik terminates TLS here as well, so raw-TCP challenges
// are reached with TLS clients (openssl s_client, ncat --ssl).
func buildIngressRouteTCP(id string, ports []Port, namespace, domain string) *kube.IngressRouteTCP {
	var routes []kube.RouteTCP
	for i := range ports {
		port := &ports[i]
		if !port.IsTCP() || port.IsHTTP() || port.IsSSH() {
			continue
		}
		routes = append(routes, kube.RouteTCP{
			Match: fmt.Sprintf("HostSNI(`%s`)", exposedHost(id, port.Target, namespace, domain)),
			Services: []kube.RouteTCPService{{
				Name: proxiedServiceName(id),
				Port: port.Target,
			}},
		})
	}
	if len(routes) == 0 {
		return nil
	}
	return &kube.IngressRouteTCP{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "traefik.io/v1alpha1",
			Kind:       "IngressRouteTCP",
		},
		ObjectMeta: metav1.ObjectMeta{Name: id + "-ingress-route-tcp"},
		Spec: kube.IngressRouteTCPSpec{
			EntryPoints: []string{ingressEntryPoint},
			Routes:      routes,
			TLS:         &kube.TLSTCP{Passthrough: false},
		},
	}
}
