package compose

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/plfanzen/plfanzen/api/v1alpha1"
	"github.com/plfanzen/plfanzen/pkg/log"
)

// buildSSHGateways emits one SSHGateway resource per TCP port marked with
// app_protocol ssh. The gateway needs backend credentials from the
// x-username/x-password port extensions; ports missing either (or
// declaring them as non-strings) are skipped with a warning rather than
// failing the whole instance.
func buildSSHGateways(id string, ports []Port, gatewayPassword string) []*v1alpha1.SSHGateway {
	logger := log.WithComponent("compose")

	var gateways []*v1alpha1.SSHGateway
	for i := range ports {
		port := &ports[i]
		if !port.IsSSH() {
			continue
		}
		if port.Username == "" {
			logger.Warn().
				Str("service", id).
				Int32("port", port.Target).
				Msg("SSH port does not declare x-username as string, skipping")
			continue
		}
		if port.Password == "" {
			logger.Warn().
				Str("service", id).
				Int32("port", port.Target).
				Msg("SSH port does not declare x-password as string, skipping")
			continue
		}

		gateway := &v1alpha1.SSHGateway{
			TypeMeta: metav1.TypeMeta{
				APIVersion: v1alpha1.GroupVersion.String(),
				Kind:       "SSHGateway",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name: fmt.Sprintf("%s-%d", id, port.PublishedPort()),
			},
			Spec: v1alpha1.SSHGatewaySpec{
				// The proxied service is the one carrying ports; the
				// headless service would not route.
				BackendService:  proxiedServiceName(id),
				BackendPort:     port.Target,
				BackendUsername: port.Username,
				BackendPassword: port.Password,
			},
		}
		if gatewayPassword != "" {
			password := gatewayPassword
			gateway.Spec.GatewayPassword = &password
		}
		gateways = append(gateways, gateway)
	}
	return gateways
}
