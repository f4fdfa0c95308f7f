package instance

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/plfanzen/plfanzen/pkg/compose"
	"github.com/plfanzen/plfanzen/pkg/kube"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// Deploy creates every translated object in the instance namespace. Typed
// objects go through the standard clientset, custom resources through the
// dynamic client. Creation order is fixed: workloads first, then routing,
// storage, virtual machines, policies and finally the SSH gateways. Names
// are instance-scoped, so a retry after a partial failure conflicts
// instead of duplicating.
func Deploy(ctx context.Context, client kubernetes.Interface, dyn dynamic.Interface, namespace string, objects *compose.Objects) error {
	for _, deployment := range objects.Deployments {
		if _, err := client.AppsV1().Deployments(namespace).Create(ctx, deployment, metav1.CreateOptions{}); err != nil {
			return types.WrapInternal(err, "Failed to create deployment %s", deployment.Name)
		}
	}
	for _, service := range objects.Services {
		if _, err := client.CoreV1().Services(namespace).Create(ctx, service, metav1.CreateOptions{}); err != nil {
			return types.WrapInternal(err, "Failed to create service %s", service.Name)
		}
	}
	for _, route := range objects.IngressRoutes {
		if err := kube.Create(ctx, dyn, kube.IngressRouteGVR, namespace, route); err != nil {
			return types.WrapInternal(err, "Failed to create ingress route %s", route.Name)
		}
	}
	for _, route := range objects.IngressRouteTCPs {
		if err := kube.Create(ctx, dyn, kube.IngressRouteTCPGVR, namespace, route); err != nil {
			return types.WrapInternal(err, "Failed to create tcp ingress route %s", route.Name)
		}
	}
	for _, pvc := range objects.PVCs {
		if _, err := client.CoreV1().PersistentVolumeClaims(namespace).Create(ctx, pvc, metav1.CreateOptions{}); err != nil {
			return types.WrapInternal(err, "Failed to create volume claim %s", pvc.Name)
		}
	}
	for _, vm := range objects.VirtualMachines {
		if err := kube.Create(ctx, dyn, kube.VirtualMachineGVR, namespace, vm); err != nil {
			return types.WrapInternal(err, "Failed to create virtual machine %s", vm.Name)
		}
	}
	for _, policy := range objects.NetworkPolicies {
		if err := kube.Create(ctx, dyn, kube.CiliumNetworkPolicyGVR, namespace, policy); err != nil {
			return types.WrapInternal(err, "Failed to create network policy %s", policy.Name)
		}
	}
	for _, gateway := range objects.SSHGateways {
		if err := kube.Create(ctx, dyn, kube.SSHGatewayGVR, namespace, gateway); err != nil {
			return types.WrapInternal(err, "Failed to create ssh gateway %s", gateway.Name)
		}
	}
	return nil
}
