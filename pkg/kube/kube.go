package kube

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
)

// Resource identifiers for the custom resources created per instance.
var (
	IngressRouteGVR = schema.GroupVersionResource{
		Group: "traefik.io", Version: "v1alpha1", Resource: "ingressroutes",
	}
	IngressRouteTCPGVR = schema.GroupVersionResource{
		Group: "traefik.io", Version: "v1alpha1", Resource: "ingressroutetcps",
	}
	CiliumNetworkPolicyGVR = schema.GroupVersionResource{
		Group: "cilium.io", Version: "v2", Resource: "ciliumnetworkpolicies",
	}
	VirtualMachineGVR = schema.GroupVersionResource{
		Group: "kubevirt.io", Version: "v1", Resource: "virtualmachines",
	}
	SSHGatewayGVR = schema.GroupVersionResource{
		Group: "plfanzen.garden", Version: "v1alpha1", Resource: "sshgateways",
	}
)

// Create converts obj to its unstructured form and creates it in the given
// namespace. obj must be a pointer to a struct with apiVersion and kind set.
func Create(ctx context.Context, client dynamic.Interface, gvr schema.GroupVersionResource, namespace string, obj interface{}) error {
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return fmt.Errorf("converting %s to unstructured: %w", gvr.Resource, err)
	}
	u := &unstructured.Unstructured{Object: content}
	if u.GetKind() == "" {
		return fmt.Errorf("object for %s has no kind set", gvr.Resource)
	}
	if _, err := client.Resource(gvr).Namespace(namespace).Create(ctx, u, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("creating %s %s: %w", u.GetKind(), u.GetName(), err)
	}
	return nil
}
