package compose

import (
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/plfanzen/plfanzen/api/v1alpha1"
	"github.com/plfanzen/plfanzen/pkg/kube"
)

// Options configure a single translation run.
type Options struct {
	// Namespace the objects will be deployed into. It is baked into the
	// exposed hostnames, so it must be final before translating.
	Namespace string
	// ExposedDomain is the base domain challenge hostnames hang off.
	ExposedDomain string
	// WorkingDir is the challenge directory env_file references resolve
	// against.
	WorkingDir string
	// SSHPassword guards every SSH gateway of the instance when set.
	SSHPassword string
	// DataPVCSize overrides the default size of the shared ./data/ claim.
	DataPVCSize string
	// DisableDNSChecks drops the L7 DNS inspection rule from synthesized
	// policies.
	DisableDNSChecks bool
}

// Objects is everything one challenge instance deploys.
type Objects struct {
	Deployments      []*appsv1.Deployment
	Services         []*corev1.Service
	IngressRoutes    []*kube.IngressRoute
	IngressRouteTCPs []*kube.IngressRouteTCP
	PVCs             []*corev1.PersistentVolumeClaim
	VirtualMachines  []*kube.VirtualMachine
	NetworkPolicies  []*kube.CiliumNetworkPolicy
	SSHGateways      []*v1alpha1.SSHGateway
}

// Translate converts a parsed compose document into the Kubernetes
// objects of one challenge instance. Services, VMs and volumes are
// processed in name order so repeated runs produce identical bundles.
func Translate(doc *Document, opts Options) (*Objects, error) {
	objects := &Objects{}

	needsDataPVC := false
	for _, id := range sortedKeys(doc.Services) {
		svc := doc.Services[id]
		if svc == nil {
			svc = &Service{}
		}
		if err := translateService(objects, id, svc, opts); err != nil {
			return nil, err
		}
		if requiresDataPVC(svc) {
			needsDataPVC = true
		}
	}

	for _, id := range sortedKeys(doc.VMs) {
		vm := doc.VMs[id]
		if vm == nil {
			vm = &VM{}
		}
		if err := translateVM(objects, id, vm, opts); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(doc.Volumes) {
		pvc, err := buildVolumePVC(name, doc.Volumes[name])
		if err != nil {
			return nil, err
		}
		objects.PVCs = append(objects.PVCs, pvc)
	}
	if needsDataPVC {
		pvc, err := buildDataPVC(opts.DataPVCSize)
		if err != nil {
			return nil, err
		}
		objects.PVCs = append(objects.PVCs, pvc)
	}

	objects.NetworkPolicies = buildPolicies(doc, opts.DisableDNSChecks)

	return objects, nil
}

func translateService(objects *Objects, id string, svc *Service, opts Options) error {
	deployment, err := buildDeployment(id, svc, opts.WorkingDir)
	if err != nil {
		return err
	}
	objects.Deployments = append(objects.Deployments, deployment)

	selector := map[string]string{"component": id}
	objects.Services = append(objects.Services, buildHeadlessService(id, selector))

	proxied, err := buildProxiedService(id, svc.Ports, selector)
	if err != nil {
		return err
	}
	if proxied != nil {
		objects.Services = append(objects.Services, proxied)
	}

	appendPortRouting(objects, id, svc.Ports, opts)
	return nil
}

// translateVM emits the VM itself plus the same service and routing
// objects a compose service gets, so published VM ports reach players
// through the identical ingress and SSH paths.
func translateVM(objects *Objects, id string, vm *VM, opts Options) error {
	machine, err := buildVirtualMachine(id, vm)
	if err != nil {
		return err
	}
	objects.VirtualMachines = append(objects.VirtualMachines, machine)

	headless, proxied, err := buildVMServices(id, vm)
	if err != nil {
		return err
	}
	objects.Services = append(objects.Services, headless)
	if proxied != nil {
		objects.Services = append(objects.Services, proxied)
	}

	appendPortRouting(objects, id, vm.Ports, opts)
	return nil
}

func appendPortRouting(objects *Objects, id string, ports []Port, opts Options) {
	if route := buildIngressRoute(id, ports, opts.Namespace, opts.ExposedDomain); route != nil {
		objects.IngressRoutes = append(objects.IngressRoutes, route)
	}
	if route := buildIngressRouteTCP(id, ports, opts.Namespace, opts.ExposedDomain); route != nil {
		objects.IngressRouteTCPs = append(objects.IngressRouteTCPs, route)
	}
	objects.SSHGateways = append(objects.SSHGateways, buildSSHGateways(id, ports, opts.SSHPassword)...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
