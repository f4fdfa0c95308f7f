package compose

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/plfanzen/plfanzen/pkg/kube"
)

// vmLabels carries the service selector label plus the labels the
// synthesized network policies match on. They go on the instance
// template, so KubeVirt propagates them to the virt-launcher pod.
func vmLabels(id string) map[string]string {
	return map[string]string{
		"app":                "challenge",
		"challengevm":        id,
		"virtual-machine-id": id,
		"networkpolicy":      "base",
	}
}

func buildVirtualMachine(id string, vm *VM) (*kube.VirtualMachine, error) {
	if vm.Memory == "" {
		return nil, errOther("VM %s does not declare memory", id)
	}
	if _, err := resource.ParseQuantity(vm.Memory); err != nil {
		return nil, errOther("Invalid memory for VM %s: %v", id, err)
	}
	if vm.CPUCores < 1 {
		return nil, errOther("VM %s does not declare cpu_cores", id)
	}

	volumes, err := buildVMVolumes(id, vm.Disks)
	if err != nil {
		return nil, err
	}

	return &kube.VirtualMachine{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "kubevirt.io/v1",
			Kind:       "VirtualMachine",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   id,
			Labels: vmLabels(id),
		},
		Spec: kube.VirtualMachineSpec{
			Running: ptr.To(true),
			Template: kube.VirtualMachineTemplate{
				ObjectMeta: metav1.ObjectMeta{
					Labels: vmLabels(id),
				},
				Spec: &kube.VirtualMachineInstanceSpec{
					Domain: kube.DomainSpec{
						CPU: &kube.CPU{Cores: vm.CPUCores},
						Resources: &kube.VMResources{
							Requests: map[string]string{
								"memory": vm.Memory,
							},
						},
					},
					Volumes: volumes,
				},
			},
		},
	}, nil
}

// buildVMVolumes maps disks to volumes named disk-<i>. Each disk must
// declare exactly one source.
func buildVMVolumes(id string, disks []VMDisk) ([]kube.VMVolume, error) {
	volumes := make([]kube.VMVolume, 0, len(disks))
	for i, disk := range disks {
		vol := kube.VMVolume{Name: fmt.Sprintf("disk-%d", i)}
		sources := 0
		if disk.Image != "" {
			vol.ContainerDisk = &kube.ContainerDiskSource{Image: disk.Image}
			sources++
		}
		if disk.CloudInitB64 != "" {
			vol.CloudInitNoCloud = &kube.CloudInitNoCloudSource{UserDataBase64: disk.CloudInitB64}
			sources++
		}
		if disk.VolumeName != "" {
			vol.PersistentVolumeClaim = &kube.PVCDiskSource{ClaimName: disk.VolumeName}
			sources++
		}
		if sources != 1 {
			return nil, errOther("Disk %d of VM %s must declare exactly one of image, cloud_init_user_data_base64 or volume_name", i, id)
		}
		volumes = append(volumes, vol)
	}
	return volumes, nil
}

// buildVMServices returns the headless service every VM gets plus the
// proxied service carrying its published ports, when it has any.
func buildVMServices(id string, vm *VM) (*corev1.Service, *corev1.Service, error) {
	selector := map[string]string{"challengevm": id}
	headless := buildHeadlessService(id, selector)
	proxied, err := buildProxiedService(id, vm.Ports, selector)
	if err != nil {
		return nil, nil, err
	}
	return headless, proxied, nil
}
