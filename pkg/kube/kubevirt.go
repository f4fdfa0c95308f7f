package kube

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// VirtualMachine is the KubeVirt VM resource (kubevirt.io/v1).
type VirtualMachine struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec VirtualMachineSpec `json:"spec"`
}

type VirtualMachineSpec struct {
	Running  *bool                  `json:"running,omitempty"`
	Template VirtualMachineTemplate `json:"template"`
}

// VirtualMachineTemplate labels propagate to the virt-launcher pod, so
// service selectors and network policies must match here, not on the VM.
type VirtualMachineTemplate struct {
	ObjectMeta metav1.ObjectMeta           `json:"metadata,omitempty"`
	Spec       *VirtualMachineInstanceSpec `json:"spec,omitempty"`
}

type VirtualMachineInstanceSpec struct {
	Domain  DomainSpec `json:"domain"`
	Volumes []VMVolume `json:"volumes,omitempty"`
}

type DomainSpec struct {
	CPU       *CPU         `json:"cpu,omitempty"`
	Resources *VMResources `json:"resources,omitempty"`
}

type CPU struct {
	Cores int32 `json:"cores,omitempty"`
}

// VMResources holds the memory request as a plain quantity string, the
// way KubeVirt expects it ("512Mi", "2Gi").
type VMResources struct {
	Requests map[string]string `json:"requests,omitempty"`
}

// VMVolume is a disk attached to the VM. Exactly one source is set.
type VMVolume struct {
	Name                  string                  `json:"name"`
	ContainerDisk         *ContainerDiskSource    `json:"containerDisk,omitempty"`
	CloudInitNoCloud      *CloudInitNoCloudSource `json:"cloudInitNoCloud,omitempty"`
	PersistentVolumeClaim *PVCDiskSource          `json:"persistentVolumeClaim,omitempty"`
}

type ContainerDiskSource struct {
	Image string `json:"image"`
}

type CloudInitNoCloudSource struct {
	UserDataBase64 string `json:"userDataBase64,omitempty"`
}

type PVCDiskSource struct {
	ClaimName string `json:"claimName"`
}
