package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plfanzen/plfanzen/pkg/kube"
)

// TestBuildVirtualMachine tests the KubeVirt object for a full VM spec
func TestBuildVirtualMachine(t *testing.T) {
	doc := parseDoc(t, `
services: {}
x-ctf-vms:
  router:
    memory: 512Mi
    cpu_cores: 2
    disks:
      - image: quay.io/containerdisks/fedora:40
      - cloud_init_user_data_base64: I2Nsb3VkLWNvbmZpZwo=
      - volume_name: routerdata
`)
	vm, err := buildVirtualMachine("router", doc.VMs["router"])
	require.NoError(t, err)

	assert.Equal(t, "router", vm.Name)
	assert.Equal(t, "VirtualMachine", vm.Kind)
	assert.Equal(t, "kubevirt.io/v1", vm.APIVersion)

	wantLabels := map[string]string{
		"app":                "challenge",
		"challengevm":        "router",
		"virtual-machine-id": "router",
		"networkpolicy":      "base",
	}
	assert.Equal(t, wantLabels, vm.Labels)
	assert.Equal(t, wantLabels, vm.Spec.Template.ObjectMeta.Labels,
		"template labels reach the virt-launcher pod")

	require.NotNil(t, vm.Spec.Running)
	assert.True(t, *vm.Spec.Running)

	spec := vm.Spec.Template.Spec
	require.NotNil(t, spec)
	require.NotNil(t, spec.Domain.CPU)
	assert.Equal(t, int32(2), spec.Domain.CPU.Cores)
	require.NotNil(t, spec.Domain.Resources)
	assert.Equal(t, map[string]string{"memory": "512Mi"}, spec.Domain.Resources.Requests)

	require.Len(t, spec.Volumes, 3)
	assert.Equal(t, kube.VMVolume{
		Name:          "disk-0",
		ContainerDisk: &kube.ContainerDiskSource{Image: "quay.io/containerdisks/fedora:40"},
	}, spec.Volumes[0])
	assert.Equal(t, kube.VMVolume{
		Name:             "disk-1",
		CloudInitNoCloud: &kube.CloudInitNoCloudSource{UserDataBase64: "I2Nsb3VkLWNvbmZpZwo="},
	}, spec.Volumes[1])
	assert.Equal(t, kube.VMVolume{
		Name:                  "disk-2",
		PersistentVolumeClaim: &kube.PVCDiskSource{ClaimName: "routerdata"},
	}, spec.Volumes[2])
}

// TestBuildVirtualMachineValidation tests required fields and disk shapes
func TestBuildVirtualMachineValidation(t *testing.T) {
	tests := []struct {
		name     string
		vm       *VM
		contains string
	}{
		{
			name:     "missing memory",
			vm:       &VM{CPUCores: 1},
			contains: "memory",
		},
		{
			name:     "unparseable memory",
			vm:       &VM{Memory: "lots", CPUCores: 1},
			contains: "Invalid memory",
		},
		{
			name:     "missing cpu cores",
			vm:       &VM{Memory: "512Mi"},
			contains: "cpu_cores",
		},
		{
			name:     "disk with two sources",
			vm:       &VM{Memory: "512Mi", CPUCores: 1, Disks: []VMDisk{{Image: "x", VolumeName: "y"}}},
			contains: "exactly one",
		},
		{
			name:     "disk with no source",
			vm:       &VM{Memory: "512Mi", CPUCores: 1, Disks: []VMDisk{{}}},
			contains: "exactly one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildVirtualMachine("vm1", tt.vm)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// TestBuildVMServices tests the headless and proxied services of a VM
func TestBuildVMServices(t *testing.T) {
	vm := &VM{
		Memory:   "1Gi",
		CPUCores: 1,
		Ports:    []Port{{Target: 22, Published: &PortRange{Start: 2022, End: 2022}}},
	}
	headless, proxied, err := buildVMServices("router", vm)
	require.NoError(t, err)

	assert.Equal(t, "router", headless.Name)
	assert.Equal(t, map[string]string{"challengevm": "router"}, headless.Spec.Selector)

	require.NotNil(t, proxied)
	assert.Equal(t, "router-exposed-ports", proxied.Name)
	assert.Equal(t, map[string]string{"challengevm": "router"}, proxied.Spec.Selector)
	require.Len(t, proxied.Spec.Ports, 1)
	assert.Equal(t, int32(2022), proxied.Spec.Ports[0].Port)

	_, proxied, err = buildVMServices("router", &VM{Memory: "1Gi", CPUCores: 1})
	require.NoError(t, err)
	assert.Nil(t, proxied)
}
