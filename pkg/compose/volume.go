package compose

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// defaultVolumeSize is the storage request used when a volume does not
// declare x-size.
const defaultVolumeSize = "1Gi"

// buildVolumePVC converts a top-level named volume into a PVC. A nil spec
// (bare "volname:" entry) gets the default size.
func buildVolumePVC(name string, spec *VolumeSpec) (*corev1.PersistentVolumeClaim, error) {
	size := defaultVolumeSize
	if spec != nil {
		if spec.IsExternal() {
			return nil, errExternalVolume()
		}
		if spec.Size != "" {
			size = spec.Size
		}
	}
	return buildPVC(name, size)
}

// buildDataPVC builds the shared claim backing ./data/ bind mounts. The
// size comes from challenge metadata and falls back to the default.
func buildDataPVC(size string) (*corev1.PersistentVolumeClaim, error) {
	if size == "" {
		size = defaultVolumeSize
	}
	return buildPVC(DataClaimName, size)
}

func buildPVC(name, size string) (*corev1.PersistentVolumeClaim, error) {
	qty, err := resource.ParseQuantity(size)
	if err != nil {
		return nil, errOther("Invalid volume size %q: %v", size, err)
	}
	return &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: qty,
				},
			},
		},
	}, nil
}
