package compose

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// Shared names used across the generated objects.
const (
	// DataClaimName is the per-instance PVC backing ./data/ bind mounts.
	DataClaimName = "pf-internal-ctf-data"

	tiniVolume    = "tini"
	tiniInitImage = "krallin/ubuntu-tini:latest"
	shmVolume     = "dshm"

	// kataRuntimeClass isolates privileged workloads in a VM-backed
	// runtime instead of granting them the shared kernel.
	kataRuntimeClass = "kata"
)

// buildDeployment translates one service into a Deployment. workingDir is
// the rendered challenge directory env_file references resolve against.
func buildDeployment(id string, svc *Service, workingDir string) (*appsv1.Deployment, error) {
	if err := rejectUnsupported(svc); err != nil {
		return nil, err
	}

	workDir, err := filepath.EvalSymlinks(workingDir)
	if err != nil {
		return nil, errOther("Failed to canonicalize working directory %s: %v", workingDir, err)
	}

	env, err := buildEnv(svc, workDir)
	if err != nil {
		return nil, err
	}
	replicas, err := replicaCount(svc)
	if err != nil {
		return nil, err
	}
	podSpec, err := buildPodSpec(id, svc, env)
	if err != nil {
		return nil, err
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:   id,
			Labels: deployLabels(svc),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{"component": id},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      podLabels(id, svc),
					Annotations: map[string]string(svc.Annotations),
				},
				Spec: *podSpec,
			},
		},
	}, nil
}

// requiresDataPVC reports whether the service binds anything under
// ./data/, which is backed by the shared per-instance data claim.
func requiresDataPVC(svc *Service) bool {
	for _, mount := range svc.Volumes {
		if mount.Type == MountBind && strings.HasPrefix(mount.Source, "./data/") {
			return true
		}
	}
	return false
}

func replicaCount(svc *Service) (*int32, error) {
	replicas := svc.Scale
	if svc.Deploy != nil && svc.Deploy.Replicas != nil {
		if replicas != nil && *replicas != *svc.Deploy.Replicas {
			return nil, errOther("Conflict between top-level scale and deploy.replicas")
		}
		replicas = svc.Deploy.Replicas
	}
	return replicas, nil
}

func deployLabels(svc *Service) map[string]string {
	if svc.Deploy == nil || len(svc.Deploy.Labels) == 0 {
		return nil
	}
	return map[string]string(svc.Deploy.Labels)
}

// podLabels carries the selector label plus the labels the synthesized
// network policies match on. Author labels are applied last and may
// override any of them.
func podLabels(id string, svc *Service) map[string]string {
	labels := map[string]string{
		"app":                "challenge",
		"component":          id,
		"compose-service-id": id,
		"networkpolicy":      "base",
	}
	for k, v := range svc.Labels {
		labels[k] = v
	}
	return labels
}

func buildPodSpec(id string, svc *Service, env []corev1.EnvVar) (*corev1.PodSpec, error) {
	volumes, err := buildVolumes(svc)
	if err != nil {
		return nil, err
	}
	mounts, err := buildVolumeMounts(svc)
	if err != nil {
		return nil, err
	}
	securityContext, err := buildContainerSecurityContext(svc)
	if err != nil {
		return nil, err
	}
	podSecurityContext, err := buildPodSecurityContext(svc)
	if err != nil {
		return nil, err
	}
	grace, err := terminationGracePeriod(svc)
	if err != nil {
		return nil, err
	}
	container, err := buildContainer(id, svc, env, mounts, securityContext)
	if err != nil {
		return nil, err
	}

	return &corev1.PodSpec{
		RuntimeClassName:              runtimeClass(svc),
		Hostname:                      svc.Hostname,
		Subdomain:                     svc.Domainname,
		HostAliases:                   buildHostAliases(svc),
		DNSConfig:                     buildDNSConfig(svc),
		TerminationGracePeriodSeconds: grace,
		Volumes:                       volumes,
		// Declaring the OS is what lets the kubelet honor stopSignal.
		OS:              &corev1.PodOS{Name: corev1.Linux},
		InitContainers:  buildInitContainers(svc),
		SecurityContext: podSecurityContext,
		Containers:      []corev1.Container{*container},
	}, nil
}

// runtimeClass forces the isolated kata runtime for anything privileged or
// capability-granting; otherwise the author's runtime passes through.
func runtimeClass(svc *Service) *string {
	if svc.Privileged || len(svc.CapAdd) > 0 {
		return ptr.To(kataRuntimeClass)
	}
	if svc.Runtime != "" {
		return ptr.To(svc.Runtime)
	}
	return nil
}

func buildHostAliases(svc *Service) []corev1.HostAlias {
	if len(svc.ExtraHosts) == 0 {
		return nil
	}
	aliases := make([]corev1.HostAlias, 0, len(svc.ExtraHosts))
	for _, mapping := range svc.ExtraHosts {
		aliases = append(aliases, corev1.HostAlias{
			IP:        mapping.IP,
			Hostnames: []string{mapping.Host},
		})
	}
	return aliases
}

func buildDNSConfig(svc *Service) *corev1.PodDNSConfig {
	if len(svc.DNS) == 0 && len(svc.DNSOpt) == 0 && len(svc.DNSSearch) == 0 {
		return nil
	}
	config := &corev1.PodDNSConfig{
		Nameservers: svc.DNS,
		Searches:    svc.DNSSearch,
	}
	for _, opt := range svc.DNSOpt {
		name, value, found := strings.Cut(opt, ":")
		option := corev1.PodDNSConfigOption{Name: name}
		if found {
			option.Value = ptr.To(value)
		}
		config.Options = append(config.Options, option)
	}
	return config
}

func terminationGracePeriod(svc *Service) (*int64, error) {
	if svc.StopGracePeriod == "" {
		return nil, nil
	}
	d, err := parseComposeDuration(svc.StopGracePeriod)
	if err != nil {
		return nil, errOther("Invalid stop_grace_period %q: %v", svc.StopGracePeriod, err)
	}
	return ptr.To(int64(d.Seconds())), nil
}

// parseComposeDuration accepts Go-style durations ("1m30s") plus the bare
// integer form compose allows, which means seconds.
func parseComposeDuration(value string) (time.Duration, error) {
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(value)
}

func buildContainer(id string, svc *Service, env []corev1.EnvVar, mounts []corev1.VolumeMount, securityContext *corev1.SecurityContext) (*corev1.Container, error) {
	pullPolicy, err := convertPullPolicy(svc.PullPolicy)
	if err != nil {
		return nil, err
	}

	container := &corev1.Container{
		Name:            id,
		Image:           svc.Image,
		ImagePullPolicy: pullPolicy,
		Stdin:           svc.StdinOpen,
		TTY:             svc.TTY,
		WorkingDir:      svc.WorkingDir,
		Resources:       buildResources(svc),
		Ports:           buildContainerPorts(svc),
		SecurityContext: securityContext,
		Command:         buildCommand(svc),
		Args:            buildArgs(svc),
		Env:             env,
		VolumeMounts:    mounts,
	}
	if svc.StopSignal != "" {
		container.Lifecycle = &corev1.Lifecycle{
			StopSignal: ptr.To(corev1.Signal(svc.StopSignal)),
		}
	}
	return container, nil
}

func convertPullPolicy(policy string) (corev1.PullPolicy, error) {
	switch policy {
	case "":
		return "", nil
	case "always":
		return corev1.PullAlways, nil
	case "never":
		return corev1.PullNever, nil
	case "missing", "build":
		return corev1.PullIfNotPresent, nil
	}
	return "", errOther("Unsupported pull_policy: %s", policy)
}

func buildResources(svc *Service) corev1.ResourceRequirements {
	requirements := corev1.ResourceRequirements{}
	if svc.MemReservation > 0 {
		requirements.Requests = corev1.ResourceList{
			corev1.ResourceMemory: *resource.NewQuantity(int64(svc.MemReservation), resource.BinarySI),
		}
	}

	limits := corev1.ResourceList{}
	if svc.MemLimit > 0 {
		limits[corev1.ResourceMemory] = *resource.NewQuantity(int64(svc.MemLimit), resource.BinarySI)
	}
	if svc.CPUs != nil {
		limits[corev1.ResourceCPU] = *resource.NewMilliQuantity(int64(float64(*svc.CPUs)*1000), resource.DecimalSI)
	} else if svc.CPUCount != nil {
		limits[corev1.ResourceCPU] = *resource.NewQuantity(*svc.CPUCount, resource.DecimalSI)
	}
	if len(limits) > 0 {
		requirements.Limits = limits
	}
	return requirements
}

func buildContainerPorts(svc *Service) []corev1.ContainerPort {
	if len(svc.Expose) == 0 {
		return nil
	}
	ports := make([]corev1.ContainerPort, 0, len(svc.Expose))
	for _, expose := range svc.Expose {
		protocol := corev1.ProtocolTCP
		if strings.EqualFold(expose.Protocol, "udp") {
			protocol = corev1.ProtocolUDP
		}
		ports = append(ports, corev1.ContainerPort{
			ContainerPort: expose.Port,
			Protocol:      protocol,
		})
	}
	return ports
}

// buildCommand maps the entrypoint onto the container command. With init
// enabled the command becomes the tini shim and the original entrypoint
// moves into the args.
func buildCommand(svc *Service) []string {
	if svc.Init {
		return []string{"/tini/tini", "--"}
	}
	return svc.Entrypoint
}

func buildArgs(svc *Service) []string {
	if !svc.Init {
		return svc.Command
	}
	args := make([]string, 0, len(svc.Entrypoint)+len(svc.Command))
	args = append(args, svc.Entrypoint...)
	args = append(args, svc.Command...)
	if len(args) == 0 {
		return nil
	}
	return args
}

func buildInitContainers(svc *Service) []corev1.Container {
	if !svc.Init {
		return nil
	}
	return []corev1.Container{{
		Name:    "install-tini",
		Image:   tiniInitImage,
		Command: []string{"cp", "-v", "/usr/bin/tini", "/tini/tini"},
		VolumeMounts: []corev1.VolumeMount{{
			Name:      tiniVolume,
			MountPath: "/tini",
		}},
	}}
}

func buildPodSecurityContext(svc *Service) (*corev1.PodSecurityContext, error) {
	if len(svc.GroupAdd) == 0 {
		return nil, nil
	}
	groups := make([]int64, 0, len(svc.GroupAdd))
	for _, group := range svc.GroupAdd {
		switch {
		case group == "root":
			groups = append(groups, 0)
		default:
			gid, err := strconv.ParseInt(group, 10, 64)
			if err != nil {
				return nil, errGroupName()
			}
			groups = append(groups, gid)
		}
	}
	return &corev1.PodSecurityContext{SupplementalGroups: groups}, nil
}

func buildContainerSecurityContext(svc *Service) (*corev1.SecurityContext, error) {
	ctx := &corev1.SecurityContext{}
	hasContext := false

	if svc.Privileged {
		ctx.Privileged = ptr.To(true)
		hasContext = true
	}
	if svc.User != "" {
		// The compose form is "uid[:gid]"; only numeric users (or the
		// literal "root") can be mapped.
		user, _, _ := strings.Cut(svc.User, ":")
		switch {
		case user == "root":
			ctx.RunAsUser = ptr.To(int64(0))
		default:
			uid, err := strconv.ParseInt(user, 10, 64)
			if err != nil {
				return nil, errUserName()
			}
			ctx.RunAsUser = ptr.To(uid)
		}
		hasContext = true
	}
	if svc.ReadOnly {
		ctx.ReadOnlyRootFilesystem = ptr.To(true)
		hasContext = true
	}
	if len(svc.CapAdd) > 0 || len(svc.CapDrop) > 0 {
		capabilities := &corev1.Capabilities{}
		for _, name := range svc.CapAdd {
			capabilities.Add = append(capabilities.Add, corev1.Capability(name))
		}
		for _, name := range svc.CapDrop {
			capabilities.Drop = append(capabilities.Drop, corev1.Capability(name))
		}
		ctx.Capabilities = capabilities
		hasContext = true
	}

	if !hasContext {
		return nil, nil
	}
	return ctx, nil
}

// buildVolumes converts the mount list plus the shm_size, tmpfs and init
// extras into pod volumes.
func buildVolumes(svc *Service) ([]corev1.Volume, error) {
	volumes := make([]corev1.Volume, 0, len(svc.Volumes))
	for _, mount := range svc.Volumes {
		volume, err := convertVolume(mount)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, *volume)
	}

	if svc.ShmSize > 0 {
		volumes = append(volumes, corev1.Volume{
			Name: shmVolume,
			VolumeSource: corev1.VolumeSource{
				EmptyDir: &corev1.EmptyDirVolumeSource{
					Medium:    corev1.StorageMediumMemory,
					SizeLimit: resource.NewQuantity(int64(svc.ShmSize), resource.BinarySI),
				},
			},
		})
	}
	for _, path := range svc.Tmpfs {
		volumes = append(volumes, corev1.Volume{
			Name: slugify(path),
			VolumeSource: corev1.VolumeSource{
				EmptyDir: &corev1.EmptyDirVolumeSource{Medium: corev1.StorageMediumMemory},
			},
		})
	}
	if svc.Init {
		volumes = append(volumes, corev1.Volume{
			Name:         tiniVolume,
			VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}},
		})
	}
	return volumes, nil
}

func convertVolume(mount Mount) (*corev1.Volume, error) {
	switch mount.Type {
	case MountVolume:
		if mount.Source == "" {
			return nil, errAnonymousVolume()
		}
		return &corev1.Volume{
			Name: mount.Source,
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: mount.Source,
				},
			},
		}, nil
	case MountBind:
		if !strings.HasPrefix(mount.Source, "./data/") {
			return nil, errHostPathVolume(mount.Source)
		}
		return &corev1.Volume{
			Name: slugify(mount.Target),
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: DataClaimName,
				},
			},
		}, nil
	case MountTmpfs:
		return &corev1.Volume{
			Name: slugify(mount.Target),
			VolumeSource: corev1.VolumeSource{
				EmptyDir: &corev1.EmptyDirVolumeSource{Medium: corev1.StorageMediumMemory},
			},
		}, nil
	case MountNamedPipe:
		return nil, errNamedPipeVolume()
	case MountCluster:
		return nil, errClusterVolume()
	}
	return nil, errOther("Unsupported volume type: %s", mount.Type)
}

func buildVolumeMounts(svc *Service) ([]corev1.VolumeMount, error) {
	mounts := make([]corev1.VolumeMount, 0, len(svc.Volumes))
	for _, mount := range svc.Volumes {
		converted, err := convertVolumeMount(mount)
		if err != nil {
			return nil, err
		}
		mounts = append(mounts, *converted)
	}

	if svc.ShmSize > 0 {
		mounts = append(mounts, corev1.VolumeMount{Name: shmVolume, MountPath: "/dev/shm"})
	}
	for _, path := range svc.Tmpfs {
		mounts = append(mounts, corev1.VolumeMount{Name: slugify(path), MountPath: path})
	}
	if svc.Init {
		mounts = append(mounts, corev1.VolumeMount{Name: tiniVolume, MountPath: "/tini", ReadOnly: true})
	}
	return mounts, nil
}

func convertVolumeMount(mount Mount) (*corev1.VolumeMount, error) {
	switch mount.Type {
	case MountVolume:
		if mount.Source == "" {
			return nil, errAnonymousVolume()
		}
		return &corev1.VolumeMount{Name: mount.Source, MountPath: mount.Target}, nil
	case MountBind, MountTmpfs:
		return &corev1.VolumeMount{Name: slugify(mount.Target), MountPath: mount.Target}, nil
	case MountNamedPipe:
		return nil, errNamedPipeVolume()
	case MountCluster:
		return nil, errClusterVolume()
	}
	return nil, errOther("Unsupported volume type: %s", mount.Type)
}

// slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single dash, trimming dashes at both ends. Used to
// derive volume names from mount paths.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
