package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

// buildAppDeployment parses the doc and translates its "app" service.
func buildAppDeployment(t *testing.T, data string) (*Service, error) {
	t.Helper()
	svc := parseService(t, data)
	_, err := buildDeployment("app", svc, t.TempDir())
	return svc, err
}

// TestRejectedProperties tests that every untranslatable compose property
// is refused with a PropertyNotSupported error naming it
func TestRejectedProperties(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "build", yaml: "    build: .\n"},
		{name: "pid", yaml: "    pid: host\n"},
		{name: "network_config", yaml: "    network_mode: host\n"},
		{name: "network_config", yaml: "    networks:\n      - backend\n"},
		{name: "mac_address", yaml: "    mac_address: 02:42:ac:11:00:02\n"},
		{name: "platform", yaml: "    platform: linux/amd64\n"},
		{name: "security_opt", yaml: "    security_opt:\n      - seccomp=unconfined\n"},
		{name: "profiles", yaml: "    profiles:\n      - debug\n"},
		{name: "sysctls", yaml: "    sysctls:\n      net.core.somaxconn: 1024\n"},
		{name: "ulimits", yaml: "    ulimits:\n      nofile: 65536\n"},
		{name: "storage_opt", yaml: "    storage_opt:\n      size: 20G\n"},
		{name: "mem_swappiness", yaml: "    mem_swappiness: 60\n"},
		{name: "memswap_limit", yaml: "    memswap_limit: 1g\n"},
		{name: "pids_limit", yaml: "    pids_limit: 100\n"},
		{name: "oom_kill_disable", yaml: "    oom_kill_disable: true\n"},
		{name: "oom_score_adj", yaml: "    oom_score_adj: -500\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" "+tt.yaml[4:12], func(t *testing.T) {
			_, err := buildAppDeployment(t, "services:\n  app:\n    image: x\n"+tt.yaml)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindProperty), "expected property error, got %v", err)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

// TestRejectedVolumeShapes tests the volume rows of the rejection matrix
func TestRejectedVolumeShapes(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		kind     Kind
		contains string
	}{
		{
			name: "anonymous volume",
			yaml: "    volumes:\n      - /scratch\n",
			kind: KindAnonymousVolume,
		},
		{
			name:     "bind outside data",
			yaml:     "    volumes:\n      - ./secrets:/s\n",
			kind:     KindHostPathVolume,
			contains: "./secrets",
		},
		{
			name: "absolute bind",
			yaml: "    volumes:\n      - /etc:/host-etc\n",
			kind: KindHostPathVolume,
		},
		{
			name: "named pipe",
			yaml: "    volumes:\n      - type: npipe\n        source: pipe\n        target: /p\n",
			kind: KindNamedPipeVolume,
		},
		{
			name: "cluster volume",
			yaml: "    volumes:\n      - type: cluster\n        source: c\n        target: /c\n",
			kind: KindClusterVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildAppDeployment(t, "services:\n  app:\n    image: x\n"+tt.yaml)
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "expected %s, got %v", tt.kind, err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

// TestRejectedIdentities tests that only numeric users and groups map
func TestRejectedIdentities(t *testing.T) {
	_, err := buildAppDeployment(t, "services:\n  app:\n    image: x\n    user: daemon\n")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUserName))

	_, err = buildAppDeployment(t, "services:\n  app:\n    image: x\n    group_add:\n      - wheel\n")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUserName))
	assert.Contains(t, err.Error(), "group_add")
}

// TestDeploymentShape tests the translated Deployment end to end
func TestDeploymentShape(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    image: ghcr.io/example/web:1.2
    init: true
    entrypoint: /entry.sh
    command: serve --port 8080
    scale: 2
    hostname: web
    domainname: internal
    stop_grace_period: 1m30s
    stop_signal: SIGUSR1
    working_dir: /srv
    stdin_open: true
    tty: true
    pull_policy: missing
    mem_reservation: 100mb
    mem_limit: 512m
    cpus: 0.5
    shm_size: 64m
    tmpfs: /run
    expose:
      - 8080
      - 5353/udp
    labels:
      app: totally-not-a-challenge
    annotations:
      example.com/owner: alice
    deploy:
      labels:
        tier: web
    extra_hosts:
      - "db:10.0.0.2"
    dns:
      - 10.96.0.10
    dns_search: svc.cluster.local
    dns_opt:
      - ndots:1
      - debug
    volumes:
      - dbdata:/var/lib/data
      - ./data/static:/usr/share/static
`)
	deployment, err := buildDeployment("app", svc, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "app", deployment.Name)
	assert.Equal(t, map[string]string{"tier": "web"}, deployment.Labels)
	require.NotNil(t, deployment.Spec.Replicas)
	assert.Equal(t, int32(2), *deployment.Spec.Replicas)
	assert.Equal(t, map[string]string{"component": "app"}, deployment.Spec.Selector.MatchLabels)

	template := deployment.Spec.Template
	assert.Equal(t, map[string]string{
		"app":                "totally-not-a-challenge",
		"component":          "app",
		"compose-service-id": "app",
		"networkpolicy":      "base",
	}, template.Labels, "author labels override the synthesized ones")
	assert.Equal(t, map[string]string{"example.com/owner": "alice"}, template.Annotations)

	pod := template.Spec
	require.NotNil(t, pod.OS)
	assert.Equal(t, corev1.Linux, pod.OS.Name)
	assert.Equal(t, "web", pod.Hostname)
	assert.Equal(t, "internal", pod.Subdomain)
	require.NotNil(t, pod.TerminationGracePeriodSeconds)
	assert.Equal(t, int64(90), *pod.TerminationGracePeriodSeconds)
	assert.Equal(t, []corev1.HostAlias{{IP: "10.0.0.2", Hostnames: []string{"db"}}}, pod.HostAliases)

	require.NotNil(t, pod.DNSConfig)
	assert.Equal(t, []string{"10.96.0.10"}, pod.DNSConfig.Nameservers)
	assert.Equal(t, []string{"svc.cluster.local"}, pod.DNSConfig.Searches)
	require.Len(t, pod.DNSConfig.Options, 2)
	assert.Equal(t, "ndots", pod.DNSConfig.Options[0].Name)
	require.NotNil(t, pod.DNSConfig.Options[0].Value)
	assert.Equal(t, "1", *pod.DNSConfig.Options[0].Value)
	assert.Equal(t, "debug", pod.DNSConfig.Options[1].Name)
	assert.Nil(t, pod.DNSConfig.Options[1].Value)

	require.Len(t, pod.InitContainers, 1)
	tini := pod.InitContainers[0]
	assert.Equal(t, "install-tini", tini.Name)
	assert.Equal(t, "krallin/ubuntu-tini:latest", tini.Image)
	assert.Equal(t, []string{"cp", "-v", "/usr/bin/tini", "/tini/tini"}, tini.Command)

	require.Len(t, pod.Containers, 1)
	container := pod.Containers[0]
	assert.Equal(t, "ghcr.io/example/web:1.2", container.Image)
	assert.Equal(t, corev1.PullIfNotPresent, container.ImagePullPolicy)
	assert.True(t, container.Stdin)
	assert.True(t, container.TTY)
	assert.Equal(t, "/srv", container.WorkingDir)
	assert.Equal(t, []string{"/tini/tini", "--"}, container.Command)
	assert.Equal(t, []string{"/entry.sh", "serve", "--port", "8080"}, container.Args)
	require.NotNil(t, container.Lifecycle)
	require.NotNil(t, container.Lifecycle.StopSignal)
	assert.Equal(t, corev1.Signal("SIGUSR1"), *container.Lifecycle.StopSignal)

	assert.Equal(t, "100Mi", container.Resources.Requests.Memory().String())
	assert.Equal(t, "512Mi", container.Resources.Limits.Memory().String())
	assert.Equal(t, "500m", container.Resources.Limits.Cpu().String())

	assert.Equal(t, []corev1.ContainerPort{
		{ContainerPort: 8080, Protocol: corev1.ProtocolTCP},
		{ContainerPort: 5353, Protocol: corev1.ProtocolUDP},
	}, container.Ports)

	volumeNames := make([]string, 0, len(pod.Volumes))
	for _, volume := range pod.Volumes {
		volumeNames = append(volumeNames, volume.Name)
	}
	assert.Equal(t, []string{"dbdata", "usr-share-static", "dshm", "run", "tini"}, volumeNames)

	mountPaths := map[string]string{}
	for _, mount := range container.VolumeMounts {
		mountPaths[mount.Name] = mount.MountPath
	}
	assert.Equal(t, map[string]string{
		"dbdata":           "/var/lib/data",
		"usr-share-static": "/usr/share/static",
		"dshm":             "/dev/shm",
		"run":              "/run",
		"tini":             "/tini",
	}, mountPaths)

	// The ./data/ bind rides the shared claim; the named volume claims
	// itself.
	claims := map[string]string{}
	for _, volume := range pod.Volumes {
		if volume.PersistentVolumeClaim != nil {
			claims[volume.Name] = volume.PersistentVolumeClaim.ClaimName
		}
	}
	assert.Equal(t, map[string]string{
		"dbdata":           "dbdata",
		"usr-share-static": DataClaimName,
	}, claims)

	assert.True(t, requiresDataPVC(svc))
}

// TestScaleConflict tests that scale and deploy.replicas must agree
func TestScaleConflict(t *testing.T) {
	_, err := buildAppDeployment(t, `
services:
  app:
    image: x
    scale: 2
    deploy:
      replicas: 3
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Conflict between top-level scale and deploy.replicas")

	svc := parseService(t, `
services:
  app:
    image: x
    scale: 2
    deploy:
      replicas: 2
`)
	replicas, err := replicaCount(svc)
	require.NoError(t, err)
	require.NotNil(t, replicas)
	assert.Equal(t, int32(2), *replicas)
}

// TestRuntimeClass tests the isolation escalation rules
func TestRuntimeClass(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected string
	}{
		{name: "privileged forces kata", yaml: "    privileged: true\n", expected: "kata"},
		{name: "cap_add forces kata", yaml: "    cap_add:\n      - NET_ADMIN\n", expected: "kata"},
		{name: "author runtime passes through", yaml: "    runtime: gvisor\n", expected: "gvisor"},
		{name: "default is unset", yaml: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := parseService(t, "services:\n  app:\n    image: x\n"+tt.yaml)
			got := runtimeClass(svc)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

// TestSecurityContexts tests user/group mapping and capability handling
func TestSecurityContexts(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    image: x
    privileged: true
    user: "1000:100"
    read_only: true
    group_add:
      - root
      - "27"
    cap_add:
      - NET_ADMIN
    cap_drop:
      - ALL
`)
	ctx, err := buildContainerSecurityContext(svc)
	require.NoError(t, err)
	require.NotNil(t, ctx)
	assert.True(t, *ctx.Privileged)
	assert.Equal(t, int64(1000), *ctx.RunAsUser)
	assert.True(t, *ctx.ReadOnlyRootFilesystem)
	assert.Equal(t, []corev1.Capability{"NET_ADMIN"}, ctx.Capabilities.Add)
	assert.Equal(t, []corev1.Capability{"ALL"}, ctx.Capabilities.Drop)

	podCtx, err := buildPodSecurityContext(svc)
	require.NoError(t, err)
	require.NotNil(t, podCtx)
	assert.Equal(t, []int64{0, 27}, podCtx.SupplementalGroups)

	rootUser := parseService(t, "services:\n  app:\n    user: root\n")
	ctx, err = buildContainerSecurityContext(rootUser)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *ctx.RunAsUser)

	plain := parseService(t, "services:\n  app:\n    image: x\n")
	ctx, err = buildContainerSecurityContext(plain)
	require.NoError(t, err)
	assert.Nil(t, ctx)
}

// TestPullPolicy tests the compose to kubernetes pull policy map
func TestPullPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected corev1.PullPolicy
		wantErr  bool
	}{
		{input: "", expected: ""},
		{input: "always", expected: corev1.PullAlways},
		{input: "never", expected: corev1.PullNever},
		{input: "missing", expected: corev1.PullIfNotPresent},
		{input: "build", expected: corev1.PullIfNotPresent},
		{input: "if_not_present", wantErr: true},
	}

	for _, tt := range tests {
		got, err := convertPullPolicy(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "pull_policy %q", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "pull_policy %q", tt.input)
	}
}

// TestStopGracePeriod tests duration forms including bare seconds
func TestStopGracePeriod(t *testing.T) {
	svc := parseService(t, "services:\n  app:\n    stop_grace_period: \"45\"\n")
	grace, err := terminationGracePeriod(svc)
	require.NoError(t, err)
	require.NotNil(t, grace)
	assert.Equal(t, int64(45), *grace)

	svc = parseService(t, "services:\n  app:\n    stop_grace_period: nonsense\n")
	_, err = terminationGracePeriod(svc)
	assert.Error(t, err)

	svc = parseService(t, "services:\n  app:\n    image: x\n")
	grace, err = terminationGracePeriod(svc)
	require.NoError(t, err)
	assert.Nil(t, grace)
}

// TestCommandWithoutInit tests the plain entrypoint/command passthrough
func TestCommandWithoutInit(t *testing.T) {
	svc := parseService(t, `
services:
  app:
    entrypoint: ["/bin/entry"]
    command: run --fast
`)
	assert.Equal(t, []string{"/bin/entry"}, buildCommand(svc))
	assert.Equal(t, []string{"run", "--fast"}, buildArgs(svc))

	empty := parseService(t, "services:\n  app:\n    init: true\n")
	assert.Equal(t, []string{"/tini/tini", "--"}, buildCommand(empty))
	assert.Nil(t, buildArgs(empty))
}

// TestCPUCountFallback tests cpu_count applying only without cpus
func TestCPUCountFallback(t *testing.T) {
	svc := parseService(t, "services:\n  app:\n    cpu_count: 2\n")
	resources := buildResources(svc)
	assert.Equal(t, "2", resources.Limits.Cpu().String())

	both := parseService(t, "services:\n  app:\n    cpus: 1.5\n    cpu_count: 2\n")
	resources = buildResources(both)
	assert.Equal(t, "1500m", resources.Limits.Cpu().String())
}
