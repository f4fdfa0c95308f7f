package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/plfanzen/plfanzen/pkg/challenge"
	"github.com/plfanzen/plfanzen/pkg/config"
	"github.com/plfanzen/plfanzen/pkg/instance"
	"github.com/plfanzen/plfanzen/pkg/kube"
	"github.com/plfanzen/plfanzen/pkg/types"
)

const webCompose = `
services:
  web:
    image: nginx
    ports:
      - target: 8080
        published: 8080
        app_protocol: http
x-ctf-metadata:
  name: Rot13
  authors: [alice]
  description_md: Spin the wheel.
  difficulty: easy
  flag: flag{ok}
  release_time: 100
`

const minimalEvent = `
event_name: Plfanzen Test CTF
start_time: 2026-09-01T10:00:00Z
end_time: 2026-09-03T18:00:00Z
`

// newTestManager builds a manager over a temp working tree, fake cluster
// clients and a clock frozen at unix 1000.
func newTestManager(t *testing.T, objects ...runtime.Object) (*Manager, *fake.Clientset, string) {
	t.Helper()
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, "event.yml"), []byte(minimalEvent), 0o644))

	client := fake.NewSimpleClientset(objects...)
	dyn := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), map[schema.GroupVersionResource]string{
		kube.IngressRouteGVR:        "IngressRouteList",
		kube.IngressRouteTCPGVR:     "IngressRouteTCPList",
		kube.CiliumNetworkPolicyGVR: "CiliumNetworkPolicyList",
		kube.VirtualMachineGVR:      "VirtualMachineList",
		kube.SSHGatewayGVR:          "SSHGatewayList",
	})

	cfg := &config.Manager{
		RepoDir:       repo,
		ExposedDomain: "c.example",
		HMACSecret:    "test-secret",
	}
	m := NewManager(cfg, client, dyn)
	m.now = func() time.Time { return time.Unix(1000, 0) }
	return m, client, repo
}

func writeChallenge(t *testing.T, repo, id string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(repo, challenge.ChallengesDir, id)
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// TestListChallengesDefaultPoints tests that without a points_fn every
// challenge scores the default 100 points.
func TestListChallengesDefaultPoints(t *testing.T) {
	m, _, repo := newTestManager(t)
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": webCompose})

	out, err := m.ListChallenges(context.Background(), ListRequest{
		Actor:            "user-alice",
		TotalCompetitors: 10,
		RequireRelease:   true,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "rot13", out[0].ID)
	assert.Equal(t, "Rot13", out[0].Name)
	assert.Equal(t, int64(100), out[0].Points)
	assert.True(t, out[0].CanStart)
}

// TestListChallengesFiltersUnreleased tests release gating and that admin
// listings without the gate still see everything.
func TestListChallengesFiltersUnreleased(t *testing.T) {
	m, _, repo := newTestManager(t)
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": webCompose})
	unreleased := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Later
  description_md: Not yet.
  difficulty: easy
  flag: flag{later}
  release_time: 99999
`
	writeChallenge(t, repo, "later", map[string]string{"docker-compose.yml": unreleased})

	gated, err := m.ListChallenges(context.Background(), ListRequest{Actor: "user-alice", RequireRelease: true})
	require.NoError(t, err)
	require.Len(t, gated, 1)
	assert.Equal(t, "rot13", gated[0].ID)

	all, err := m.ListChallenges(context.Background(), ListRequest{Actor: "user-alice"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// TestListChallengesCached tests that the memoized list survives changes
// to the working tree until invalidation.
func TestListChallengesCached(t *testing.T) {
	m, _, repo := newTestManager(t)
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": webCompose})

	req := ListRequest{Actor: "user-alice", RequireRelease: true}
	first, err := m.ListChallenges(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, os.RemoveAll(filepath.Join(repo, challenge.ChallengesDir)))

	cached, err := m.ListChallenges(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, cached, 1, "stale list still served from cache")

	m.lists.invalidate()
	fresh, err := m.ListChallenges(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, fresh)
}

// TestCheckFlagScan tests the all-challenge scan: the matching challenge
// wins and a broken validator earlier in the scan is skipped.
func TestCheckFlagScan(t *testing.T) {
	m, _, repo := newTestManager(t)
	broken := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Broken
  description_md: d
  difficulty: easy
  flag_validation_fn: "throw new Error('boom');"
`
	other := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Other
  description_md: d
  difficulty: easy
  flag: flag{no}
`
	writeChallenge(t, repo, "aaa-broken", map[string]string{"docker-compose.yml": broken})
	writeChallenge(t, repo, "mmm-other", map[string]string{"docker-compose.yml": other})
	writeChallenge(t, repo, "zzz-match", map[string]string{"docker-compose.yml": webCompose})

	solved, err := m.CheckFlag(context.Background(), "user-alice", nil, "flag{ok}")
	require.NoError(t, err)
	assert.Equal(t, "zzz-match", solved)

	solved, err = m.CheckFlag(context.Background(), "user-alice", nil, "flag{nope}")
	require.NoError(t, err)
	assert.Empty(t, solved)
}

// TestCheckFlagSingleCandidateError tests that a validator failure
// surfaces when the submission targeted exactly one challenge.
func TestCheckFlagSingleCandidateError(t *testing.T) {
	m, _, repo := newTestManager(t)
	broken := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Broken
  description_md: d
  difficulty: easy
  flag_validation_fn: "throw new Error('boom');"
`
	writeChallenge(t, repo, "broken", map[string]string{"docker-compose.yml": broken})

	id := "broken"
	_, err := m.CheckFlag(context.Background(), "user-alice", &id, "flag{ok}")
	require.Error(t, err)
	assert.Equal(t, types.KindScriptError, types.KindOf(err))
}

// TestCheckFlagScriptValidator tests a script validator end to end against
// a named challenge.
func TestCheckFlagScriptValidator(t *testing.T) {
	m, _, repo := newTestManager(t)
	scripted := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Scripted
  description_md: d
  difficulty: easy
  flag_validation_fn: |
    setFlagValidationFunction(function (s) { return s === "flag{ok}"; });
`
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": scripted})

	id := "rot13"
	solved, err := m.CheckFlag(context.Background(), "user-a", &id, "flag{ok}")
	require.NoError(t, err)
	assert.Equal(t, "rot13", solved)

	solved, err = m.CheckFlag(context.Background(), "user-a", &id, "nope")
	require.NoError(t, err)
	assert.Empty(t, solved)
}

// TestExportChallenge tests the publication gate and the happy path.
func TestExportChallenge(t *testing.T) {
	m, _, repo := newTestManager(t)
	published := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Rot13
  description_md: d
  difficulty: easy
  flag: flag{ok}
  release_time: 100
  auto_publish_src: true
`
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": published})
	writeChallenge(t, repo, "private", map[string]string{"docker-compose.yml": webCompose})

	archive, err := m.ExportChallenge(context.Background(), "rot13", "user-a", true)
	require.NoError(t, err)
	assert.NotEmpty(t, archive)

	_, err = m.ExportChallenge(context.Background(), "private", "user-a", true)
	require.Error(t, err)
	assert.Equal(t, types.KindPermissionDenied, types.KindOf(err))
}

// TestRetrieveFile tests the attachment allowlist.
func TestRetrieveFile(t *testing.T) {
	m, _, repo := newTestManager(t)
	withAttachment := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Rot13
  description_md: d
  difficulty: easy
  flag: flag{ok}
  release_time: 100
  attachments: [handout.txt]
`
	writeChallenge(t, repo, "rot13", map[string]string{
		"docker-compose.yml": withAttachment,
		"handout.txt":        "read me",
		"flag.txt":           "flag{ok}",
	})

	content, err := m.RetrieveFile(context.Background(), "rot13", "user-a", "handout.txt", true)
	require.NoError(t, err)
	assert.Equal(t, "read me", string(content))

	_, err = m.RetrieveFile(context.Background(), "rot13", "user-a", "flag.txt", true)
	require.Error(t, err)
	assert.Equal(t, types.KindBadArgument, types.KindOf(err))
}

// TestStartChallengeInstance tests the happy path: a labelled namespace
// appears, objects are applied into it and the endpoints point at it.
func TestStartChallengeInstance(t *testing.T) {
	m, client, repo := newTestManager(t)
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": webCompose})

	ctx := context.Background()
	instanceID, conns, err := m.StartChallengeInstance(ctx, "rot13", "user-alice", true)
	require.NoError(t, err)
	require.Len(t, instanceID, 12)

	namespace := instance.NamespaceName("rot13", instanceID)
	ns, err := client.CoreV1().Namespaces().Get(ctx, namespace, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "rot13", ns.Labels[instance.ChallengeIDLabel])
	assert.Equal(t, "user-alice", ns.Labels[instance.ActorIDLabel])

	deployments, err := client.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, deployments.Items, 1)
	assert.Equal(t, "web", deployments.Items[0].Name)

	require.Len(t, conns, 1)
	assert.Equal(t, types.ProtocolHTTPS, conns[0].Protocol)
	assert.Equal(t, int32(443), conns[0].Port)
	assert.Equal(t, "web-8080-"+namespace+".c.example", conns[0].Host)
}

// TestStartChallengeInstanceRejections tests id validation, the
// nothing-to-start case and release gating.
func TestStartChallengeInstanceRejections(t *testing.T) {
	m, _, repo := newTestManager(t)
	empty := `
x-ctf-metadata:
  name: Empty
  description_md: d
  difficulty: easy
  flag: flag{ok}
  release_time: 100
`
	unreleased := `
services:
  web:
    image: nginx
x-ctf-metadata:
  name: Later
  description_md: d
  difficulty: easy
  flag: flag{ok}
  release_time: 99999
`
	writeChallenge(t, repo, "empty", map[string]string{"docker-compose.yml": empty})
	writeChallenge(t, repo, "later", map[string]string{"docker-compose.yml": unreleased})

	ctx := context.Background()

	_, _, err := m.StartChallengeInstance(ctx, "Bad/Id", "user-a", true)
	require.Error(t, err)
	assert.Equal(t, types.KindBadArgument, types.KindOf(err))

	_, _, err = m.StartChallengeInstance(ctx, "empty", "user-a", true)
	require.Error(t, err)
	assert.Equal(t, types.KindFailedPrecondition, types.KindOf(err))

	_, _, err = m.StartChallengeInstance(ctx, "later", "user-a", true)
	require.Error(t, err)
	assert.Equal(t, types.KindFailedPrecondition, types.KindOf(err))
}

// TestStartChallengeInstanceAbortsOnTranslateFailure tests that a
// translation failure after prepare does not leave the namespace behind.
func TestStartChallengeInstanceAbortsOnTranslateFailure(t *testing.T) {
	m, client, repo := newTestManager(t)
	hostPath := `
services:
  web:
    image: nginx
    volumes:
      - ./secrets:/s
x-ctf-metadata:
  name: Rot13
  description_md: d
  difficulty: easy
  flag: flag{ok}
  release_time: 100
`
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": hostPath})

	ctx := context.Background()
	_, _, err := m.StartChallengeInstance(ctx, "rot13", "user-a", true)
	require.Error(t, err)

	namespaces, err := client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, namespaces.Items, "failed start must clean up its namespace")
}

// TestStopChallengeInstance tests that every live instance is deleted and
// already-terminating ones do not count as stopped.
func TestStopChallengeInstance(t *testing.T) {
	live := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{
		Name: instance.NamespaceName("rot13", "aaaaaaaaaaaa"),
		Labels: map[string]string{
			instance.ChallengeIDLabel: "rot13",
			instance.ActorIDLabel:     "user-a",
		},
	}}

	m, client, _ := newTestManager(t, live)

	stopped, err := m.StopChallengeInstance(context.Background(), "rot13", "user-a")
	require.NoError(t, err)
	assert.True(t, stopped)

	namespaces, err := client.CoreV1().Namespaces().List(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, namespaces.Items)

	stopped, err = m.StopChallengeInstance(context.Background(), "rot13", "user-a")
	require.NoError(t, err)
	assert.False(t, stopped, "nothing left to stop")
}

// TestGetChallengeInstanceStatus tests the not-deployed and deployed-ready
// answers.
func TestGetChallengeInstanceStatus(t *testing.T) {
	namespace := instance.NamespaceName("rot13", "aaaaaaaaaaaa")
	ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{
		Name: namespace,
		Labels: map[string]string{
			instance.ChallengeIDLabel: "rot13",
			instance.ActorIDLabel:     "user-a",
		},
	}}
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: "web"},
		Status:     corev1.PodStatus{Phase: corev1.PodRunning},
	}

	m, _, repo := newTestManager(t, ns, pod)
	writeChallenge(t, repo, "rot13", map[string]string{"docker-compose.yml": webCompose})

	st, err := m.GetChallengeInstanceStatus(context.Background(), "rot13", "user-a")
	require.NoError(t, err)
	assert.True(t, st.IsDeployed)
	assert.True(t, st.IsReady)
	require.Len(t, st.ConnectionInfo, 1)
	assert.Equal(t, "web-8080-"+namespace+".c.example", st.ConnectionInfo[0].Host)

	st, err = m.GetChallengeInstanceStatus(context.Background(), "rot13", "user-b")
	require.NoError(t, err)
	assert.False(t, st.IsDeployed)
	assert.Empty(t, st.ConnectionInfo)
}
