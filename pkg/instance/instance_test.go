package instance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/plfanzen/plfanzen/pkg/types"
)

func nsFixture(challengeID, actorID, instanceID string) *corev1.Namespace {
	return &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name: NamespaceName(challengeID, instanceID),
			Labels: map[string]string{
				ChallengeIDLabel: challengeID,
				ActorIDLabel:     actorID,
			},
		},
	}
}

func podFixture(namespace, name string, phase corev1.PodPhase) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name},
		Status:     corev1.PodStatus{Phase: phase},
	}
}

// TestList tests state computation across namespace and pod conditions.
func TestList(t *testing.T) {
	creating := nsFixture("rot13", "user-a", "aaaaaaaaaaaa")
	terminating := nsFixture("rot13", "user-a", "bbbbbbbbbbbb")
	terminating.DeletionTimestamp = &metav1.Time{Time: time.Now()}
	running := nsFixture("rot13", "user-a", "cccccccccccc")
	notReady := nsFixture("rot13", "user-a", "dddddddddddd")
	otherActor := nsFixture("rot13", "user-b", "eeeeeeeeeeee")
	otherChallenge := nsFixture("caesar", "user-a", "ffffffffffff")

	client := fake.NewSimpleClientset(
		creating, terminating, running, notReady, otherActor, otherChallenge,
		podFixture(running.Name, "app", corev1.PodRunning),
		podFixture(running.Name, "init-job", corev1.PodSucceeded),
		podFixture(notReady.Name, "app", corev1.PodRunning),
		podFixture(notReady.Name, "db", corev1.PodPending),
	)
	m := NewManager(client)

	instances, err := m.List(context.Background(), "rot13", "user-a")
	require.NoError(t, err)

	assert.Equal(t, map[string]types.InstanceState{
		"aaaaaaaaaaaa": types.InstanceStateCreating,
		"bbbbbbbbbbbb": types.InstanceStateTerminating,
		"cccccccccccc": types.InstanceStateRunning,
		"dddddddddddd": types.InstanceStateCreating,
	}, instances)
}

// TestListTerminatingPhase tests that a namespace in the Terminating phase
// counts as terminating even without a deletion timestamp.
func TestListTerminatingPhase(t *testing.T) {
	ns := nsFixture("rot13", "user-a", "aaaaaaaaaaaa")
	ns.Status.Phase = corev1.NamespaceTerminating

	m := NewManager(fake.NewSimpleClientset(ns))
	instances, err := m.List(context.Background(), "rot13", "user-a")
	require.NoError(t, err)

	assert.Equal(t, types.InstanceStateTerminating, instances["aaaaaaaaaaaa"])
}

// TestListEmpty tests listing with no matching namespaces.
func TestListEmpty(t *testing.T) {
	m := NewManager(fake.NewSimpleClientset())

	instances, err := m.List(context.Background(), "rot13", "user-a")
	require.NoError(t, err)
	assert.Empty(t, instances)
}

// TestPrepare tests namespace allocation for a fresh actor.
func TestPrepare(t *testing.T) {
	client := fake.NewSimpleClientset()
	m := NewManager(client)

	instanceID, err := m.Prepare(context.Background(), "rot13", "user-a")
	require.NoError(t, err)
	assert.Len(t, instanceID, 12)
	for _, r := range instanceID {
		assert.Contains(t, "0123456789abcdef", string(r))
	}

	ns, err := client.CoreV1().Namespaces().Get(context.Background(), NamespaceName("rot13", instanceID), metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "rot13", ns.Labels[ChallengeIDLabel])
	assert.Equal(t, "user-a", ns.Labels[ActorIDLabel])
}

// TestPrepareQuota tests that five existing namespaces exhaust the quota
// even when all of them are already terminating.
func TestPrepareQuota(t *testing.T) {
	client := fake.NewSimpleClientset()
	m := NewManager(client)
	ctx := context.Background()

	for i := 0; i < MaxInstances; i++ {
		instanceID, err := m.Prepare(ctx, "chall", "user-a")
		require.NoError(t, err)

		// Simulate a stop that has not completed yet.
		ns, err := client.CoreV1().Namespaces().Get(ctx, NamespaceName("chall", instanceID), metav1.GetOptions{})
		require.NoError(t, err)
		ns.DeletionTimestamp = &metav1.Time{Time: time.Now()}
		_, err = client.CoreV1().Namespaces().Update(ctx, ns, metav1.UpdateOptions{})
		require.NoError(t, err)
	}

	_, err := m.Prepare(ctx, "chall", "user-a")
	require.Error(t, err)
	assert.Equal(t, types.KindQuotaExceeded, types.KindOf(err))
}

// TestPrepareAlreadyActive tests the one-live-instance rule.
func TestPrepareAlreadyActive(t *testing.T) {
	creating := nsFixture("rot13", "user-a", "aaaaaaaaaaaa")
	running := nsFixture("rot13", "user-a", "bbbbbbbbbbbb")

	tests := []struct {
		name    string
		objects []runtime.Object
	}{
		{name: "creating instance", objects: []runtime.Object{creating}},
		{name: "running instance", objects: []runtime.Object{
			running, podFixture(running.Name, "app", corev1.PodRunning),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(fake.NewSimpleClientset(tt.objects...))

			_, err := m.Prepare(context.Background(), "rot13", "user-a")
			require.Error(t, err)
			assert.Equal(t, types.KindAlreadyActive, types.KindOf(err))
		})
	}
}

// TestPrepareIgnoresTerminating tests that a terminating instance does not
// block a new one.
func TestPrepareIgnoresTerminating(t *testing.T) {
	ns := nsFixture("rot13", "user-a", "aaaaaaaaaaaa")
	ns.DeletionTimestamp = &metav1.Time{Time: time.Now()}
	m := NewManager(fake.NewSimpleClientset(ns))

	_, err := m.Prepare(context.Background(), "rot13", "user-a")
	assert.NoError(t, err)
}

// TestDelete tests ownership-checked deletion.
func TestDelete(t *testing.T) {
	client := fake.NewSimpleClientset(nsFixture("rot13", "user-a", "aaaaaaaaaaaa"))
	m := NewManager(client)
	ctx := context.Background()

	require.NoError(t, m.Delete(ctx, "rot13", "user-a", "aaaaaaaaaaaa"))

	_, err := client.CoreV1().Namespaces().Get(ctx, NamespaceName("rot13", "aaaaaaaaaaaa"), metav1.GetOptions{})
	assert.Error(t, err)
}

// TestDeleteWrongActor tests that instances of other actors are protected.
func TestDeleteWrongActor(t *testing.T) {
	client := fake.NewSimpleClientset(nsFixture("rot13", "user-a", "aaaaaaaaaaaa"))
	m := NewManager(client)
	ctx := context.Background()

	err := m.Delete(ctx, "rot13", "user-b", "aaaaaaaaaaaa")
	require.Error(t, err)
	assert.Equal(t, types.KindPermissionDenied, types.KindOf(err))
	assert.Contains(t, err.Error(), "Instance does not belong to actor")

	_, err = client.CoreV1().Namespaces().Get(ctx, NamespaceName("rot13", "aaaaaaaaaaaa"), metav1.GetOptions{})
	assert.NoError(t, err)
}

// TestDeleteMissing tests deleting an instance that does not exist.
func TestDeleteMissing(t *testing.T) {
	m := NewManager(fake.NewSimpleClientset())

	err := m.Delete(context.Background(), "rot13", "user-a", "aaaaaaaaaaaa")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
}

// TestCountAll tests the cluster-wide instance count.
func TestCountAll(t *testing.T) {
	system := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "kube-system"}}
	client := fake.NewSimpleClientset(
		nsFixture("rot13", "user-a", "aaaaaaaaaaaa"),
		nsFixture("caesar", "user-b", "bbbbbbbbbbbb"),
		system,
	)
	m := NewManager(client)

	count, err := m.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestNewInstanceID tests the id shape and that draws differ.
func TestNewInstanceID(t *testing.T) {
	a, b := newInstanceID(), newInstanceID()

	assert.Len(t, a, 12)
	for _, r := range a {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
	assert.NotEqual(t, a, b)
}
