package instance

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/metrics"
	"github.com/plfanzen/plfanzen/pkg/types"
)

const (
	// ChallengeIDLabel and ActorIDLabel mark instance namespaces with
	// their owners. Every lookup goes through them.
	ChallengeIDLabel = "challenge_id"
	ActorIDLabel     = "actor_id"

	// MaxInstances caps the number of existing namespaces per
	// (challenge, actor), terminating ones included.
	MaxInstances = 5
)

// NamespaceName returns the namespace holding one instance.
func NamespaceName(challengeID, instanceID string) string {
	return fmt.Sprintf("challenge-%s-instance-%s", challengeID, instanceID)
}

func namespacePrefix(challengeID string) string {
	return fmt.Sprintf("challenge-%s-instance-", challengeID)
}

// Manager drives instance namespaces through the cluster API. It holds no
// state of its own; the cluster is the source of truth.
type Manager struct {
	client kubernetes.Interface
	logger zerolog.Logger
}

// NewManager builds an instance manager on the given clientset.
func NewManager(client kubernetes.Interface) *Manager {
	return &Manager{
		client: client,
		logger: log.WithComponent("instance"),
	}
}

// List returns the instances of one (challenge, actor) pair keyed by
// instance id. An instance is Terminating once its namespace is being
// deleted, Running when it has pods and all of them reached Running or
// Succeeded, and Creating otherwise.
func (m *Manager) List(ctx context.Context, challengeID, actorID string) (map[string]types.InstanceState, error) {
	selector := fmt.Sprintf("%s=%s,%s=%s", ChallengeIDLabel, challengeID, ActorIDLabel, actorID)
	nsList, err := m.client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, types.WrapInternal(err, "Failed to list instances of challenge %s", challengeID)
	}

	instances := make(map[string]types.InstanceState, len(nsList.Items))
	for i := range nsList.Items {
		ns := &nsList.Items[i]
		state, err := m.state(ctx, ns)
		if err != nil {
			return nil, err
		}
		instances[strings.TrimPrefix(ns.Name, namespacePrefix(challengeID))] = state
	}
	return instances, nil
}

func (m *Manager) state(ctx context.Context, ns *corev1.Namespace) (types.InstanceState, error) {
	if ns.DeletionTimestamp != nil || ns.Status.Phase == corev1.NamespaceTerminating {
		return types.InstanceStateTerminating, nil
	}
	running, err := m.allPodsRunning(ctx, ns.Name)
	if err != nil {
		return "", err
	}
	if running {
		return types.InstanceStateRunning, nil
	}
	return types.InstanceStateCreating, nil
}

// allPodsRunning reports whether the namespace has pods and every one of
// them reached Running or Succeeded. A namespace without pods is still
// creating.
func (m *Manager) allPodsRunning(ctx context.Context, namespace string) (bool, error) {
	pods, err := m.client.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return false, types.WrapInternal(err, "Failed to list pods in %s", namespace)
	}
	if len(pods.Items) == 0 {
		return false, nil
	}
	for i := range pods.Items {
		phase := pods.Items[i].Status.Phase
		if phase != corev1.PodRunning && phase != corev1.PodSucceeded {
			return false, nil
		}
	}
	return true, nil
}

// Prepare allocates a fresh instance namespace for the actor. It fails
// when the actor already holds MaxInstances namespaces for this challenge
// or when one of them is still running or creating. The caller is expected
// to single-flight concurrent calls per actor; the duplicate-name retry
// below only covers id collisions.
func (m *Manager) Prepare(ctx context.Context, challengeID, actorID string) (string, error) {
	existing, err := m.List(ctx, challengeID, actorID)
	if err != nil {
		return "", err
	}
	if len(existing) >= MaxInstances {
		return "", types.NewQuotaExceeded("Too many pending instances")
	}
	for _, state := range existing {
		if state == types.InstanceStateRunning || state == types.InstanceStateCreating {
			return "", types.NewAlreadyActive("An instance is already running or creating")
		}
	}

	for {
		instanceID := newInstanceID()
		name := NamespaceName(challengeID, instanceID)
		_, err := m.client.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
		if err == nil {
			continue
		}
		if !apierrors.IsNotFound(err) {
			return "", types.WrapInternal(err, "Failed to check namespace %s", name)
		}

		ns := &corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{
				Name: name,
				Labels: map[string]string{
					ChallengeIDLabel: challengeID,
					ActorIDLabel:     actorID,
				},
			},
		}
		if _, err := m.client.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{}); err != nil {
			return "", types.WrapInternal(err, "Failed to create namespace %s", name)
		}
		metrics.InstancesStarted.Inc()
		m.logger.Info().
			Str("challenge_id", challengeID).
			Str("actor_id", actorID).
			Str("instance_id", instanceID).
			Msg("created instance namespace")
		return instanceID, nil
	}
}

// newInstanceID draws a random 12-hex instance id.
func newInstanceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Delete removes one instance namespace after verifying it belongs to the
// actor.
func (m *Manager) Delete(ctx context.Context, challengeID, actorID, instanceID string) error {
	name := NamespaceName(challengeID, instanceID)
	ns, err := m.client.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return types.NewNotFound("Instance %s of challenge %s not found", instanceID, challengeID)
		}
		return types.WrapInternal(err, "Failed to look up namespace %s", name)
	}
	if ns.Labels[ActorIDLabel] != actorID {
		return types.NewPermissionDenied("Instance does not belong to actor")
	}

	if err := m.client.CoreV1().Namespaces().Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		return types.WrapInternal(err, "Failed to delete namespace %s", name)
	}
	metrics.InstancesStopped.Inc()
	m.logger.Info().
		Str("challenge_id", challengeID).
		Str("actor_id", actorID).
		Str("instance_id", instanceID).
		Msg("deleted instance namespace")
	return nil
}

// CountAll returns the number of instance namespaces across the whole
// cluster. It feeds the active-instances gauge.
func (m *Manager) CountAll(ctx context.Context) (int, error) {
	nsList, err := m.client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{LabelSelector: ChallengeIDLabel})
	if err != nil {
		return 0, types.WrapInternal(err, "Failed to list instance namespaces")
	}
	return len(nsList.Items), nil
}
