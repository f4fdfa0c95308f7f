package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/plfanzen/plfanzen/pkg/challenge"
	"github.com/plfanzen/plfanzen/pkg/compose"
	"github.com/plfanzen/plfanzen/pkg/config"
	"github.com/plfanzen/plfanzen/pkg/event"
	"github.com/plfanzen/plfanzen/pkg/instance"
	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/metrics"
	"github.com/plfanzen/plfanzen/pkg/repo"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// listCacheTTL bounds how stale a memoized challenge list may get.
const listCacheTTL = 10 * time.Second

// Manager implements the domain operations behind the gRPC facade. It keeps
// no challenge state of its own: the synced working tree and the cluster are
// the sources of truth and every operation re-reads them, so any number of
// manager replicas can serve the same event.
type Manager struct {
	cfg       *config.Manager
	client    kubernetes.Interface
	dyn       dynamic.Interface
	instances *instance.Manager
	logger    zerolog.Logger

	// starts serializes instance creation per actor so concurrent start
	// requests cannot race past the pending-instance quota.
	starts actorLocks

	// lists memoizes ListChallenges results for a short TTL.
	lists *listCache

	// now is stubbed in tests that exercise release gating.
	now func() time.Time
}

// NewManager creates a manager that loads challenges from cfg.RepoDir and
// deploys instances through the given clients.
func NewManager(cfg *config.Manager, client kubernetes.Interface, dyn dynamic.Interface) *Manager {
	return &Manager{
		cfg:       cfg,
		client:    client,
		dyn:       dyn,
		instances: instance.NewManager(client),
		logger:    log.WithComponent("manager"),
		lists:     newListCache(listCacheTTL),
		now:       time.Now,
	}
}

// SolveInfo carries the per-challenge solve statistics the scoring script
// sees. Solve accounting lives with the caller, not the manager.
type SolveInfo struct {
	CurrentSolves uint32
	ActorNthSolve uint32
}

// ListRequest parameterizes one challenge enumeration.
type ListRequest struct {
	Actor            string
	Solved           map[string]SolveInfo
	TotalCompetitors uint32

	// RequireRelease hides challenges whose release time has not passed.
	// Admin callers clear it to preview unreleased challenges.
	RequireRelease bool
}

// ChallengeSummary is one row of the challenge list.
type ChallengeSummary struct {
	ID          string
	Name        string
	Description string
	ReleaseTime *uint64
	EndTime     *uint64
	Categories  []string
	Authors     []string
	Difficulty  string
	CanStart    bool
	Points      int64
}

// InstanceStatus describes the live instance of one (challenge, actor)
// pair, if any.
type InstanceStatus struct {
	IsDeployed     bool
	IsReady        bool
	ConnectionInfo []types.ConnectionInfo
}

// ListChallenges renders every challenge for the actor and returns the
// visible ones in id order, with scored points. Results are cached for a
// few seconds per (actor, release filter) pair because rendering the whole
// tree is too expensive for a list the frontend polls.
func (m *Manager) ListChallenges(ctx context.Context, req ListRequest) ([]ChallengeSummary, error) {
	key := listKey{actor: req.Actor, requireRelease: req.RequireRelease}
	if cached, ok := m.lists.get(key); ok {
		return cached, nil
	}

	challenges, err := challenge.LoadAll(m.cfg.RepoDir, req.Actor, false)
	if err != nil {
		return nil, err
	}
	defer challenge.CloseAll(challenges)

	eventCfg, err := event.Load(m.cfg.RepoDir)
	if err != nil {
		return nil, err
	}

	now := uint64(m.now().Unix())
	out := make([]ChallengeSummary, 0, len(challenges))
	for _, id := range sortedIDs(challenges) {
		ch := challenges[id]
		md := ch.Metadata
		if req.RequireRelease && !md.Released(now) {
			continue
		}
		solve := req.Solved[id]
		points, err := eventCfg.CalculatePoints(md.ScriptObject(), solve.CurrentSolves, solve.ActorNthSolve, req.TotalCompetitors)
		if err != nil {
			return nil, types.WrapError(types.KindOf(err), err, "Failed to calculate points for challenge %s", id)
		}
		out = append(out, ChallengeSummary{
			ID:          id,
			Name:        md.Name,
			Description: md.DescriptionMD,
			ReleaseTime: md.ReleaseTime,
			EndTime:     md.EndTime,
			Categories:  md.Categories,
			Authors:     md.Authors,
			Difficulty:  md.Difficulty,
			CanStart:    ch.Startable(),
			Points:      points,
		})
	}

	m.lists.put(key, out)
	return out, nil
}

// StartChallengeInstance renders, translates and deploys a fresh instance
// of the challenge for the actor. It returns the new instance id and the
// endpoints the actor can reach it on.
func (m *Manager) StartChallengeInstance(ctx context.Context, challengeID, actor string, requireRelease bool) (string, []types.ConnectionInfo, error) {
	if err := types.ValidateChallengeID(challengeID); err != nil {
		return "", nil, err
	}

	unlock := m.starts.lock(actor)
	defer unlock()

	ch, err := challenge.Load(m.cfg.RepoDir, challengeID, actor, false)
	if err != nil {
		return "", nil, err
	}
	defer ch.Close()

	if !ch.Startable() {
		return "", nil, types.NewFailedPrecondition("Challenge %s has no services to start", challengeID)
	}
	if requireRelease && !ch.Metadata.Released(uint64(m.now().Unix())) {
		return "", nil, types.NewFailedPrecondition("Challenge %s has not been released yet", challengeID)
	}

	instanceID, err := m.instances.Prepare(ctx, challengeID, actor)
	if err != nil {
		return "", nil, err
	}

	namespace := instance.NamespaceName(challengeID, instanceID)
	objects, err := compose.Translate(ch.Compose, compose.Options{
		Namespace:        namespace,
		ExposedDomain:    m.cfg.ExposedDomain,
		WorkingDir:       ch.Dir,
		SSHPassword:      ch.Metadata.Password([]byte(m.cfg.HMACSecret), actor, instanceID, "ssh"),
		DataPVCSize:      ch.Metadata.DataPVCSize,
		DisableDNSChecks: m.cfg.DisableDNSChecks,
	})
	if err != nil {
		m.abortInstance(ctx, challengeID, actor, instanceID)
		return "", nil, err
	}
	if err := instance.Deploy(ctx, m.client, m.dyn, namespace, objects); err != nil {
		m.abortInstance(ctx, challengeID, actor, instanceID)
		return "", nil, err
	}

	m.logger.Info().
		Str("challenge_id", challengeID).
		Str("actor_id", actor).
		Str("instance_id", instanceID).
		Msg("started challenge instance")
	return instanceID, m.connectionInfo(ch.Compose, namespace), nil
}

// abortInstance removes the namespace of a start attempt that failed after
// prepare, so the actor is not locked out by a half-created instance.
func (m *Manager) abortInstance(ctx context.Context, challengeID, actor, instanceID string) {
	if err := m.instances.Delete(ctx, challengeID, actor, instanceID); err != nil {
		m.logger.Error().
			Str("challenge_id", challengeID).
			Str("actor_id", actor).
			Str("instance_id", instanceID).
			Err(err).
			Msg("failed to clean up instance after failed start")
	}
}

// StopChallengeInstance deletes every live instance of the challenge owned
// by the actor. It reports whether anything was actually stopped; instances
// already terminating do not count.
func (m *Manager) StopChallengeInstance(ctx context.Context, challengeID, actor string) (bool, error) {
	if err := types.ValidateChallengeID(challengeID); err != nil {
		return false, err
	}
	instances, err := m.instances.List(ctx, challengeID, actor)
	if err != nil {
		return false, err
	}

	stopped := false
	for _, id := range sortedIDs(instances) {
		if instances[id] == types.InstanceStateTerminating {
			continue
		}
		if err := m.instances.Delete(ctx, challengeID, actor, id); err != nil {
			return false, err
		}
		stopped = true
	}
	return stopped, nil
}

// GetChallengeInstanceStatus reports whether the actor has a live instance
// of the challenge, whether all its pods are running and how to reach it.
// Terminating instances are treated as already gone.
func (m *Manager) GetChallengeInstanceStatus(ctx context.Context, challengeID, actor string) (*InstanceStatus, error) {
	if err := types.ValidateChallengeID(challengeID); err != nil {
		return nil, err
	}
	instances, err := m.instances.List(ctx, challengeID, actor)
	if err != nil {
		return nil, err
	}

	instanceID := ""
	ready := false
	for _, id := range sortedIDs(instances) {
		if instances[id] == types.InstanceStateTerminating {
			continue
		}
		instanceID = id
		ready = instances[id] == types.InstanceStateRunning
		break
	}
	if instanceID == "" {
		return &InstanceStatus{}, nil
	}

	ch, err := challenge.Load(m.cfg.RepoDir, challengeID, actor, false)
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	return &InstanceStatus{
		IsDeployed:     true,
		IsReady:        ready,
		ConnectionInfo: m.connectionInfo(ch.Compose, instance.NamespaceName(challengeID, instanceID)),
	}, nil
}

// CheckFlag validates a submission against one challenge, or against every
// challenge when none is named. It returns the id of the solved challenge,
// or "" when the flag matches nothing. A validator failure only surfaces
// when the scan had exactly one candidate; in a wider scan the broken
// challenge is logged and skipped so it cannot block all submissions.
func (m *Manager) CheckFlag(ctx context.Context, actor string, challengeID *string, flag string) (string, error) {
	var challenges map[string]*challenge.Challenge
	if challengeID != nil {
		if err := types.ValidateChallengeID(*challengeID); err != nil {
			return "", err
		}
		ch, err := challenge.Load(m.cfg.RepoDir, *challengeID, actor, false)
		if err != nil {
			return "", err
		}
		challenges = map[string]*challenge.Challenge{*challengeID: ch}
	} else {
		var err error
		challenges, err = challenge.LoadAll(m.cfg.RepoDir, actor, false)
		if err != nil {
			return "", err
		}
	}
	defer challenge.CloseAll(challenges)

	solved := ""
	for _, id := range sortedIDs(challenges) {
		ok, err := challenges[id].Metadata.CheckFlag(flag)
		if err != nil {
			if len(challenges) == 1 {
				return "", err
			}
			m.logger.Error().
				Str("challenge_id", id).
				Err(err).
				Msg("flag validator failed during scan")
			continue
		}
		if ok {
			solved = id
			break
		}
	}

	if solved != "" {
		metrics.FlagSubmissions.WithLabelValues("correct").Inc()
	} else {
		metrics.FlagSubmissions.WithLabelValues("incorrect").Inc()
	}
	return solved, nil
}

// ExportChallenge packs the challenge's sanitized source tree into a tar.gz
// for download. Only challenges whose authors opted in via auto_publish_src
// may be exported, and the release gate applies before players can pull
// sources.
func (m *Manager) ExportChallenge(ctx context.Context, challengeID, actor string, requireRelease bool) ([]byte, error) {
	if err := types.ValidateChallengeID(challengeID); err != nil {
		return nil, err
	}
	ch, err := challenge.Load(m.cfg.RepoDir, challengeID, actor, true)
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if requireRelease && !ch.Metadata.Released(uint64(m.now().Unix())) {
		return nil, types.NewPermissionDenied("Challenge %s has not been released yet", challengeID)
	}
	if !ch.Metadata.AutoPublishSrc {
		return nil, types.NewPermissionDenied("Challenge %s does not publish its source", challengeID)
	}
	return ch.Export, nil
}

// RetrieveFile reads one attachment from the challenge's rendered tree. The
// filename must be declared in the metadata attachment list; anything else
// is refused without touching the filesystem.
func (m *Manager) RetrieveFile(ctx context.Context, challengeID, actor, filename string, requireRelease bool) ([]byte, error) {
	if err := types.ValidateChallengeID(challengeID); err != nil {
		return nil, err
	}
	ch, err := challenge.Load(m.cfg.RepoDir, challengeID, actor, false)
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if requireRelease && !ch.Metadata.Released(uint64(m.now().Unix())) {
		return nil, types.NewPermissionDenied("Challenge %s has not been released yet", challengeID)
	}
	if !ch.Metadata.HasAttachment(filename) {
		return nil, types.NewBadArgument("File %s is not an attachment of challenge %s", filename, challengeID)
	}

	data, err := os.ReadFile(filepath.Join(ch.Dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, types.NewNotFound("File %s of challenge %s not found", filename, challengeID)
		}
		return nil, types.WrapInternal(err, "Failed to read file %s of challenge %s", filename, challengeID)
	}
	return data, nil
}

// SyncChallenges replaces the working tree with the current branch head and
// reports the new HEAD commit. The challenge list cache is flushed so the
// next list reflects the synced tree.
func (m *Manager) SyncChallenges(ctx context.Context) (*types.CommitInfo, error) {
	if err := repo.Sync(m.cfg.RepoDir, m.cfg.GitURL, m.cfg.GitBranch); err != nil {
		metrics.RepoSyncs.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.RepoSyncs.WithLabelValues("success").Inc()
	m.lists.invalidate()

	info, ok := repo.HeadInfo(m.cfg.RepoDir)
	if !ok {
		return nil, types.NewInternal("Failed to get head commit info after syncing")
	}
	m.logger.Info().Str("commit", info.Hash).Msg("synced challenge repository")
	return info, nil
}

// GetSyncStatus reports the HEAD commit of the working tree, or false when
// no repository has been synced yet.
func (m *Manager) GetSyncStatus(ctx context.Context) (*types.CommitInfo, bool) {
	return repo.HeadInfo(m.cfg.RepoDir)
}

// GetEventConfiguration loads event.yml from the working tree.
func (m *Manager) GetEventConfiguration(ctx context.Context) (*event.Config, error) {
	return event.Load(m.cfg.RepoDir)
}

// connectionInfo lists the reachable endpoints of one instance, ordered by
// service id. SSH-gated ports are reached through the gateway's shared
// public name; HTTP and plain TCP ports terminate TLS at the ingress edge
// on 443 under per-port hostnames.
func (m *Manager) connectionInfo(doc *compose.Document, namespace string) []types.ConnectionInfo {
	var out []types.ConnectionInfo

	appendPorts := func(id string, ports []compose.Port) {
		for i := range ports {
			port := &ports[i]
			host := fmt.Sprintf("%s-%d-%s.%s", id, port.PublishedPort(), namespace, m.cfg.ExposedDomain)
			switch {
			case port.IsSSH():
				out = append(out, types.ConnectionInfo{
					Protocol: types.ProtocolSSH,
					Host:     "ssh." + m.cfg.ExposedDomain,
					Port:     2222,
				})
			case port.IsHTTP():
				out = append(out, types.ConnectionInfo{Protocol: types.ProtocolHTTPS, Host: host, Port: 443})
			case port.IsUDP():
				out = append(out, types.ConnectionInfo{Protocol: types.ProtocolUDP, Host: host, Port: 0})
			default:
				out = append(out, types.ConnectionInfo{Protocol: types.ProtocolTCPTLS, Host: host, Port: 443})
			}
		}
	}

	for _, id := range sortedIDs(doc.Services) {
		if svc := doc.Services[id]; svc != nil {
			appendPorts(id, svc.Ports)
		}
	}
	for _, id := range sortedIDs(doc.VMs) {
		if vm := doc.VMs[id]; vm != nil {
			appendPorts(id, vm.Ports)
		}
	}
	return out
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
