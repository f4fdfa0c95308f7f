/*
Package manager is the orchestration core of the platform: it turns
challenge definitions from a synced git working tree into running,
network-isolated Kubernetes workloads and answers every question the
gRPC facade asks about them.

# Architecture

The manager is deliberately stateless. The synced working tree is the
source of truth for what challenges exist; the cluster is the source of
truth for what instances run. Every operation re-derives its answer from
those two, which lets any number of manager replicas serve the same event
without coordination.

	              gRPC facade (pkg/api)
	                      │
	                      ▼
	┌───────────────────── Manager ─────────────────────┐
	│                                                     │
	│  challenge.Load ──► compose.Translate ──► Deploy    │
	│  (render tree)      (K8s objects)        (apply)    │
	│                                                     │
	│  working tree ◄── repo.Sync        instances ──► K8s│
	│  (challs/, event.yml)              (namespaces)     │
	└─────────────────────────────────────────────────────┘

# Operations

Challenge lifecycle:
  - ListChallenges: every visible challenge with scored points
  - StartChallengeInstance: render, translate, deploy; returns endpoints
  - StopChallengeInstance: delete the actor's instances of a challenge
  - GetChallengeInstanceStatus: deployed/ready plus endpoints

Scoring and content:
  - CheckFlag: validate a submission, optionally scanning all challenges
  - ExportChallenge: sanitized source archive for opted-in challenges
  - RetrieveFile: attachment download from the rendered tree

Repository:
  - SyncChallenges: fetch the branch head, report the new commit
  - GetSyncStatus: current HEAD, if any
  - GetEventConfiguration: parsed event.yml

# Concurrency

Starting an instance checks the per-actor quota by listing namespaces and
then creates one; that read-then-write is raced by concurrent starts, so
the manager serializes starts per actor with a keyed mutex. Listing
challenges renders the whole tree, so results are memoized for a few
seconds per (actor, release filter) pair and flushed on sync.

# Usage

	cfg, err := config.ManagerFromEnv()
	if err != nil {
		...
	}
	mgr := manager.NewManager(cfg, clientset, dynamicClient)

	collector := manager.NewMetricsCollector(mgr)
	collector.Start()
	defer collector.Stop()

	id, endpoints, err := mgr.StartChallengeInstance(ctx, "pwn-intro", actorID, true)
*/
package manager
