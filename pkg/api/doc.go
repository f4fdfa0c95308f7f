/*
Package api implements the Plfanzen gRPC facade and Protocol Buffer
conversions.

The api package is how the public web API talks to the manager. It
implements the ChallengesService and RepositoryService gRPC services,
translates between wire messages and the manager's domain types, and maps
domain error kinds onto gRPC status codes. There is no authentication
here: the public API terminates player sessions and passes the resolved
actor string with every request.

# Architecture

	┌──────────────── PUBLIC API (out of scope) ────────────────┐
	│  GraphQL, sessions, captcha, solve persistence             │
	└─────────────────────┬─────────────────────────────────────┘
	                      │ gRPC (LISTEN_ADDR, default [::]:50051)
	                      ▼
	┌───────────────────── pkg/api ─────────────────────────────┐
	│  ChallengesService / RepositoryService                     │
	│  - proto <-> domain conversion                             │
	│  - error kind -> status code mapping                       │
	│  - metrics interceptor (count + duration per method)       │
	└─────────────────────┬─────────────────────────────────────┘
	                      ▼
	               pkg/manager (orchestration core)

# gRPC Methods

ChallengesService:
  - ListChallenges: visible challenges with scored points
  - StartChallengeInstance: deploy an instance, return endpoints
  - StopChallengeInstance: delete the actor's instances
  - GetChallengeInstanceStatus: deployed/ready plus endpoints
  - CheckFlag: validate a submission against one or all challenges
  - ExportChallenge: sanitized source archive
  - RetrieveFile: attachment download

RepositoryService:
  - SyncChallenges: fetch the branch head, reload challenges
  - GetSyncStatus: current HEAD commit, if any
  - GetEventConfiguration: parsed event.yml

# Error Mapping

Domain error kinds (pkg/types) map onto status codes:

	KindBadArgument                          -> InvalidArgument
	KindNotFound                             -> NotFound
	KindPermissionDenied                     -> PermissionDenied
	KindFailedPrecondition/Quota/Active      -> FailedPrecondition
	everything else                          -> Internal

Error messages are written to be caller-safe at their origin, so the
mapping forwards them verbatim.

# Health Endpoints

NewHealthServer serves the HTTP side endpoints on a separate listener:

  - /health: liveness (process up)
  - /ready: readiness (manager wired, repository synced at least once)
  - /metrics: Prometheus exposition

# Usage

	mgr := manager.NewManager(cfg, clientset, dynamicClient)

	apiServer := api.NewServer(mgr)
	go apiServer.Start(cfg.ListenAddr)

	healthServer := api.NewHealthServer(mgr)
	go healthServer.Start(":8081")

# Related Packages

  - pkg/manager: the operations behind every RPC
  - pkg/types: error kinds and shared wire-adjacent types
  - api/proto: generated Protocol Buffer messages and service stubs
*/
package api
