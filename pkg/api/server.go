package api

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/plfanzen/plfanzen/api/proto"
	"github.com/plfanzen/plfanzen/pkg/event"
	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/manager"
	"github.com/plfanzen/plfanzen/pkg/types"
)

// Version is stamped by the build; the health endpoint reports it.
var Version = "dev"

// Server implements the ChallengesService and RepositoryService gRPC
// services on top of one manager. The public API server is the only
// intended client: it terminates player authentication and passes the
// resolved actor string with every request, so no auth happens here.
type Server struct {
	proto.UnimplementedChallengesServiceServer
	proto.UnimplementedRepositoryServiceServer
	manager *manager.Manager
	grpc    *grpc.Server
	logger  zerolog.Logger
}

// NewServer creates a new API server around mgr.
func NewServer(mgr *manager.Manager) *Server {
	s := &Server{
		manager: mgr,
		grpc:    grpc.NewServer(grpc.UnaryInterceptor(MetricsInterceptor())),
		logger:  log.WithComponent("api"),
	}
	proto.RegisterChallengesServiceServer(s.grpc, s)
	proto.RegisterRepositoryServiceServer(s.grpc, s)
	return s
}

// Start listens on addr and serves until Stop is called.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("manager listening")
	return s.Serve(lis)
}

// Serve serves gRPC on lis. Exposed separately so tests can drive the
// server over an in-memory listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}

// ListChallenges returns a list of all available challenges.
func (s *Server) ListChallenges(ctx context.Context, req *proto.ListChallengesRequest) (*proto.ListChallengesResponse, error) {
	solved := make(map[string]manager.SolveInfo, len(req.GetSolvedChallenges()))
	for id, info := range req.GetSolvedChallenges() {
		solved[id] = manager.SolveInfo{
			CurrentSolves: info.GetCurrentSolves(),
			ActorNthSolve: info.GetActorNthSolve(),
		}
	}

	challenges, err := s.manager.ListChallenges(ctx, manager.ListRequest{
		Actor:            req.GetActor(),
		Solved:           solved,
		TotalCompetitors: req.GetTotalCompetitors(),
		RequireRelease:   req.GetRequireRelease(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*proto.Challenge, len(challenges))
	for i, ch := range challenges {
		out[i] = challengeToProto(ch)
	}
	return &proto.ListChallengesResponse{Challenges: out}, nil
}

// StartChallengeInstance starts a new instance of the specified challenge
// for the given actor.
func (s *Server) StartChallengeInstance(ctx context.Context, req *proto.StartChallengeInstanceRequest) (*proto.StartChallengeInstanceResponse, error) {
	instanceID, conns, err := s.manager.StartChallengeInstance(ctx, req.GetChallengeId(), req.GetActor(), req.GetRequireRelease())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.StartChallengeInstanceResponse{
		InstanceId:     instanceID,
		ConnectionInfo: connectionInfoToProto(conns),
	}, nil
}

// StopChallengeInstance stops the specified challenge instance for the
// given actor.
func (s *Server) StopChallengeInstance(ctx context.Context, req *proto.StopChallengeInstanceRequest) (*proto.StopChallengeInstanceResponse, error) {
	stopped, err := s.manager.StopChallengeInstance(ctx, req.GetChallengeId(), req.GetActor())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.StopChallengeInstanceResponse{Success: stopped}, nil
}

// GetChallengeInstanceStatus retrieves the status of a challenge instance
// for the given actor.
func (s *Server) GetChallengeInstanceStatus(ctx context.Context, req *proto.GetChallengeInstanceStatusRequest) (*proto.GetChallengeInstanceStatusResponse, error) {
	st, err := s.manager.GetChallengeInstanceStatus(ctx, req.GetChallengeId(), req.GetActor())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.GetChallengeInstanceStatusResponse{
		IsDeployed:     st.IsDeployed,
		IsReady:        st.IsReady,
		ConnectionInfo: connectionInfoToProto(st.ConnectionInfo),
	}, nil
}

// CheckFlag verifies a submitted flag. With a challenge id it checks that
// one challenge; without, it scans all of them and reports the first match.
func (s *Server) CheckFlag(ctx context.Context, req *proto.CheckFlagRequest) (*proto.CheckFlagResponse, error) {
	var challengeID *string
	if id := req.GetChallengeId(); id != "" {
		challengeID = &id
	}

	solved, err := s.manager.CheckFlag(ctx, req.GetActor(), challengeID, req.GetFlag())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.CheckFlagResponse{SolvedChallengeId: solved}, nil
}

// ExportChallenge packs the sanitized source tree of a challenge whose
// author opted into publication.
func (s *Server) ExportChallenge(ctx context.Context, req *proto.ExportChallengeRequest) (*proto.ExportChallengeResponse, error) {
	archive, err := s.manager.ExportChallenge(ctx, req.GetChallengeId(), req.GetActor(), req.GetRequireRelease())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.ExportChallengeResponse{ChallengeArchive: archive}, nil
}

// RetrieveFile reads one attachment of a challenge.
func (s *Server) RetrieveFile(ctx context.Context, req *proto.RetrieveFileRequest) (*proto.RetrieveFileResponse, error) {
	content, err := s.manager.RetrieveFile(ctx, req.GetChallengeId(), req.GetActor(), req.GetFilename(), req.GetRequireRelease())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.RetrieveFileResponse{FileContent: content}, nil
}

// SyncChallenges fetches the configured git repository and reloads every
// challenge from the new head.
func (s *Server) SyncChallenges(ctx context.Context, req *proto.SyncChallengesRequest) (*proto.SyncChallengesResponse, error) {
	head, err := s.manager.SyncChallenges(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &proto.SyncChallengesResponse{
		Success:    true,
		SyncStatus: commitToProto(head),
	}, nil
}

// GetSyncStatus reports the currently checked-out head without syncing.
func (s *Server) GetSyncStatus(ctx context.Context, req *proto.GetSyncStatusRequest) (*proto.GetSyncStatusResponse, error) {
	head, ok := s.manager.GetSyncStatus(ctx)
	if !ok {
		return &proto.GetSyncStatusResponse{}, nil
	}

	return &proto.GetSyncStatusResponse{SyncStatus: commitToProto(head)}, nil
}

// GetEventConfiguration returns the event-level settings from the synced
// repository.
func (s *Server) GetEventConfiguration(ctx context.Context, req *proto.GetEventConfigurationRequest) (*proto.EventConfiguration, error) {
	cfg, err := s.manager.GetEventConfiguration(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return eventToProto(cfg), nil
}

// GetBuildStatus is intentionally left to the embedded
// UnimplementedRepositoryServiceServer: image builds run in CI today, so the
// method exists on the wire but answers Unimplemented.

// statusFromError maps an error kind onto a gRPC status. The error text is
// already caller-safe; kinds decide the code.
func statusFromError(err error) error {
	var code codes.Code
	switch types.KindOf(err) {
	case types.KindBadArgument:
		code = codes.InvalidArgument
	case types.KindNotFound:
		code = codes.NotFound
	case types.KindPermissionDenied:
		code = codes.PermissionDenied
	case types.KindFailedPrecondition, types.KindQuotaExceeded, types.KindAlreadyActive:
		code = codes.FailedPrecondition
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

// Helper functions to convert between internal types and protobuf

func challengeToProto(ch manager.ChallengeSummary) *proto.Challenge {
	pc := &proto.Challenge{
		Id:          ch.ID,
		Name:        ch.Name,
		Description: ch.Description,
		Categories:  ch.Categories,
		Authors:     ch.Authors,
		CanStart:    ch.CanStart,
		Points:      ch.Points,
		Difficulty:  ch.Difficulty,
		// Files stays empty: download URLs are minted by the public API,
		// which owns request signing.
	}
	if ch.ReleaseTime != nil {
		pc.ReleaseTimestamp = *ch.ReleaseTime
	}
	if ch.EndTime != nil {
		pc.EndTimestamp = *ch.EndTime
	}
	return pc
}

func connectionInfoToProto(conns []types.ConnectionInfo) []*proto.ConnectionInfo {
	out := make([]*proto.ConnectionInfo, len(conns))
	for i, c := range conns {
		out[i] = &proto.ConnectionInfo{
			Host:     c.Host,
			Port:     uint32(c.Port),
			Protocol: protocolToProto(c.Protocol),
		}
	}
	return out
}

func protocolToProto(p types.Protocol) proto.Protocol {
	switch p {
	case types.ProtocolHTTPS:
		return proto.Protocol_HTTPS
	case types.ProtocolTCPTLS:
		return proto.Protocol_TCP_TLS
	case types.ProtocolSSH:
		return proto.Protocol_SSH
	case types.ProtocolUDP:
		return proto.Protocol_UDP
	default:
		return proto.Protocol_TCP
	}
}

func commitToProto(c *types.CommitInfo) *proto.SyncStatus {
	return &proto.SyncStatus{
		CommitHash:      c.Hash,
		CommitTimestamp: c.Timestamp,
		CommitAuthor:    c.Author,
		CommitTitle:     c.Title,
	}
}

func eventToProto(cfg *event.Config) *proto.EventConfiguration {
	out := &proto.EventConfiguration{
		EventName:   cfg.EventName,
		FrontPageMd: cfg.FrontPageMD,
		RulesMd:     cfg.RulesMD,
		StartTime:   uint64(cfg.StartTime.Unix()),
		EndTime:     uint64(cfg.EndTime.Unix()),
		UseTeams:    cfg.UseTeams,
	}
	if cfg.MaxTeamSize != nil {
		out.MaxTeamSize = *cfg.MaxTeamSize
	}
	if cfg.ScoreboardFreezeTime != nil {
		out.ScoreboardFreezeTime = uint64(cfg.ScoreboardFreezeTime.Unix())
	}
	if cfg.RegistrationStartTime != nil {
		out.RegistrationStartTime = uint64(cfg.RegistrationStartTime.Unix())
	}
	if cfg.RegistrationEndTime != nil {
		out.RegistrationEndTime = uint64(cfg.RegistrationEndTime.Unix())
	}
	if len(cfg.Categories) > 0 {
		out.Categories = make(map[string]*proto.CtfCategory, len(cfg.Categories))
		for id, c := range cfg.Categories {
			out.Categories[id] = &proto.CtfCategory{
				Name:        c.Name,
				Description: c.Description,
				Color:       c.Color,
			}
		}
	}
	if len(cfg.Difficulties) > 0 {
		out.Difficulties = make(map[string]*proto.CtfDifficulty, len(cfg.Difficulties))
		for id, d := range cfg.Difficulties {
			out.Difficulties[id] = &proto.CtfDifficulty{
				Name:  d.Name,
				Color: d.Color,
			}
		}
	}
	return out
}
