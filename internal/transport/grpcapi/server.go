package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/history"
	"github.com/xtding233/chip-duel/internal/round"
)

// Submitter applies events to the match. *round.Driver implements it.
type Submitter interface {
	Submit(ctx context.Context, ev round.Event) (round.Reply, error)
}

// HistoryReader serves finished rounds. *history.Store implements it.
type HistoryReader interface {
	ListRounds(ctx context.Context, limit int) ([]round.Summary, error)
	Tally(ctx context.Context) (history.Tally, error)
}

// Service implements MatchServer on top of a Submitter.
type Service struct {
	match   Submitter
	history HistoryReader
	logger  *slog.Logger
}

// NewService returns a Service. hist may be nil, in which case History
// answers Unimplemented.
func NewService(match Submitter, hist HistoryReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{match: match, history: hist, logger: logger}
}

func (s *Service) Draw(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	player, err := intField(in, "player")
	if err != nil {
		return nil, err
	}
	slot, err := intField(in, "slot")
	if err != nil {
		return nil, err
	}
	if player < 1 || player > 2 {
		return nil, status.Errorf(codes.InvalidArgument, "player must be 1 or 2, got %d", player)
	}
	return s.submit(ctx, round.DrawRequested{Player: board.Player(player - 1), Slot: slot - 1})
}

func (s *Service) Restart(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.submit(ctx, round.RestartRequested{})
}

func (s *Service) State(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.submit(ctx, round.StateRequested{})
}

func (s *Service) History(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s.history == nil {
		return nil, status.Error(codes.Unimplemented, "round history is disabled")
	}
	limit := 0
	if v, ok := in.GetFields()["limit"]; ok {
		limit = int(v.GetNumberValue())
	}
	rounds, err := s.history.ListRounds(ctx, limit)
	if err != nil {
		s.logger.Error("list rounds", "err", err)
		return nil, status.Error(codes.Internal, "list rounds failed")
	}
	tally, err := s.history.Tally(ctx)
	if err != nil {
		s.logger.Error("tally rounds", "err", err)
		return nil, status.Error(codes.Internal, "tally rounds failed")
	}

	list := make([]any, 0, len(rounds))
	for _, r := range rounds {
		list = append(list, map[string]any{
			"id":          r.RoundID,
			"finished_at": r.FinishedAt.Format("2006-01-02T15:04:05.000Z07:00"),
			"p1_total":    r.P1Total,
			"p2_total":    r.P2Total,
			"outcome":     r.Outcome,
			"slots":       summarySlots(r),
		})
	}
	return structpb.NewStruct(map[string]any{
		"rounds": list,
		"tally": map[string]any{
			"rounds":  tally.Rounds,
			"p1_wins": tally.P1Wins,
			"p2_wins": tally.P2Wins,
			"ties":    tally.Ties,
		},
	})
}

func (s *Service) submit(ctx context.Context, ev round.Event) (*structpb.Struct, error) {
	reply, err := s.match.Submit(ctx, ev)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := encodeReply(reply)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reply: %v", err)
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, round.ErrInvalidPlayer), errors.Is(err, round.ErrInvalidSlot):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, round.ErrInvalidPhase), errors.Is(err, round.ErrSlotAlreadyFilled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, round.ErrDriverStopped), errors.Is(err, round.ErrDriverNotStarted):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, err.Error())
}

func intField(in *structpb.Struct, name string) (int, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != float64(int(n.NumberValue)) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", name)
	}
	return int(n.NumberValue), nil
}

func encodeReply(r round.Reply) (*structpb.Struct, error) {
	snap := r.Snapshot
	players := make([]any, 0, 2)
	for _, p := range board.Players {
		slots := make([]any, 0, board.Slots)
		for _, v := range snap.Slots[p] {
			slots = append(slots, map[string]any{
				"filled": v.Filled,
				"name":   v.Name,
				"power":  v.Power,
				"won":    v.Won,
			})
		}
		players = append(players, map[string]any{"slots": slots, "total": snap.Totals[p]})
	}
	m := map[string]any{
		"round_id":       snap.RoundID,
		"phase":          snap.Phase.String(),
		"players":        players,
		"scored":         snap.Scored,
		"outcome":        snap.Outcome,
		"pool_remaining": snap.PoolRemaining,
		"pool_size":      snap.PoolSize,
	}
	if a := r.Assignment; a != nil {
		m["assignment"] = map[string]any{
			"player":    int(a.Player) + 1,
			"slot":      a.Slot + 1,
			"name":      a.Record.Name,
			"power":     a.Record.Power,
			"completed": a.Completed,
		}
	}
	return structpb.NewStruct(m)
}

func summarySlots(r round.Summary) []any {
	out := make([]any, 0, 2)
	for _, p := range board.Players {
		row := make([]any, 0, board.Slots)
		for _, sl := range r.Slots[p] {
			row = append(row, map[string]any{"name": sl.Name, "power": sl.Power, "won": sl.Won})
		}
		out = append(out, row)
	}
	return out
}

// Server hosts the Match service and gRPC health checks on a listener.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	logger     *slog.Logger
}

// NewServer listens on addr and registers svc.
func NewServer(addr string, svc MatchServer, logger *slog.Logger) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return NewServerWithListener(lis, svc, logger), nil
}

// NewServerWithListener registers svc and serves on lis.
func NewServerWithListener(lis net.Listener, svc MatchServer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	RegisterMatchServer(gs, svc)
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &Server{listener: lis, grpcServer: gs, health: hs, logger: logger}
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.listener.Addr().String() }

// Serve runs until ctx is cancelled, then stops gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("grpc server listening", "addr", s.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}
