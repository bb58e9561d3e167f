package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/history"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/present/presenttest"
	"github.com/xtding233/chip-duel/internal/round"
)

func records(n int) []*catalog.Record {
	out := make([]*catalog.Record, n)
	for i := range out {
		out[i] = &catalog.Record{Name: fmt.Sprintf("c%d", i), Power: i, Visual: "c.png"}
	}
	return out
}

func startMatch(t *testing.T) *round.Driver {
	t.Helper()
	s, err := round.NewSession(round.Config{
		Provider:  &catalog.StaticProvider{Records: records(12)},
		Presenter: presenttest.New(),
		RNG:       pool.NewSeededRNG(5),
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := round.NewDriver(round.DriverConfig{Session: s})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Stop(context.Background()) })
	return d
}

func dial(t *testing.T, svc MatchServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewServerWithListener(lis, svc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestDrawAndState(t *testing.T) {
	conn := dial(t, NewService(startMatch(t), nil, nil))
	client := NewClient(conn)
	ctx := context.Background()

	out, err := client.Draw(ctx, 1, 3)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := out.Fields["phase"].GetStringValue(); got != "Active" {
		t.Fatalf("phase = %q", got)
	}
	a := out.Fields["assignment"].GetStructValue()
	if a == nil || a.Fields["slot"].GetNumberValue() != 3 || a.Fields["player"].GetNumberValue() != 1 {
		t.Fatalf("assignment = %v", a)
	}

	state, err := client.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	p1 := state.Fields["players"].GetListValue().Values[0].GetStructValue()
	slot := p1.Fields["slots"].GetListValue().Values[2].GetStructValue()
	if !slot.Fields["filled"].GetBoolValue() {
		t.Fatalf("slot 3 not filled in state: %v", slot)
	}
	if state.Fields["pool_remaining"].GetNumberValue() != 11 {
		t.Fatalf("pool_remaining = %v", state.Fields["pool_remaining"])
	}
}

func TestRejectionCodes(t *testing.T) {
	conn := dial(t, NewService(startMatch(t), nil, nil))
	client := NewClient(conn)
	ctx := context.Background()

	if _, err := client.Draw(ctx, 2, 1); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"filled slot", func() error { _, err := client.Draw(ctx, 2, 1); return err }, codes.FailedPrecondition},
		{"bad slot", func() error { _, err := client.Draw(ctx, 1, 6); return err }, codes.InvalidArgument},
		{"bad player", func() error { _, err := client.Draw(ctx, 3, 1); return err }, codes.InvalidArgument},
		{"restart while active", func() error { _, err := client.Restart(ctx); return err }, codes.FailedPrecondition},
		{"history disabled", func() error { _, err := client.History(ctx, 5); return err }, codes.Unimplemented},
	}
	for _, tc := range cases {
		if got := status.Code(tc.call()); got != tc.want {
			t.Errorf("%s: code = %s, want %s", tc.name, got, tc.want)
		}
	}
}

type stoppedMatch struct{}

func (stoppedMatch) Submit(context.Context, round.Event) (round.Reply, error) {
	return round.Reply{}, round.ErrDriverStopped
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{&round.RejectionError{Reason: round.ErrInvalidSlot}, codes.InvalidArgument},
		{&round.RejectionError{Reason: round.ErrInvalidPhase}, codes.FailedPrecondition},
		{round.ErrDriverStopped, codes.Unavailable},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		if got := status.Code(toStatus(tc.err)); got != tc.want {
			t.Errorf("toStatus(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}

	conn := dial(t, NewService(stoppedMatch{}, nil, nil))
	if _, err := NewClient(conn).State(context.Background()); status.Code(err) != codes.Unavailable {
		t.Fatalf("state on stopped match = %v", err)
	}
}

type fakeHistory struct {
	rounds []round.Summary
	tally  history.Tally
}

func (f fakeHistory) ListRounds(_ context.Context, limit int) ([]round.Summary, error) {
	if limit > 0 && limit < len(f.rounds) {
		return f.rounds[:limit], nil
	}
	return f.rounds, nil
}

func (f fakeHistory) Tally(context.Context) (history.Tally, error) { return f.tally, nil }

func TestHistory(t *testing.T) {
	hist := fakeHistory{
		rounds: []round.Summary{
			{RoundID: "r2", FinishedAt: time.Unix(200, 0).UTC(), P1Total: 5, P2Total: 5, Outcome: "Tie!"},
			{RoundID: "r1", FinishedAt: time.Unix(100, 0).UTC(), P1Total: 3, P2Total: 2, Outcome: "Player 1 Won"},
		},
		tally: history.Tally{Rounds: 2, P1Wins: 1, Ties: 1},
	}
	conn := dial(t, NewService(startMatch(t), hist, nil))

	out, err := NewClient(conn).History(context.Background(), 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	list := out.Fields["rounds"].GetListValue().GetValues()
	if len(list) != 1 || list[0].GetStructValue().Fields["id"].GetStringValue() != "r2" {
		t.Fatalf("rounds = %v", list)
	}
	if got := out.Fields["tally"].GetStructValue().Fields["ties"].GetNumberValue(); got != 1 {
		t.Fatalf("ties = %v", got)
	}
}

func TestHealth(t *testing.T) {
	conn := dial(t, NewService(startMatch(t), nil, nil))
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatal(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %s", resp.GetStatus())
	}
}
