package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/round"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func summary(id string, at time.Time, p1, p2 int, outcome string) round.Summary {
	s := round.Summary{RoundID: id, FinishedAt: at, P1Total: p1, P2Total: p2, Outcome: outcome}
	for i := 0; i < board.Slots; i++ {
		s.Slots[board.Player1][i] = round.SummarySlot{Name: "a", Power: i, Won: i%2 == 0}
		s.Slots[board.Player2][i] = round.SummarySlot{Name: "b", Power: 4 - i, Won: i%2 == 1}
	}
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestRecordAndListRounds(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	if err := store.RecordRound(ctx, summary("r1", base, 3, 2, board.OutcomePlayer1)); err != nil {
		t.Fatalf("record r1: %v", err)
	}
	if err := store.RecordRound(ctx, summary("r2", base.Add(time.Minute), 5, 5, board.OutcomeTie)); err != nil {
		t.Fatalf("record r2: %v", err)
	}

	got, err := store.ListRounds(ctx, 0)
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rounds = %d, want 2", len(got))
	}
	if got[0].RoundID != "r2" || got[1].RoundID != "r1" {
		t.Fatalf("order = %s, %s", got[0].RoundID, got[1].RoundID)
	}
	if !got[1].FinishedAt.Equal(base) {
		t.Fatalf("finished_at = %v, want %v", got[1].FinishedAt, base)
	}
	if got[1].Slots[board.Player2][1] != (round.SummarySlot{Name: "b", Power: 3, Won: true}) {
		t.Fatalf("slot = %+v", got[1].Slots[board.Player2][1])
	}

	limited, err := store.ListRounds(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].RoundID != "r2" {
		t.Fatalf("limited = %+v", limited)
	}
}

func TestRecordRoundDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	s := summary("dup", time.Now(), 1, 4, board.OutcomePlayer2)
	if err := store.RecordRound(ctx, s); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordRound(ctx, s); !errors.Is(err, ErrDuplicateRound) {
		t.Fatalf("expected ErrDuplicateRound, got %v", err)
	}
	if err := store.RecordRound(ctx, round.Summary{}); err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestTally(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	empty, err := store.Tally(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if empty != (Tally{}) {
		t.Fatalf("empty tally = %+v", empty)
	}

	now := time.Now()
	for _, s := range []round.Summary{
		summary("a", now, 3, 2, board.OutcomePlayer1),
		summary("b", now, 3, 2, board.OutcomePlayer1),
		summary("c", now, 1, 4, board.OutcomePlayer2),
		summary("d", now, 5, 5, board.OutcomeTie),
	} {
		if err := store.RecordRound(ctx, s); err != nil {
			t.Fatal(err)
		}
	}
	got, err := store.Tally(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Tally{Rounds: 4, P1Wins: 2, P2Wins: 1, Ties: 1}); got != want {
		t.Fatalf("tally = %+v, want %+v", got, want)
	}
}

func TestMigrationsApplyOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.db")
	first, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.RecordRound(context.Background(), summary("keep", time.Now(), 1, 1, board.OutcomeTie)); err != nil {
		t.Fatal(err)
	}
	_ = first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	got, err := second.ListRounds(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].RoundID != "keep" {
		t.Fatalf("rounds after reopen = %+v", got)
	}
}

func TestUpSection(t *testing.T) {
	in := "-- +migrate Up\nCREATE TABLE x (a INT);\n-- +migrate Down\nDROP TABLE x;\n"
	if got := upSection(in); got != "\nCREATE TABLE x (a INT);\n" {
		t.Fatalf("upSection = %q", got)
	}
	if got := upSection("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("upSection without markers = %q", got)
	}
}
