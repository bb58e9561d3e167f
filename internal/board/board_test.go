package board

import (
	"errors"
	"testing"

	"github.com/xtding233/chip-duel/internal/catalog"
)

func fill(t *testing.T, p1, p2 [Slots]int) *Board {
	t.Helper()
	var b Board
	for i := 0; i < Slots; i++ {
		if err := b.Fill(Player1, i, &catalog.Record{Name: "a", Power: p1[i]}); err != nil {
			t.Fatal(err)
		}
		if err := b.Fill(Player2, i, &catalog.Record{Name: "b", Power: p2[i]}); err != nil {
			t.Fatal(err)
		}
	}
	return &b
}

func TestFillOnce(t *testing.T) {
	var b Board
	rec := &catalog.Record{Name: "x", Power: 1}
	if err := b.Fill(Player2, 3, rec); err != nil {
		t.Fatal(err)
	}
	if err := b.Fill(Player2, 3, &catalog.Record{}); !errors.Is(err, ErrSlotFilled) {
		t.Fatalf("expected ErrSlotFilled, got %v", err)
	}
	if got := b.Slot(Player2, 3).Occupant; got != rec {
		t.Fatalf("occupant replaced: %+v", got)
	}
	if b.FilledCount(Player2) != 1 || b.FilledCount(Player1) != 0 {
		t.Fatal("unexpected filled counts")
	}
	b.Reset()
	if b.Slot(Player2, 3).Filled {
		t.Fatal("reset must clear slots")
	}
}

func TestScore(t *testing.T) {
	cases := []struct {
		name         string
		p1, p2       [Slots]int
		t1, t2       int
		outcome      string
		p1Won, p2Won [Slots]bool
	}{
		{
			name: "alternating", p1: [Slots]int{5, 3, 5, 3, 5}, p2: [Slots]int{3, 5, 3, 5, 3},
			t1: 3, t2: 2, outcome: OutcomePlayer1,
			p1Won: [Slots]bool{true, false, true, false, true},
			p2Won: [Slots]bool{false, true, false, true, false},
		},
		{
			name: "all ties", p1: [Slots]int{4, 4, 4, 4, 4}, p2: [Slots]int{4, 4, 4, 4, 4},
			t1: 5, t2: 5, outcome: OutcomeTie,
			p1Won: [Slots]bool{true, true, true, true, true},
			p2Won: [Slots]bool{true, true, true, true, true},
		},
		{
			name: "player two sweeps", p1: [Slots]int{0, 1, 2, 3, 4}, p2: [Slots]int{9, 9, 9, 9, 9},
			t1: 0, t2: 5, outcome: OutcomePlayer2,
			p2Won: [Slots]bool{true, true, true, true, true},
		},
		{
			name: "mixed with tie", p1: [Slots]int{1, 2, 3, 4, 5}, p2: [Slots]int{1, 1, 4, 4, 6},
			t1: 3, t2: 4, outcome: OutcomePlayer2,
			p1Won: [Slots]bool{true, true, false, true, false},
			p2Won: [Slots]bool{true, false, true, true, true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Score(fill(t, c.p1, c.p2))
			if r.P1Total != c.t1 || r.P2Total != c.t2 {
				t.Fatalf("totals = %d-%d, want %d-%d", r.P1Total, r.P2Total, c.t1, c.t2)
			}
			if r.Outcome() != c.outcome {
				t.Fatalf("outcome = %q, want %q", r.Outcome(), c.outcome)
			}
			if r.P1Wins != c.p1Won || r.P2Wins != c.p2Won {
				t.Fatalf("wins = %v/%v, want %v/%v", r.P1Wins, r.P2Wins, c.p1Won, c.p2Won)
			}
			// a won slot awards one point, a tied slot one to each side
			ties := 0
			for i := 0; i < Slots; i++ {
				if r.P1Wins[i] && r.P2Wins[i] {
					ties++
				}
			}
			if r.P1Total+r.P2Total != Slots+ties {
				t.Fatalf("points %d do not match slots+ties %d", r.P1Total+r.P2Total, Slots+ties)
			}
		})
	}
}

func TestScorePanicsOnPartialBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for partial board")
		}
	}()
	var b Board
	_ = b.Fill(Player1, 0, &catalog.Record{Power: 1})
	Score(&b)
}

func TestSlotAlpha(t *testing.T) {
	var b Board
	if _, _, ok := SlotAlpha(&b, 0); ok {
		t.Fatal("empty pair must not report ok")
	}
	_ = b.Fill(Player1, 0, &catalog.Record{Power: 2})
	if a1, a2, ok := SlotAlpha(&b, 0); ok || a1 != AlphaFull || a2 != AlphaFull {
		t.Fatalf("half-filled pair: %v %v %v", a1, a2, ok)
	}
	_ = b.Fill(Player2, 0, &catalog.Record{Power: 7})
	if a1, a2, ok := SlotAlpha(&b, 0); !ok || a1 != AlphaDimmed || a2 != AlphaFull {
		t.Fatalf("p1 weaker: %v %v %v", a1, a2, ok)
	}
	_ = b.Fill(Player1, 1, &catalog.Record{Power: 3})
	_ = b.Fill(Player2, 1, &catalog.Record{Power: 3})
	if a1, a2, ok := SlotAlpha(&b, 1); !ok || a1 != AlphaFull || a2 != AlphaFull {
		t.Fatalf("equal powers stay opaque: %v %v %v", a1, a2, ok)
	}
}
