package board

// Outcome texts shown on the end screen.
const (
	OutcomePlayer1 = "Player 1 Won"
	OutcomePlayer2 = "Player 2 Won"
	OutcomeTie     = "Tie!"
)

// Alpha targets for the opacity policy.
const (
	AlphaFull   = 1.0
	AlphaDimmed = 0.5
)

// Result is the comparison of two full boards.
type Result struct {
	P1Total int
	P2Total int
	P1Wins  [Slots]bool
	P2Wins  [Slots]bool
}

// Total returns p's points.
func (r Result) Total(p Player) int {
	if p == Player1 {
		return r.P1Total
	}
	return r.P2Total
}

// Won reports whether p was awarded slot i.
func (r Result) Won(p Player, i int) bool {
	if p == Player1 {
		return r.P1Wins[i]
	}
	return r.P2Wins[i]
}

// Outcome returns the end screen text.
func (r Result) Outcome() string {
	switch {
	case r.P1Total > r.P2Total:
		return OutcomePlayer1
	case r.P2Total > r.P1Total:
		return OutcomePlayer2
	}
	return OutcomeTie
}

// Score compares the boards slot by slot. The higher power wins the slot;
// a tie awards the slot to both players. Score panics if the board is not full.
func Score(b *Board) Result {
	if !b.Full() {
		panic("board: Score called on a board that is not full")
	}
	var r Result
	for i := 0; i < Slots; i++ {
		p1 := b.slots[Player1][i].Power()
		p2 := b.slots[Player2][i].Power()
		switch {
		case p1 > p2:
			r.P1Total++
			r.P1Wins[i] = true
		case p2 > p1:
			r.P2Total++
			r.P2Wins[i] = true
		default:
			r.P1Total++
			r.P2Total++
			r.P1Wins[i] = true
			r.P2Wins[i] = true
		}
	}
	return r
}

// SlotAlpha returns the target opacity of both sides of slot i. ok is false
// unless both sides are filled; the strictly weaker side is dimmed.
func SlotAlpha(b *Board, i int) (p1, p2 float64, ok bool) {
	if !b.PairFilled(i) {
		return AlphaFull, AlphaFull, false
	}
	s1 := b.slots[Player1][i].Power()
	s2 := b.slots[Player2][i].Power()
	p1, p2 = AlphaFull, AlphaFull
	if s1 < s2 {
		p1 = AlphaDimmed
	}
	if s2 < s1 {
		p2 = AlphaDimmed
	}
	return p1, p2, true
}
