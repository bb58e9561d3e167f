package round

import "github.com/xtding233/chip-duel/internal/board"

// SlotView is the read-only state of one slot.
type SlotView struct {
	Filled bool
	Name   string
	Power  int
	Won    bool
}

// Snapshot is a copy of the session state safe to hand to other goroutines.
type Snapshot struct {
	RoundID       string
	Phase         Phase
	Slots         [2][board.Slots]SlotView
	Scored        bool
	Totals        [2]int
	Outcome       string
	PoolRemaining int
	PoolSize      int
	Animations    int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		RoundID:       s.roundID,
		Phase:         s.phase,
		PoolRemaining: s.drawer.Remaining(),
		PoolSize:      s.drawer.Size(),
		Animations:    s.sched.Len(),
	}
	for _, p := range board.Players {
		for i := 0; i < board.Slots; i++ {
			slot := s.board.Slot(p, i)
			v := SlotView{Filled: slot.Filled, Power: slot.Power()}
			if slot.Occupant != nil {
				v.Name = slot.Occupant.Name
			}
			if s.result != nil {
				v.Won = s.result.Won(p, i)
			}
			snap.Slots[p][i] = v
		}
	}
	if s.result != nil {
		snap.Scored = true
		for _, p := range board.Players {
			snap.Totals[p] = s.result.Total(p)
		}
		snap.Outcome = s.result.Outcome()
	}
	return snap
}
