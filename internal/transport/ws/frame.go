package ws

import (
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/round"
)

// Frame is one server-to-client message. Player and slot numbers on the
// wire are 1-based.
type Frame struct {
	Op   string         `json:"op"`
	Args map[string]any `json:"args,omitempty"`
}

// Input is one client-to-server message.
type Input struct {
	Op     string `json:"op"` // draw, restart or state
	Player int    `json:"player,omitempty"`
	Slot   int    `json:"slot,omitempty"`
}

type stateView struct {
	RoundID       string         `json:"round_id"`
	Phase         string         `json:"phase"`
	Slots         [2][]slotView  `json:"slots"`
	Scored        bool           `json:"scored"`
	Totals        [2]int         `json:"totals"`
	Outcome       string         `json:"outcome,omitempty"`
	PoolRemaining int            `json:"pool_remaining"`
	PoolSize      int            `json:"pool_size"`
	Assignment    *assignmentRef `json:"assignment,omitempty"`
}

type slotView struct {
	Filled bool   `json:"filled"`
	Name   string `json:"name,omitempty"`
	Power  int    `json:"power"`
	Won    bool   `json:"won"`
}

type assignmentRef struct {
	Player    int    `json:"player"`
	Slot      int    `json:"slot"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func viewOf(r round.Reply) stateView {
	s := r.Snapshot
	v := stateView{
		RoundID:       s.RoundID,
		Phase:         s.Phase.String(),
		Scored:        s.Scored,
		Totals:        s.Totals,
		Outcome:       s.Outcome,
		PoolRemaining: s.PoolRemaining,
		PoolSize:      s.PoolSize,
	}
	for _, p := range board.Players {
		v.Slots[p] = make([]slotView, board.Slots)
		for i, sl := range s.Slots[p] {
			v.Slots[p][i] = slotView{Filled: sl.Filled, Name: sl.Name, Power: sl.Power, Won: sl.Won}
		}
	}
	if a := r.Assignment; a != nil {
		v.Assignment = &assignmentRef{
			Player:    int(a.Player) + 1,
			Slot:      a.Slot + 1,
			Name:      a.Record.Name,
			Completed: a.Completed,
		}
	}
	return v
}

// event converts an input message into a round event.
func (in Input) event() (round.Event, bool) {
	switch in.Op {
	case "draw":
		return round.DrawRequested{Player: board.Player(in.Player - 1), Slot: in.Slot - 1}, true
	case "restart":
		return round.RestartRequested{}, true
	case "state":
		return round.StateRequested{}, true
	}
	return nil, false
}
