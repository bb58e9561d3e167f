// Package board holds both players' slots and the scoring rules.
package board

import (
	"errors"
	"fmt"

	"github.com/xtding233/chip-duel/internal/catalog"
)

// Slots is the number of inventory slots per player.
const Slots = 5

var ErrSlotFilled = errors.New("board: slot already filled")

// Player identifies one side of the board.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Players lists both sides in board order.
var Players = [2]Player{Player1, Player2}

func (p Player) Valid() bool { return p == Player1 || p == Player2 }

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Slot is one inventory position. Filled never reverts outside Reset.
type Slot struct {
	Occupant *catalog.Record
	Filled   bool
}

// Power returns the occupant's power score, 0 when empty.
func (s Slot) Power() int {
	if s.Occupant == nil {
		return 0
	}
	return s.Occupant.Power
}

// Board is the ten slots of a round.
type Board struct {
	slots [2][Slots]Slot
}

// Slot returns a copy of the slot at (p, i).
func (b *Board) Slot(p Player, i int) Slot { return b.slots[p][i] }

// Fill commits rec into (p, i).
func (b *Board) Fill(p Player, i int, rec *catalog.Record) error {
	s := &b.slots[p][i]
	if s.Filled {
		return ErrSlotFilled
	}
	s.Occupant = rec
	s.Filled = true
	return nil
}

// FilledCount reports how many of p's slots are filled.
func (b *Board) FilledCount(p Player) int {
	n := 0
	for _, s := range b.slots[p] {
		if s.Filled {
			n++
		}
	}
	return n
}

// Full reports whether all ten slots are filled.
func (b *Board) Full() bool {
	return b.FilledCount(Player1) == Slots && b.FilledCount(Player2) == Slots
}

// PairFilled reports whether both sides of slot i are filled.
func (b *Board) PairFilled(i int) bool {
	return b.slots[Player1][i].Filled && b.slots[Player2][i].Filled
}

// Reset empties every slot.
func (b *Board) Reset() {
	b.slots = [2][Slots]Slot{}
}
