package round

import (
	"errors"
	"fmt"

	"github.com/xtding233/chip-duel/internal/board"
)

// Rejection reasons. A rejected request changes nothing.
var (
	ErrSlotAlreadyFilled = errors.New("slot already filled")
	ErrInvalidPhase      = errors.New("invalid phase")
	ErrInvalidSlot       = errors.New("invalid slot")
	ErrInvalidPlayer     = errors.New("invalid player")
)

// RejectionError reports why a player request was ignored.
// Slot is -1 for requests that do not target a slot.
type RejectionError struct {
	Reason error
	Player board.Player
	Slot   int
	Phase  Phase
}

func (e *RejectionError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("request rejected in %s: %v", e.Phase, e.Reason)
	}
	return fmt.Sprintf("%s slot %d rejected in %s: %v", e.Player, e.Slot, e.Phase, e.Reason)
}

func (e *RejectionError) Unwrap() error { return e.Reason }

// IsRejection reports whether err is a user rejection rather than a failure.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}
