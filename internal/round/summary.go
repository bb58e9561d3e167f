package round

import (
	"context"
	"time"

	"github.com/xtding233/chip-duel/internal/board"
)

// Summary is a finished round as handed to a Recorder.
type Summary struct {
	RoundID    string
	FinishedAt time.Time
	P1Total    int
	P2Total    int
	Outcome    string
	Slots      [2][board.Slots]SummarySlot
}

type SummarySlot struct {
	Name  string
	Power int
	Won   bool
}

// Recorder persists finished rounds.
type Recorder interface {
	RecordRound(ctx context.Context, s Summary) error
}
