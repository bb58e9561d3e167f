// Package console maps keyboard lines from a terminal onto round events.
// Keys 1-5 fill player 1's slots, 6-0 player 2's, and space restarts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/round"
)

// Submitter applies input events. *round.Driver implements it.
type Submitter interface {
	Submit(ctx context.Context, ev round.Event) (round.Reply, error)
}

// KeyEvent maps a single key to its event.
func KeyEvent(key string) (round.Event, bool) {
	switch key {
	case " ", "space":
		return round.RestartRequested{}, true
	case "?":
		return round.StateRequested{}, true
	}
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return nil, false
	}
	n := int(key[0] - '0')
	if n == 0 {
		n = 10
	}
	p, slot := board.Player1, n-1
	if n > board.Slots {
		p, slot = board.Player2, n-1-board.Slots
	}
	return round.DrawRequested{Player: p, Slot: slot}, true
}

// Run reads lines from in until EOF or ctx is done. Each key on a line is
// submitted in order and a one-line summary of the reply is written to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, match Submitter, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" && line != "" {
			line = " "
		}
		for _, key := range keys(line) {
			ev, ok := KeyEvent(key)
			if !ok {
				fmt.Fprintf(out, "unknown key %q\n", key)
				continue
			}
			logger.Debug("console input", "key", key)
			reply, err := match.Submit(ctx, ev)
			if err != nil && !round.IsRejection(err) {
				return err
			}
			fmt.Fprintln(out, summarize(reply, err))
		}
	}
	return sc.Err()
}

func keys(line string) []string {
	if line == " " {
		return []string{" "}
	}
	var out []string
	for _, f := range strings.Fields(line) {
		if f == "space" {
			out = append(out, f)
			continue
		}
		for _, r := range f {
			out = append(out, string(r))
		}
	}
	return out
}

func summarize(r round.Reply, err error) string {
	s := r.Snapshot
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", s.Phase)
	if a := r.Assignment; a != nil {
		fmt.Fprintf(&b, " %s slot %d <- %s (%d)", a.Player, a.Slot+1, a.Record.Name, a.Record.Power)
	}
	if err != nil {
		fmt.Fprintf(&b, " rejected: %v", err)
	}
	if s.Scored {
		fmt.Fprintf(&b, " %d-%d %s", s.Totals[0], s.Totals[1], s.Outcome)
	}
	return b.String()
}
