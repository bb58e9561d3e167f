package present_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/present"
	"github.com/xtding233/chip-duel/internal/present/presenttest"
)

func TestMultiFansOut(t *testing.T) {
	a, b := presenttest.New(), presenttest.New()
	m := present.Multi{a, b}

	m.SetScoreLabel(board.Player2, 4, 9)
	m.ShowEndScreen("Tie!")

	for _, r := range []*presenttest.Recorder{a, b} {
		cmds := r.Commands()
		if len(cmds) != 2 || cmds[0].Op != "SetScoreLabel" || cmds[0].Int != 9 || cmds[1].Text != "Tie!" {
			t.Fatalf("commands = %v", cmds)
		}
	}
}

func TestLogPresenterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := present.NewLogPresenter(logger)

	p.SetSlotAlpha(board.Player1, 0, 0.5)
	p.ShowEndScreen("Player 1 Won")

	out := buf.String()
	if strings.Contains(out, "alpha") {
		t.Fatalf("per-frame command logged at debug: %s", out)
	}
	if !strings.Contains(out, "Player 1 Won") {
		t.Fatalf("end screen not logged: %s", out)
	}
}
