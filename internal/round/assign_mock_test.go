package round_test

import (
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/xtding233/chip-duel/internal/anim"
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/present/mocks"
	"github.com/xtding233/chip-duel/internal/round"
)

type pitchRange struct{ lo, hi float64 }

func (m pitchRange) Matches(x any) bool {
	v, ok := x.(float64)
	return ok && v >= m.lo && v < m.hi
}

func (m pitchRange) String() string { return fmt.Sprintf("pitch in [%v, %v)", m.lo, m.hi) }

func TestAssignCommandOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	rex := &catalog.Record{
		Name:        "Rex",
		Description: "Its jaws are strong.",
		Power:       7,
		Visual:      "rex.png",
		Audio:       []catalog.Audio{"rex.wav"},
	}
	p.EXPECT().SetVisible(gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().ShowTiles(gomock.Any(), gomock.Any()).Times(1)

	s, err := round.NewSession(round.Config{
		Provider:  &catalog.StaticProvider{Records: []*catalog.Record{rex}, Clips: sounds},
		Presenter: p,
		RNG:       pool.NewSeededRNG(3),
	})
	if err != nil {
		t.Fatal(err)
	}

	gomock.InOrder(
		p.EXPECT().SetSlotVisual(board.Player2, 3, catalog.Visual("rex.png"), anim.BounceStartScale),
		p.EXPECT().SetSlotScale(board.Player2, 3, anim.BounceStartScale),
		p.EXPECT().SetSlotAlpha(board.Player2, 3, 0.0),
		p.EXPECT().SetSlotShadow(board.Player2, 3, anim.ShadowStartAlpha, true),
		p.EXPECT().SetScoreLabel(board.Player2, 3, 7),
		p.EXPECT().PlaySound(sounds.Place, pitchRange{round.MinPlacePitch, round.MaxPlacePitch}),
		p.EXPECT().PlaySound(catalog.Audio("rex.wav"), 1.0),
		p.EXPECT().ShowDescription("Rex's jaws are strong."),
	)
	a, err := s.Assign(board.Player2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a.Record != rex || a.Completed {
		t.Fatalf("unexpected assignment %+v", a)
	}
}

func TestRejectedAssignSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().SetVisible(gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().ShowTiles(gomock.Any(), gomock.Any()).Times(1)

	s, err := round.NewSession(round.Config{
		Provider:  &catalog.StaticProvider{Records: chars(1, 2)},
		Presenter: p,
	})
	if err != nil {
		t.Fatal(err)
	}
	// any other presenter call fails the test
	if _, err := s.Assign(board.Player1, 9); err == nil {
		t.Fatal("expected rejection")
	}
}
