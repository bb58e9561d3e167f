package round

import (
	"github.com/google/uuid"

	"github.com/xtding233/chip-duel/internal/anim"
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/present"
)

// Restart tears down the finished round and opens a new one in PreRound.
// It is only accepted in GameOver.
func (s *Session) Restart() error {
	if s.phase != PhaseGameOver {
		err := &RejectionError{Reason: ErrInvalidPhase, Slot: -1, Phase: s.phase}
		s.logger.Debug("restart rejected", "round", s.roundID, "err", err)
		return err
	}
	s.sched.CancelAll()

	prev := s.roundID
	s.applyCatalog()
	s.drawer.Reset()
	s.board.Reset()
	s.result = nil
	for _, p := range board.Players {
		for i := 0; i < board.Slots; i++ {
			s.pres.SetSlotVisual(p, i, "", 1)
			s.alpha[p][i] = board.AlphaFull
		}
	}
	s.roundID = uuid.NewString()
	s.logger.Info("round restarted", "previous", prev, "round", s.roundID)
	s.enterPreRound()
	return nil
}

func (s *Session) enterPreRound() {
	s.setPhase(PhasePreRound)
	s.reg.HideExcept(present.TagBackground)
	s.buildPreview()

	tiles := make([]present.Tile, len(s.tiles))
	for i, rec := range s.tiles {
		tiles[i] = present.Tile{Index: i, Name: rec.Name, Face: rec.Visual, Back: s.cardBack}
	}
	s.pres.ShowTiles(present.PreviewPrompt, tiles)
	s.reg.Show(present.ElementPreview)

	if len(s.groups) > 0 {
		s.sched.Start(cycleKey, &previewCycle{s: s, wait: PreviewDelay})
	}
}

// buildPreview takes the first PreviewSize records and deals them at random
// into PreviewGroups groups; the last group takes the remainder.
func (s *Session) buildPreview() {
	n := min(PreviewSize, len(s.records))
	s.tiles = s.records[:n]
	s.faceGoal = make([]bool, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	pool.Shuffle(s.rng, n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	per := n / PreviewGroups
	s.groups = s.groups[:0]
	for g := 0; g < PreviewGroups; g++ {
		lo, hi := g*per, (g+1)*per
		if g == PreviewGroups-1 {
			hi = n
		}
		if hi > lo {
			s.groups = append(s.groups, order[lo:hi])
		}
	}
}

func (s *Session) activate() {
	s.sched.Cancel(cycleKey)
	for i := range s.tiles {
		s.sched.Cancel(tileKey(i))
	}
	s.setPhase(PhaseActive)
	s.reg.HideTag(present.TagOverlay)
	s.reg.ShowTag(present.TagGameplay)
}

func (s *Session) finishRound() {
	if s.sounds.Gong.Valid() {
		s.pres.PlaySound(s.sounds.Gong, 1)
	}
	s.setPhase(PhaseGameOver)
	s.reg.HideExcept(present.TagBackground)
	s.pres.ShowEndScreen(s.result.Outcome())
	s.reg.Show(present.ElementEndScreen)
	s.record()
}

// flipTile turns a tile toward toFace. A flip still in flight the other way
// is replaced, so a request made before its midpoint still counts.
func (s *Session) flipTile(tile int, toFace bool) {
	if s.faceGoal[tile] == toFace {
		return
	}
	s.faceGoal[tile] = toFace
	s.sched.Start(tileKey(tile), anim.NewFlip(
		func(sx float64) { s.pres.SetTileScaleX(tile, sx) },
		func() { s.pres.FlipTile(tile, toFace) },
	))
}

func (s *Session) flipGroup(group []int, toFace bool) {
	for _, tile := range group {
		s.flipTile(tile, toFace)
	}
}

func (s *Session) click() {
	if s.sounds.Click.Valid() {
		s.pres.PlaySound(s.sounds.Click, 1)
	}
}
