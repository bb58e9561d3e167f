package round

import (
	"fmt"

	"github.com/xtding233/chip-duel/internal/anim"
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/pool"
)

// Assignment is the outcome of an accepted draw.
type Assignment struct {
	Player    board.Player
	Slot      int
	Record    *catalog.Record
	Completed bool // the draw filled the board
}

// Assign draws a record into player p's slot. Rejected requests return a
// *RejectionError and leave the session untouched.
func (s *Session) Assign(p board.Player, slot int) (Assignment, error) {
	if err := s.checkAssign(p, slot); err != nil {
		s.logger.Debug("assignment rejected", "round", s.roundID, "err", err)
		return Assignment{}, err
	}
	rec, err := s.drawer.Draw()
	if err != nil {
		return Assignment{}, fmt.Errorf("draw: %w", err)
	}
	if s.phase == PhasePreRound {
		s.activate()
	}
	if err := s.board.Fill(p, slot, rec); err != nil {
		panic(fmt.Sprintf("round: fill after check: %v", err))
	}
	s.renderPlacement(p, slot, rec)

	return Assignment{Player: p, Slot: slot, Record: rec, Completed: s.checkCompletion()}, nil
}

func (s *Session) checkAssign(p board.Player, slot int) error {
	reject := func(reason error) error {
		return &RejectionError{Reason: reason, Player: p, Slot: slot, Phase: s.phase}
	}
	switch {
	case !p.Valid():
		return reject(ErrInvalidPlayer)
	case slot < 0 || slot >= board.Slots:
		return reject(ErrInvalidSlot)
	case !s.phase.AcceptsAssign():
		return reject(ErrInvalidPhase)
	case s.board.Slot(p, slot).Filled:
		return reject(ErrSlotAlreadyFilled)
	}
	return nil
}

func (s *Session) renderPlacement(p board.Player, slot int, rec *catalog.Record) {
	if rec.Visual.Valid() {
		s.pres.SetSlotVisual(p, slot, rec.Visual, anim.BounceStartScale)
		s.sched.Start(slotKey(p, slot, anim.EffectBounce), &anim.Bounce{
			Scale:  func(f float64) { s.pres.SetSlotScale(p, slot, f) },
			Alpha:  func(a float64) { s.setAlpha(p, slot, a) },
			Shadow: func(a float64, visible bool) { s.pres.SetSlotShadow(p, slot, a, visible) },
		})
	} else {
		s.logger.Warn("character has no visual", "character", rec.Name, "player", p.String(), "slot", slot)
	}
	s.pres.SetScoreLabel(p, slot, rec.Power)

	if s.sounds.Place.Valid() {
		s.pres.PlaySound(s.sounds.Place, pool.Range(s.rng, MinPlacePitch, MaxPlacePitch))
	}
	if n := len(rec.Audio); n > 0 {
		s.pres.PlaySound(rec.Audio[pool.IntN(s.rng, n)], 1)
	}
	s.pres.ShowDescription(catalog.Describe(rec))

	s.logger.Info("slot assigned",
		"round", s.roundID, "player", p.String(), "slot", slot,
		"character", rec.Name, "power", rec.Power, "remaining", s.drawer.Remaining())
	s.updateOpacity(slot)
}

// updateOpacity dims the losing side of a filled pair. While one side is
// empty any running fade is dropped and both sides are shown in full.
func (s *Session) updateOpacity(slot int) {
	a1, a2, ok := board.SlotAlpha(&s.board, slot)
	if !ok {
		for _, p := range board.Players {
			key := slotKey(p, slot, anim.EffectFade)
			if s.sched.Active(key) {
				s.sched.Cancel(key)
				s.setAlpha(p, slot, board.AlphaFull)
			}
		}
		return
	}
	s.fade(board.Player1, slot, a1)
	s.fade(board.Player2, slot, a2)
}

func (s *Session) fade(p board.Player, slot int, target float64) {
	s.sched.Start(slotKey(p, slot, anim.EffectFade),
		anim.NewFade(s.alpha[p][slot], target, func(a float64) { s.setAlpha(p, slot, a) }))
}

func (s *Session) setAlpha(p board.Player, slot int, a float64) {
	s.alpha[p][slot] = a
	s.pres.SetSlotAlpha(p, slot, a)
}

func (s *Session) checkCompletion() bool {
	if !s.board.Full() {
		return false
	}
	res := board.Score(&s.board)
	s.result = &res
	s.setPhase(PhaseResolving)
	s.logger.Info("round scored",
		"round", s.roundID, "p1", res.P1Total, "p2", res.P2Total, "outcome", res.Outcome())
	s.sched.Start(resolveKey, anim.After(ResolveDelay, s.finishRound))
	return true
}
