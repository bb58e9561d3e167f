package round

import (
	"time"

	"github.com/xtding233/chip-duel/internal/anim"
)

type cycleStage int

const (
	stageStarting cycleStage = iota
	stageRevealing
	stageHolding
)

// previewCycle reveals one tile group at a time while the round is in
// PreRound. Waits carry over between stages so long frames do not drift.
type previewCycle struct {
	s       *Session
	stage   cycleStage
	wait    time.Duration
	current int
}

func (c *previewCycle) Step(dt time.Duration) bool {
	if c.s.phase != PhasePreRound {
		return true
	}
	c.wait -= dt
	for c.wait <= 0 {
		switch c.stage {
		case stageStarting:
			c.s.click()
			c.s.flipGroup(c.s.groups[0], true)
			c.stage = stageRevealing
			c.wait += anim.FlipDuration
		case stageRevealing:
			if c.s.phase != PhasePreRound {
				return true
			}
			c.stage = stageHolding
			c.wait += PreviewHold
		case stageHolding:
			if c.s.phase != PhasePreRound {
				return true
			}
			next := (c.current + 1) % len(c.s.groups)
			c.s.click()
			if next == c.current {
				// a lone group turns over on alternate holds
				group := c.s.groups[next]
				c.s.flipGroup(group, !c.s.faceGoal[group[0]])
			} else {
				c.s.flipGroup(c.s.groups[c.current], false)
				c.s.flipGroup(c.s.groups[next], true)
			}
			c.current = next
			c.stage = stageRevealing
			c.wait += anim.FlipDuration
		}
	}
	return false
}
