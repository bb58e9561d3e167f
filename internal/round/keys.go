package round

import (
	"fmt"

	"github.com/xtding233/chip-duel/internal/anim"
	"github.com/xtding233/chip-duel/internal/board"
)

var (
	cycleKey   = anim.Key{Target: "preview", Effect: anim.EffectCycle}
	resolveKey = anim.Key{Target: "round", Effect: anim.EffectTimer}
)

func slotKey(p board.Player, slot int, effect anim.Effect) anim.Key {
	return anim.Key{Target: fmt.Sprintf("p%d/slot%d", int(p)+1, slot), Effect: effect}
}

func tileKey(tile int) anim.Key {
	return anim.Key{Target: fmt.Sprintf("tile/%d", tile), Effect: anim.EffectFlip}
}
