package present

import (
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
)

// Multi fans every command out to each presenter in order.
type Multi []Presenter

func (m Multi) SetSlotVisual(p board.Player, slot int, v catalog.Visual, scale float64) {
	for _, x := range m {
		x.SetSlotVisual(p, slot, v, scale)
	}
}

func (m Multi) SetSlotScale(p board.Player, slot int, scale float64) {
	for _, x := range m {
		x.SetSlotScale(p, slot, scale)
	}
}

func (m Multi) SetSlotAlpha(p board.Player, slot int, alpha float64) {
	for _, x := range m {
		x.SetSlotAlpha(p, slot, alpha)
	}
}

func (m Multi) SetSlotShadow(p board.Player, slot int, alpha float64, visible bool) {
	for _, x := range m {
		x.SetSlotShadow(p, slot, alpha, visible)
	}
}

func (m Multi) SetScoreLabel(p board.Player, slot int, value int) {
	for _, x := range m {
		x.SetScoreLabel(p, slot, value)
	}
}

func (m Multi) ShowDescription(text string) {
	for _, x := range m {
		x.ShowDescription(text)
	}
}

func (m Multi) PlaySound(clip catalog.Audio, pitch float64) {
	for _, x := range m {
		x.PlaySound(clip, pitch)
	}
}

func (m Multi) ShowTiles(prompt string, tiles []Tile) {
	for _, x := range m {
		x.ShowTiles(prompt, tiles)
	}
}

func (m Multi) FlipTile(tile int, toFace bool) {
	for _, x := range m {
		x.FlipTile(tile, toFace)
	}
}

func (m Multi) SetTileScaleX(tile int, sx float64) {
	for _, x := range m {
		x.SetTileScaleX(tile, sx)
	}
}

func (m Multi) ShowEndScreen(outcome string) {
	for _, x := range m {
		x.ShowEndScreen(outcome)
	}
}

func (m Multi) SetVisible(el Element, visible bool) {
	for _, x := range m {
		x.SetVisible(el, visible)
	}
}
