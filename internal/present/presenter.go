// Package present defines the one-way command surface the round drives, plus
// an element registry for tag-based show/hide.
package present

import (
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
)

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// Fixed texts the round hands to presenters.
const (
	PreviewPrompt = "Select Your Tiles"
	RestartPrompt = "Press Space to restart"
)

// Tile is one entry of the pre-round preview grid.
type Tile struct {
	Index int
	Name  string
	Face  catalog.Visual
	Back  catalog.Visual
}

// Presenter renders what the round tells it to. Calls are fire-and-forget and
// are made from the goroutine that owns the round. SetSlotVisual with an empty
// visual clears the slot and its score label.
type Presenter interface {
	SetSlotVisual(p board.Player, slot int, v catalog.Visual, scale float64)
	SetSlotScale(p board.Player, slot int, scale float64)
	SetSlotAlpha(p board.Player, slot int, alpha float64)
	SetSlotShadow(p board.Player, slot int, alpha float64, visible bool)
	SetScoreLabel(p board.Player, slot int, value int)
	ShowDescription(text string)
	PlaySound(clip catalog.Audio, pitch float64)
	ShowTiles(prompt string, tiles []Tile)
	FlipTile(tile int, toFace bool)
	SetTileScaleX(tile int, sx float64)
	ShowEndScreen(outcome string)
	SetVisible(el Element, visible bool)
}
