// Package presenttest provides a Presenter that records commands for tests.
package presenttest

import (
	"fmt"
	"sync"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/present"
)

// Command is one recorded presenter call.
type Command struct {
	Op      string
	Player  board.Player
	Slot    int
	Tile    int
	Value   float64
	Int     int
	Bool    bool
	Text    string
	Visual  catalog.Visual
	Audio   catalog.Audio
	Tiles   []present.Tile
	Element present.Element
}

func (c Command) String() string {
	return fmt.Sprintf("%s(%v,%d,%d,%v,%v,%q)", c.Op, c.Player, c.Slot, c.Tile, c.Value, c.Bool, c.Text)
}

// Recorder is a present.Presenter that keeps every call. It is safe for
// concurrent use so tests can inspect it while a driver runs.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	alpha    map[[2]int]float64
	scale    map[[2]int]float64
}

func New() *Recorder {
	return &Recorder{alpha: make(map[[2]int]float64), scale: make(map[[2]int]float64)}
}

func (r *Recorder) add(c Command) {
	r.mu.Lock()
	r.commands = append(r.commands, c)
	r.mu.Unlock()
}

// Commands returns a copy of every recorded call.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Command(nil), r.commands...)
}

// Ops returns the recorded calls with the given op.
func (r *Recorder) Ops(op string) []Command {
	var out []Command
	for _, c := range r.Commands() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = nil
	r.mu.Unlock()
}

// Alpha returns the last alpha sent for (p, slot).
func (r *Recorder) Alpha(p board.Player, slot int) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.alpha[[2]int{int(p), slot}]
	return v, ok
}

// Scale returns the last scale sent for (p, slot).
func (r *Recorder) Scale(p board.Player, slot int) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.scale[[2]int{int(p), slot}]
	return v, ok
}

func (r *Recorder) SetSlotVisual(p board.Player, slot int, v catalog.Visual, scale float64) {
	r.add(Command{Op: "SetSlotVisual", Player: p, Slot: slot, Visual: v, Value: scale})
}

func (r *Recorder) SetSlotScale(p board.Player, slot int, scale float64) {
	r.mu.Lock()
	r.scale[[2]int{int(p), slot}] = scale
	r.mu.Unlock()
	r.add(Command{Op: "SetSlotScale", Player: p, Slot: slot, Value: scale})
}

func (r *Recorder) SetSlotAlpha(p board.Player, slot int, alpha float64) {
	r.mu.Lock()
	r.alpha[[2]int{int(p), slot}] = alpha
	r.mu.Unlock()
	r.add(Command{Op: "SetSlotAlpha", Player: p, Slot: slot, Value: alpha})
}

func (r *Recorder) SetSlotShadow(p board.Player, slot int, alpha float64, visible bool) {
	r.add(Command{Op: "SetSlotShadow", Player: p, Slot: slot, Value: alpha, Bool: visible})
}

func (r *Recorder) SetScoreLabel(p board.Player, slot int, value int) {
	r.add(Command{Op: "SetScoreLabel", Player: p, Slot: slot, Int: value})
}

func (r *Recorder) ShowDescription(text string) {
	r.add(Command{Op: "ShowDescription", Text: text})
}

func (r *Recorder) PlaySound(clip catalog.Audio, pitch float64) {
	r.add(Command{Op: "PlaySound", Audio: clip, Value: pitch})
}

func (r *Recorder) ShowTiles(prompt string, tiles []present.Tile) {
	r.add(Command{Op: "ShowTiles", Text: prompt, Tiles: append([]present.Tile(nil), tiles...)})
}

func (r *Recorder) FlipTile(tile int, toFace bool) {
	r.add(Command{Op: "FlipTile", Tile: tile, Bool: toFace})
}

func (r *Recorder) SetTileScaleX(tile int, sx float64) {
	r.add(Command{Op: "SetTileScaleX", Tile: tile, Value: sx})
}

func (r *Recorder) ShowEndScreen(outcome string) {
	r.add(Command{Op: "ShowEndScreen", Text: outcome})
}

func (r *Recorder) SetVisible(el present.Element, visible bool) {
	r.add(Command{Op: "SetVisible", Element: el, Bool: visible})
}

var _ present.Presenter = (*Recorder)(nil)
