package present

import (
	"context"
	"log/slog"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
)

// LogPresenter writes every command to a structured logger. Per-frame
// commands go to a lower level than discrete ones.
type LogPresenter struct {
	logger     *slog.Logger
	frameLevel slog.Level
}

func NewLogPresenter(logger *slog.Logger) *LogPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPresenter{logger: logger, frameLevel: slog.LevelDebug - 4}
}

func (l *LogPresenter) frame(msg string, args ...any) {
	l.logger.Log(context.Background(), l.frameLevel, msg, args...)
}

func (l *LogPresenter) SetSlotVisual(p board.Player, slot int, v catalog.Visual, scale float64) {
	l.logger.Debug("slot visual", "player", p.String(), "slot", slot, "visual", string(v), "scale", scale)
}

func (l *LogPresenter) SetSlotScale(p board.Player, slot int, scale float64) {
	l.frame("slot scale", "player", p.String(), "slot", slot, "scale", scale)
}

func (l *LogPresenter) SetSlotAlpha(p board.Player, slot int, alpha float64) {
	l.frame("slot alpha", "player", p.String(), "slot", slot, "alpha", alpha)
}

func (l *LogPresenter) SetSlotShadow(p board.Player, slot int, alpha float64, visible bool) {
	l.frame("slot shadow", "player", p.String(), "slot", slot, "alpha", alpha, "visible", visible)
}

func (l *LogPresenter) SetScoreLabel(p board.Player, slot int, value int) {
	l.logger.Debug("score label", "player", p.String(), "slot", slot, "value", value)
}

func (l *LogPresenter) ShowDescription(text string) {
	l.logger.Info("description", "text", text)
}

func (l *LogPresenter) PlaySound(clip catalog.Audio, pitch float64) {
	l.logger.Debug("sound", "clip", string(clip), "pitch", pitch)
}

func (l *LogPresenter) ShowTiles(prompt string, tiles []Tile) {
	l.logger.Info("preview", "prompt", prompt, "tiles", len(tiles))
}

func (l *LogPresenter) FlipTile(tile int, toFace bool) {
	l.logger.Debug("tile flip", "tile", tile, "face", toFace)
}

func (l *LogPresenter) SetTileScaleX(tile int, sx float64) {
	l.frame("tile scale", "tile", tile, "sx", sx)
}

func (l *LogPresenter) ShowEndScreen(outcome string) {
	l.logger.Info("end screen", "outcome", outcome, "prompt", RestartPrompt)
}

func (l *LogPresenter) SetVisible(el Element, visible bool) {
	l.logger.Debug("visibility", "element", string(el), "visible", visible)
}
