// Package ws streams presenter commands to websocket clients as JSON and
// accepts player input from them.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/present"
	"github.com/xtding233/chip-duel/internal/round"
)

const sendBuffer = 256

// Submitter applies input events. *round.Driver implements it.
type Submitter interface {
	Submit(ctx context.Context, ev round.Event) (round.Reply, error)
}

type client struct {
	id     string
	send   chan []byte
	closed chan struct{}
	once   sync.Once
}

func (c *client) close() { c.once.Do(func() { close(c.closed) }) }

// Hub is a present.Presenter that broadcasts every command to connected
// clients. Slow clients are dropped rather than blocking the caller.
type Hub struct {
	logger   *slog.Logger
	insecure bool

	mu      sync.RWMutex
	clients map[string]*client
	match   Submitter
}

// NewHub returns an empty Hub. insecureOrigin skips the websocket origin
// check, for local development.
func NewHub(logger *slog.Logger, insecureOrigin bool) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger, insecure: insecureOrigin, clients: make(map[string]*client)}
}

// Bind sets where client input is sent. It must be called before serving.
func (h *Hub) Bind(match Submitter) {
	h.mu.Lock()
	h.match = match
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: h.insecure})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to accept", "err", err)
		return
	}
	c := &client{id: uuid.NewString(), send: make(chan []byte, sendBuffer), closed: make(chan struct{})}
	h.add(c)
	defer h.remove(c)
	h.logger.DebugContext(r.Context(), "accepted websocket client", "client_id", c.id)

	h.enqueue(c, Frame{Op: "hello", Args: map[string]any{"client_id": c.id}})
	if match := h.submitter(); match != nil {
		if reply, err := match.Submit(r.Context(), round.StateRequested{}); err == nil {
			h.enqueue(c, Frame{Op: "state", Args: map[string]any{"state": viewOf(reply)}})
		}
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { return h.writeLoop(ctx, conn, c) })
	g.Go(func() error { return h.readLoop(ctx, conn, c) })
	err = g.Wait()

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		_ = conn.CloseNow()
	default:
		if err != nil && !errors.Is(err, context.Canceled) {
			h.logger.Debug("websocket client closed", "client_id", c.id, "err", err)
		}
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
}

func (h *Hub) writeLoop(ctx context.Context, conn *websocket.Conn, c *client) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.closed:
			return errors.New("client dropped")
		case msg := <-c.send:
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return err
			}
		}
	}
}

func (h *Hub) readLoop(ctx context.Context, conn *websocket.Conn, c *client) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		h.handleInput(ctx, c, data)
	}
}

func (h *Hub) handleInput(ctx context.Context, c *client, data []byte) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		h.enqueue(c, replyFrame(nil, "malformed message"))
		return
	}
	ev, ok := in.event()
	if !ok {
		h.enqueue(c, replyFrame(nil, "unknown op "+in.Op))
		return
	}
	match := h.submitter()
	if match == nil {
		h.enqueue(c, replyFrame(nil, "match not running"))
		return
	}
	reply, err := match.Submit(ctx, ev)
	if err != nil && !round.IsRejection(err) {
		h.enqueue(c, replyFrame(nil, err.Error()))
		return
	}
	view := viewOf(reply)
	if err != nil {
		h.enqueue(c, replyFrame(&view, err.Error()))
		return
	}
	h.enqueue(c, replyFrame(&view, ""))
}

func replyFrame(state *stateView, errText string) Frame {
	args := map[string]any{"ok": errText == ""}
	if errText != "" {
		args["error"] = errText
	}
	if state != nil {
		args["state"] = state
	}
	return Frame{Op: "reply", Args: args}
}

func (h *Hub) submitter() Submitter {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.match
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	c.close()
}

func (h *Hub) enqueue(c *client, f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "op", f.Op, "err", err)
		return
	}
	h.push(c, data)
}

func (h *Hub) push(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Warn("websocket client too slow, dropping", "client_id", c.id)
		c.close()
	}
}

func (h *Hub) broadcast(f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("encode frame", "op", f.Op, "err", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		h.push(c, data)
	}
}

func slotArgs(p board.Player, slot int) map[string]any {
	return map[string]any{"player": int(p) + 1, "slot": slot + 1}
}

func (h *Hub) SetSlotVisual(p board.Player, slot int, v catalog.Visual, scale float64) {
	args := slotArgs(p, slot)
	args["visual"] = string(v)
	args["scale"] = scale
	h.broadcast(Frame{Op: "slot_visual", Args: args})
}

func (h *Hub) SetSlotScale(p board.Player, slot int, scale float64) {
	args := slotArgs(p, slot)
	args["scale"] = scale
	h.broadcast(Frame{Op: "slot_scale", Args: args})
}

func (h *Hub) SetSlotAlpha(p board.Player, slot int, alpha float64) {
	args := slotArgs(p, slot)
	args["alpha"] = alpha
	h.broadcast(Frame{Op: "slot_alpha", Args: args})
}

func (h *Hub) SetSlotShadow(p board.Player, slot int, alpha float64, visible bool) {
	args := slotArgs(p, slot)
	args["alpha"] = alpha
	args["visible"] = visible
	h.broadcast(Frame{Op: "slot_shadow", Args: args})
}

func (h *Hub) SetScoreLabel(p board.Player, slot int, value int) {
	args := slotArgs(p, slot)
	args["value"] = value
	h.broadcast(Frame{Op: "score_label", Args: args})
}

func (h *Hub) ShowDescription(text string) {
	h.broadcast(Frame{Op: "description", Args: map[string]any{"text": text}})
}

func (h *Hub) PlaySound(clip catalog.Audio, pitch float64) {
	h.broadcast(Frame{Op: "sound", Args: map[string]any{"clip": string(clip), "pitch": pitch}})
}

func (h *Hub) ShowTiles(prompt string, tiles []present.Tile) {
	list := make([]map[string]any, len(tiles))
	for i, t := range tiles {
		list[i] = map[string]any{"index": t.Index, "name": t.Name, "face": string(t.Face), "back": string(t.Back)}
	}
	h.broadcast(Frame{Op: "tiles", Args: map[string]any{"prompt": prompt, "tiles": list}})
}

func (h *Hub) FlipTile(tile int, toFace bool) {
	h.broadcast(Frame{Op: "tile_flip", Args: map[string]any{"tile": tile, "face": toFace}})
}

func (h *Hub) SetTileScaleX(tile int, sx float64) {
	h.broadcast(Frame{Op: "tile_scale", Args: map[string]any{"tile": tile, "scale_x": sx}})
}

func (h *Hub) ShowEndScreen(outcome string) {
	h.broadcast(Frame{Op: "end_screen", Args: map[string]any{"outcome": outcome, "prompt": present.RestartPrompt}})
}

func (h *Hub) SetVisible(el present.Element, visible bool) {
	h.broadcast(Frame{Op: "visible", Args: map[string]any{"element": string(el), "visible": visible}})
}

var _ present.Presenter = (*Hub)(nil)
