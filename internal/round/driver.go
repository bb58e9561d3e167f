package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/xtding233/chip-duel/internal/board"
)

// DefaultTickRate is the number of animation ticks per second.
const DefaultTickRate = 60

var (
	ErrDriverNotStarted = errors.New("driver: not started")
	ErrDriverStopped    = errors.New("driver: stopped")
)

// Event is input for the session, delivered through Driver.Submit.
type Event interface{ event() }

// DrawRequested asks to fill a player's slot.
type DrawRequested struct {
	Player board.Player
	Slot   int
}

// RestartRequested asks for a new round after GameOver.
type RestartRequested struct{}

// StateRequested only reads the session.
type StateRequested struct{}

// CatalogChanged asks the session to reload its catalog.
type CatalogChanged struct{}

func (DrawRequested) event()    {}
func (RestartRequested) event() {}
func (StateRequested) event()   {}
func (CatalogChanged) event()   {}

// Reply carries the result of an event. Snapshot is taken after the event
// was applied, whether it was accepted or not.
type Reply struct {
	Assignment *Assignment
	Snapshot   Snapshot
}

// DriverConfig controls the session loop.
type DriverConfig struct {
	Session   *Session
	TickRate  int
	QueueSize int
	Logger    *slog.Logger
}

type request struct {
	ev    Event
	reply chan response
}

type response struct {
	reply Reply
	err   error
}

// Driver owns a Session and applies events and animation ticks to it on a
// single goroutine.
type Driver struct {
	session  *Session
	queue    chan request
	interval time.Duration
	logger   *slog.Logger

	started atomic.Bool
	stopped atomic.Bool
	quit    chan struct{}
	done    chan struct{}
}

// NewDriver creates a Driver for cfg.Session.
func NewDriver(cfg DriverConfig) (*Driver, error) {
	if cfg.Session == nil {
		return nil, errors.New("driver: session is required")
	}
	rate := cfg.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		session:  cfg.Session,
		queue:    make(chan request, queueSize),
		interval: time.Second / time.Duration(rate),
		logger:   logger,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start launches the loop. It must be called once.
func (d *Driver) Start(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return errors.New("driver: start called multiple times")
	}
	go d.run(ctx)
	return nil
}

func (d *Driver) run(ctx context.Context) {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("driver: context cancelled, shutting down", "err", ctx.Err())
			return
		case <-d.quit:
			return
		case now := <-ticker.C:
			// ticker times carry the monotonic reading.
			d.session.Tick(now.Sub(last))
			last = now
		case req := <-d.queue:
			req.reply <- d.handle(req.ev)
		}
	}
}

func (d *Driver) handle(ev Event) response {
	var (
		res response
		err error
	)
	switch e := ev.(type) {
	case DrawRequested:
		var a Assignment
		a, err = d.session.Assign(e.Player, e.Slot)
		if err == nil {
			res.reply.Assignment = &a
		}
	case RestartRequested:
		err = d.session.Restart()
	case CatalogChanged:
		err = d.session.ReloadCatalog()
	case StateRequested:
	default:
		err = fmt.Errorf("driver: unknown event %T", ev)
	}
	if err != nil && !IsRejection(err) {
		d.logger.Error("driver: event failed", "event", fmt.Sprintf("%T", ev), "err", err)
	}
	res.err = err
	res.reply.Snapshot = d.session.Snapshot()
	return res
}

// Submit hands ev to the loop and waits for it to be applied.
func (d *Driver) Submit(ctx context.Context, ev Event) (Reply, error) {
	if !d.started.Load() {
		return Reply{}, ErrDriverNotStarted
	}
	if d.stopped.Load() {
		return Reply{}, ErrDriverStopped
	}
	req := request{ev: ev, reply: make(chan response, 1)}
	select {
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-d.done:
		return Reply{}, ErrDriverStopped
	case d.queue <- req:
	}
	select {
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-d.done:
		return Reply{}, ErrDriverStopped
	case res := <-req.reply:
		return res.reply, res.err
	}
}

// Stop ends the loop and waits for it to exit.
func (d *Driver) Stop(ctx context.Context) error {
	if !d.stopped.CompareAndSwap(false, true) {
		return errors.New("driver: stop called multiple times")
	}
	close(d.quit)
	if !d.started.Load() {
		return nil
	}
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the loop has exited.
func (d *Driver) Done() <-chan struct{} { return d.done }
