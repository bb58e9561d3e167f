// Package round owns one match: the slot assignment engine, the phase machine
// and the preview cycle. A Session is not safe for concurrent use; Driver
// serializes input and ticks onto one goroutine.
package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/chip-duel/internal/anim"
	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/present"
)

// Round timings and preview sizing.
const (
	ResolveDelay  = 3 * time.Second
	PreviewDelay  = 500 * time.Millisecond
	PreviewHold   = 4 * time.Second
	PreviewSize   = 40
	PreviewGroups = 4

	MinPlacePitch = 1.0
	MaxPlacePitch = 3.0
)

const recordTimeout = 5 * time.Second

// Drawer hands out records for assignment. *pool.Pool is the default.
type Drawer interface {
	Draw() (*catalog.Record, error)
	Reset()
	Remaining() int
	Size() int
}

// Config wires a Session. Provider and Presenter are required.
type Config struct {
	Provider  catalog.Provider
	Presenter present.Presenter
	RNG       pool.RandomSource
	Logger    *slog.Logger
	Recorder  Recorder         // optional, called on the driver goroutine; see BufferedRecorder
	Drawer    Drawer           // optional, replaces the catalog pool
	Now       func() time.Time // optional
}

// Session is the aggregate for one match and its restarts.
type Session struct {
	provider catalog.Provider
	pres     present.Presenter
	reg      *present.Registry
	rng      pool.RandomSource
	logger   *slog.Logger
	rec      Recorder
	now      func() time.Time
	sched    *anim.Scheduler

	records  []*catalog.Record
	pending  []*catalog.Record
	drawer   Drawer
	ownPool  bool
	cardBack catalog.Visual
	sounds   catalog.SoundSet

	roundID string
	phase   Phase
	board   board.Board
	result  *board.Result
	alpha   [2][board.Slots]float64

	tiles    []*catalog.Record
	groups   [][]int
	faceGoal []bool // face each tile shows or is turning to
}

// NewSession loads the catalog and opens the first round in PreRound.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Provider == nil {
		return nil, errors.New("round: asset provider is required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("round: presenter is required")
	}
	records, err := cfg.Provider.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, pool.ErrEmptyCatalog
	}

	s := &Session{
		provider: cfg.Provider,
		pres:     cfg.Presenter,
		reg:      present.NewDefaultRegistry(cfg.Presenter),
		rng:      cfg.RNG,
		logger:   cfg.Logger,
		rec:      cfg.Recorder,
		now:      cfg.Now,
		sched:    anim.NewScheduler(),
		drawer:   cfg.Drawer,
	}
	if s.rng == nil {
		s.rng = pool.DefaultRNG()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.ownPool = s.drawer == nil
	for _, p := range board.Players {
		for i := range s.alpha[p] {
			s.alpha[p][i] = board.AlphaFull
		}
	}
	s.pending = records
	s.applyCatalog()

	s.roundID = uuid.NewString()
	s.enterPreRound()
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// RoundID identifies the current round.
func (s *Session) RoundID() string { return s.roundID }

// Board returns a copy of the slot grid.
func (s *Session) Board() board.Board { return s.board }

// Result returns the scoring of the current round once the board is full.
func (s *Session) Result() (board.Result, bool) {
	if s.result == nil {
		return board.Result{}, false
	}
	return *s.result, true
}

// Scheduler exposes the animation scheduler, mainly for inspection.
func (s *Session) Scheduler() *anim.Scheduler { return s.sched }

// Tick advances animations and timers by dt.
func (s *Session) Tick(dt time.Duration) { s.sched.Tick(dt) }

// ReloadCatalog reloads records from the provider. In PreRound the new catalog
// replaces the preview at once; otherwise it takes effect on the next restart.
func (s *Session) ReloadCatalog() error {
	records, err := s.provider.LoadCatalog()
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	if len(records) == 0 {
		return pool.ErrEmptyCatalog
	}
	s.pending = records
	if s.phase == PhasePreRound {
		s.sched.CancelAll()
		s.applyCatalog()
		s.enterPreRound()
		s.logger.Info("catalog reloaded", "records", len(records))
		return nil
	}
	s.logger.Info("catalog reload staged for next round", "records", len(records))
	return nil
}

func (s *Session) applyCatalog() {
	if s.pending == nil {
		return
	}
	s.records = s.pending
	s.pending = nil
	s.cardBack = s.provider.CardBack()
	s.sounds = s.provider.Sounds()
	if s.ownPool {
		s.drawer = pool.New(s.records, s.rng, s.logger)
	}
}

func (s *Session) setPhase(next Phase) {
	if s.phase == next {
		return
	}
	s.logger.Info("phase changed", "round", s.roundID, "from", s.phase.String(), "to", next.String())
	s.phase = next
}

func (s *Session) record() {
	if s.rec == nil || s.result == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.rec.RecordRound(ctx, s.summary()); err != nil {
		s.logger.Error("record round", "round", s.roundID, "err", err)
	}
}

func (s *Session) summary() Summary {
	out := Summary{
		RoundID:    s.roundID,
		FinishedAt: s.now(),
		P1Total:    s.result.P1Total,
		P2Total:    s.result.P2Total,
		Outcome:    s.result.Outcome(),
	}
	for _, p := range board.Players {
		for i := 0; i < board.Slots; i++ {
			slot := s.board.Slot(p, i)
			var name string
			if slot.Occupant != nil {
				name = slot.Occupant.Name
			}
			out.Slots[p][i] = SummarySlot{Name: name, Power: slot.Power(), Won: s.result.Won(p, i)}
		}
	}
	return out
}
