// Package pool tracks which catalog records can still be drawn this round.
package pool

import (
	"errors"
	"log/slog"

	"github.com/xtding233/chip-duel/internal/catalog"
)

var ErrEmptyCatalog = errors.New("pool: catalog is empty")

// Pool draws records uniformly without replacement. When every record has been
// drawn it refills itself from the full catalog.
type Pool struct {
	all      []*catalog.Record
	eligible []*catalog.Record
	rng      RandomSource
	logger   *slog.Logger
	resets   int
}

// New creates a pool over records. A nil rng falls back to DefaultRNG.
func New(records []*catalog.Record, rng RandomSource, logger *slog.Logger) *Pool {
	if rng == nil {
		rng = DefaultRNG()
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		all:    append([]*catalog.Record(nil), records...),
		rng:    rng,
		logger: logger,
	}
	p.Reset()
	return p
}

// Draw removes and returns one eligible record.
func (p *Pool) Draw() (*catalog.Record, error) {
	if len(p.all) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(p.eligible) == 0 {
		p.logger.Warn("draw pool exhausted, resetting to full catalog", "catalog", len(p.all))
		p.resets++
		p.Reset()
	}
	i := IntN(p.rng, len(p.eligible))
	rec := p.eligible[i]
	last := len(p.eligible) - 1
	p.eligible[i] = p.eligible[last]
	p.eligible[last] = nil
	p.eligible = p.eligible[:last]
	return rec, nil
}

// Reset restores full eligibility.
func (p *Pool) Reset() {
	p.eligible = append(p.eligible[:0], p.all...)
}

// Remaining reports how many records can be drawn before the next refill.
func (p *Pool) Remaining() int { return len(p.eligible) }

// Size is the full catalog size.
func (p *Pool) Size() int { return len(p.all) }

// Exhaustions counts automatic refills since the pool was created.
func (p *Pool) Exhaustions() int { return p.resets }
