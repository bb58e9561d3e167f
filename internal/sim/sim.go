// Package sim estimates how a catalog plays out by simulating many rounds
// with the real pool and scoring rules.
package sim

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/pool"
)

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// Report is the outcome of a simulation run.
type Report struct {
	Rounds      int
	P1Wins      int
	P2Wins      int
	Ties        int
	P1Points    Stats
	P2Points    Stats
	TiedSlots   Stats
	Exhaustions int // pool resets across all rounds
	Appearances map[string]int
}

// WinRate returns the fraction of rounds p won outright.
func (r Report) WinRate(p board.Player) float64 {
	if r.Rounds == 0 {
		return 0
	}
	if p == board.Player1 {
		return float64(r.P1Wins) / float64(r.Rounds)
	}
	return float64(r.P2Wins) / float64(r.Rounds)
}

// TieRate returns the fraction of drawn rounds.
func (r Report) TieRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Rounds)
}

// Run plays rounds full rounds. Slots are filled in a random order, one
// pool per round, matching how a live match draws.
func Run(records []*catalog.Record, rounds int, rng pool.RandomSource) (Report, error) {
	if len(records) == 0 {
		return Report{}, pool.ErrEmptyCatalog
	}
	if rounds <= 0 {
		return Report{}, errors.New("sim: rounds must be positive")
	}
	if rng == nil {
		rng = pool.DefaultRNG()
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := pool.New(records, rng, quiet)

	rep := Report{Rounds: rounds, Appearances: make(map[string]int, len(records))}
	p1 := make([]int, rounds)
	p2 := make([]int, rounds)
	ties := make([]int, rounds)

	order := make([]int, 2*board.Slots)
	for i := range order {
		order[i] = i
	}
	for r := 0; r < rounds; r++ {
		p.Reset()
		var b board.Board
		pool.Shuffle(rng, len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, k := range order {
			rec, err := p.Draw()
			if err != nil {
				return Report{}, err
			}
			if err := b.Fill(board.Player(k/board.Slots), k%board.Slots, rec); err != nil {
				return Report{}, err
			}
			rep.Appearances[rec.Name]++
		}
		res := board.Score(&b)
		p1[r], p2[r] = res.P1Total, res.P2Total
		ties[r] = res.P1Total + res.P2Total - board.Slots
		switch res.Outcome() {
		case board.OutcomePlayer1:
			rep.P1Wins++
		case board.OutcomePlayer2:
			rep.P2Wins++
		default:
			rep.Ties++
		}
	}
	rep.Exhaustions = p.Exhaustions()
	rep.P1Points = calcStats(p1)
	rep.P2Points = calcStats(p2)
	rep.TiedSlots = calcStats(ties)
	return rep, nil
}

// calcStats computes mean, population variance and interpolated percentiles.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(cp[n-1])
		}
		f := pos - float64(i)
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
