package pool

import (
	"errors"
	"fmt"
	"testing"

	"github.com/xtding233/chip-duel/internal/catalog"
)

func records(n int) []*catalog.Record {
	out := make([]*catalog.Record, n)
	for i := range out {
		out[i] = &catalog.Record{Name: fmt.Sprintf("c%02d", i), Power: i}
	}
	return out
}

func TestDrawEmptyCatalog(t *testing.T) {
	p := New(nil, NewSeededRNG(1), nil)
	if _, err := p.Draw(); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestDrawUniqueWithinRound(t *testing.T) {
	p := New(records(12), NewSeededRNG(42), nil)
	seen := make(map[*catalog.Record]bool)
	for i := 0; i < 10; i++ {
		r, err := p.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if seen[r] {
			t.Fatalf("record %s drawn twice", r.Name)
		}
		seen[r] = true
	}
	if p.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", p.Remaining())
	}
}

func TestDrawResetsWhenExhausted(t *testing.T) {
	p := New(records(3), NewSeededRNG(7), nil)
	for i := 0; i < 10; i++ {
		if _, err := p.Draw(); err != nil {
			t.Fatalf("draw %d: %v", i+1, err)
		}
		if i == 2 && p.Exhaustions() != 0 {
			t.Fatalf("pool reset before exhaustion")
		}
		if i == 3 && p.Exhaustions() != 1 {
			t.Fatalf("4th draw should reset the pool, exhaustions=%d", p.Exhaustions())
		}
	}
	if p.Exhaustions() != 3 {
		t.Fatalf("exhaustions = %d, want 3", p.Exhaustions())
	}
}

func TestReset(t *testing.T) {
	recs := records(5)
	p := New(recs, NewSeededRNG(3), nil)
	for i := 0; i < 4; i++ {
		_, _ = p.Draw()
	}
	p.Reset()
	if p.Remaining() != p.Size() {
		t.Fatalf("remaining = %d after reset, want %d", p.Remaining(), p.Size())
	}
	seen := make(map[*catalog.Record]bool)
	for range recs {
		r, err := p.Draw()
		if err != nil {
			t.Fatal(err)
		}
		seen[r] = true
	}
	if len(seen) != len(recs) || p.Exhaustions() != 0 {
		t.Fatalf("after reset drew %d distinct of %d, exhaustions=%d", len(seen), len(recs), p.Exhaustions())
	}
}

func TestDrawStatApprox(t *testing.T) {
	const n = 60000
	recs := records(4)
	rng := NewSeededRNG(42)
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		p := New(recs, rng, nil)
		r, _ := p.Draw()
		counts[r.Name]++
	}
	for _, r := range recs {
		freq := float64(counts[r.Name]) / n
		// should be around 0.25
		if diff := freq - 0.25; diff > 0.01 || diff < -0.01 {
			t.Fatalf("freq(%s)=%f not close to 0.25", r.Name, freq)
		}
	}
}

func TestHelpers(t *testing.T) {
	rng := NewSeededRNG(9)
	for i := 0; i < 1000; i++ {
		if v := IntN(rng, 3); v < 0 || v >= 3 {
			t.Fatalf("IntN out of range: %d", v)
		}
		if v := Range(rng, 1, 3); v < 1 || v >= 3 {
			t.Fatalf("Range out of range: %f", v)
		}
	}
	xs := []int{0, 1, 2, 3, 4, 5}
	Shuffle(rng, len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	sum := 0
	for _, x := range xs {
		sum += x
	}
	if sum != 15 {
		t.Fatalf("shuffle lost elements: %v", xs)
	}
}
