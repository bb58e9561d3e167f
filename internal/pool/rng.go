package pool

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	// Read 53bit random => [0, 1)
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (tests, replays)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// IntN returns a uniform index in [0, n). n must be > 0.
func IntN(rng RandomSource, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range returns a uniform value in [lo, hi).
func Range(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Shuffle is a Fisher-Yates shuffle driven by rng.
func Shuffle(rng RandomSource, n int, swap func(i, j int)) {
	for i := 0; i < n; i++ {
		j := i + IntN(rng, n-i)
		swap(i, j)
	}
}
