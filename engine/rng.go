package engine

import "github.com/piotronm/tourney-backend-sub000/models"

// Rand is a deterministic pseudo-random stream (mulberry32). The engine
// contract is byte-identical output for a given seed on every platform and
// run, which math/rand does not promise across Go releases, so the generator
// is fixed here. State is 32-bit; seeds are truncated.
type Rand struct {
	state uint32
}

// NewRand returns a stream seeded with the low 32 bits of seed.
func NewRand(seed int64) *Rand {
	return &Rand{state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// Intn returns an int in [0, n) drawn from the stream. n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Shuffle performs a Fisher-Yates shuffle driven solely by the stream.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// ShuffleTeams returns a shuffled copy, leaving the input untouched.
func ShuffleTeams(teams []models.Team, rng *Rand) []models.Team {
	out := make([]models.Team, len(teams))
	copy(out, teams)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
