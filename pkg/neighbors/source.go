package neighbors

import "math/rand/v2"

// Source supplies the random booleans consumed during edge assignment.
// Exactly one boolean is drawn per internal edge, in a fixed row-major
// order, so two sources that yield the same sequence produce the same
// puzzle.
type Source interface {
	Bool() bool
}

type pcgSource struct {
	rng *rand.Rand
}

// NewSource returns a deterministic Source seeded with the given value.
// The same seed always yields the same boolean sequence.
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (s *pcgSource) Bool() bool {
	return s.rng.Uint64()&1 == 1
}
