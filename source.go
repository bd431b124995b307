package handlemap

import "math/rand/v2"

// Source supplies the 64 random bits drawn for each Insert.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64() uint64
}

// processSource draws from the shared math/rand/v2 generator. It is the
// default for New: uniformly distributed and safe to draw from anywhere in
// the process, but not cryptographically strong.
type processSource struct{}

func (processSource) Uint64() uint64 {
	return rand.Uint64()
}

// NewSeededSource returns a deterministic Source. Two sources built from
// the same seed issue the same handle sequence, which pins handles in tests
// and replays recorded sessions.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}
