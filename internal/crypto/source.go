package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// SecureSource reads from crypto/rand.
type SecureSource struct{}

// IntN picks a uniform index using crypto/rand.
func (SecureSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic Source for reproducible output.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource creates a SeededSource from a PCG seed pair.
func NewSeededSource(seed1, seed2 uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed1, seed2))}
}

func (s *SeededSource) IntN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}
