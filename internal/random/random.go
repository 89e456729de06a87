// Package random provides the randomness every generator draws from.
// Sources are injected so runs can be seeded and reproduced.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// Source is the subset of *rand.Rand the generators need.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewCrypto returns a ChaCha8 source seeded from crypto/rand.
func NewCrypto() Source {
	b, err := zcrypto.RandBytes(32)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}

	var seed [32]byte
	copy(seed[:], b)
	zcrypto.Erase(b)

	return rand.New(rand.NewChaCha8(seed))
}

// lockedSource serializes access to a shared source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so it is safe for concurrent use.
func Locked(src Source) Source {
	if l, ok := src.(*lockedSource); ok {
		return l
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// Pick returns a uniformly chosen element of s. s must be non-empty.
func Pick[T any](src Source, s []T) T {
	return s[src.IntN(len(s))]
}

// Between returns a uniform int in [lo, hi].
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
