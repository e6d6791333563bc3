// Package dice provides the seedable randomness used for score draws.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness provider for draws.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Roller draws integers uniformly from inclusive ranges.
type Roller struct {
	src Source
}

// NewRoller wraps src. The roller owns no other state.
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeededRoller returns a roller over a private *rand.Rand seeded with seed.
func NewSeededRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Roll returns a uniform draw from [lo, hi]. It panics if hi < lo.
func (r *Roller) Roll(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("dice: invalid range [%d, %d]", lo, hi))
	}
	return lo + r.src.Intn(hi-lo+1)
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
