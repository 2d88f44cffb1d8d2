// Package razlevel draws the integer levels a raz.Zipper uses as skip-list
// priorities. The core (raztree, razstream, raz) never generates a level
// itself — per the design note that a global RNG must never be hidden
// inside the core — so this package exists purely as the ambient
// convenience callers reach for instead of wiring their own.
package razlevel

import (
	"math/rand"

	lfsr "github.com/taylorza/go-lfsr"
)

// Source supplies raw entropy a level draw can consume. Callers who already
// have their own RNG wire it in here instead of going through LFSR.
type Source interface {
	Uint32() uint32
}

// Geometric draws a non-negative level from a geometric distribution with
// parameter 1/2: it counts how many low-order one-bits src.Uint32() starts
// with, so P(level == k) == 1/2^(k+1). This keeps expected subtree sizes
// balanced when used as a raz insertion level.
func Geometric(src Source) int {
	level := 0
	r := src.Uint32()
	for r&1 == 1 {
		r >>= 1
		level++
	}
	return level
}

// LFSR is a Source backed by a 32-bit linear-feedback shift register,
// seeded once from math/rand. It produces a long non-repeating sequence
// of values rather than independent draws, which is fine for level
// generation: Geometric only consumes the low bits of each value.
type LFSR struct {
	gen *lfsr.Lfsr32
}

// NewLFSR seeds a fresh LFSR-backed Source.
func NewLFSR() *LFSR {
	return &LFSR{gen: lfsr.NewLfsr32(rand.Uint32())}
}

// Uint32 implements Source.
func (l *LFSR) Uint32() uint32 {
	v, restarted := l.gen.Next()
	if restarted {
		panic("razlevel: lfsr exhausted its period and restarted")
	}
	return v
}

// Default returns a ready-to-use level generator backed by a fresh LFSR, for
// callers who don't care to wire their own Source.
func Default() func() int {
	src := NewLFSR()
	return func() int { return Geometric(src) }
}
