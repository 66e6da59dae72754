// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factor

import (
	"sync"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
)

// jkissState is David Jones's JKISS generator: a linear congruential
// stream (x), an xor-shift stream (y), and a multiply-with-carry stream
// (z, c), combined by addition. It is not cryptographically strong — it
// is a fast, well-distributed source for the probabilistic steps of the
// cascade (Miller-Rabin base selection) — and is
// reseeded from the OS CSPRNG, never seeded from it alone, so the
// generator's internal state never becomes predictable run over run.
type jkissState struct {
	x, y, z, c uint32
}

func newJKISSState() *jkissState {
	return &jkissState{x: 123456789, y: 987654321, z: 43219876, c: 6543217}
}

// next produces one 32-bit draw from the combined streams.
func (s *jkissState) next() uint32 {
	s.x = 314527869*s.x + 1234567

	s.y ^= s.y << 5
	s.y ^= s.y >> 7
	s.y ^= s.y << 22

	t := uint64(4294584393)*uint64(s.z) + uint64(s.c)
	s.c = uint32(t >> 32)
	s.z = uint32(t)

	return s.x + s.y + s.z
}

func (s *jkissState) reseed() error {
	x, err := common.TrueRandomUint32()
	if err != nil {
		return err
	}
	var y uint32
	for y == 0 {
		y, err = common.TrueRandomUint32()
		if err != nil {
			return err
		}
	}
	z, err := common.TrueRandomUint32()
	if err != nil {
		return err
	}
	c, err := common.TrueRandomUint32()
	if err != nil {
		return err
	}
	s.x, s.y, s.z, s.c = x, y, z, c%698769068+1
	return nil
}

// Generator is the process-wide JKISS singleton: the only mutable
// global state in this module, reseeded from OS entropy on first use
// and every howOftenToReseed draws thereafter.
type Generator struct {
	mu               sync.Mutex
	state            *jkissState
	drawsSinceReseed int
}

const howOftenToReseed = 10000

var defaultGenerator = &Generator{state: newJKISSState()}

// Uint32 returns a uniform random value in [0, rangeN). rangeN must be
// > 0. Uses rejection sampling: draws at or above the largest multiple
// of rangeN not exceeding 2³²−1 are discarded and redrawn, to avoid
// biasing the low end of the range.
func (g *Generator) Uint32(rangeN uint32) (uint32, error) {
	if rangeN == 0 {
		return 0, common.ErrRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.drawsSinceReseed == 0 {
		if err := g.state.reseed(); err != nil {
			return 0, err
		}
	}
	g.drawsSinceReseed++
	if g.drawsSinceReseed >= howOftenToReseed {
		g.drawsSinceReseed = 0
	}

	const jkissMax = ^uint32(0)
	withinMultiple := jkissMax - jkissMax%rangeN
	draw := g.state.next()
	for draw >= withinMultiple {
		draw = g.state.next()
	}
	return draw % rangeN, nil
}

// rawUint32 returns one undiscarded 32-bit draw, reseeding first if due.
// Unlike Uint32, it applies no rejection sampling: callers assembling a
// multi-word accumulator reject the whole accumulator instead, once, at
// the end (see BigInt).
func (g *Generator) rawUint32() (uint32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.drawsSinceReseed == 0 {
		if err := g.state.reseed(); err != nil {
			return 0, err
		}
	}
	g.drawsSinceReseed++
	if g.drawsSinceReseed >= howOftenToReseed {
		g.drawsSinceReseed = 0
	}
	return g.state.next(), nil
}

// BigInt returns a uniform random value in [0, rangeN) for an arbitrary
// precision range: draw enough 32-bit words to cover rangeN's bit length,
// masking the top word down to that bit length, and reject (redrawing all
// words) whenever the assembled value falls outside [0, rangeN),
// preserving uniformity exactly as the native-width rejection sampling in
// Uint32 does.
func (g *Generator) BigInt(rangeN *bigint.Int) (*bigint.Int, error) {
	if rangeN.IsZero() {
		return nil, common.ErrRange
	}
	bits := rangeN.BitLen()
	words := (bits + 31) / 32
	topBits := uint(bits - 32*(words-1))
	two32 := bigint.Exp(bigint.NewFromUint64(2), 32)
	for {
		acc := bigint.Zero()
		place := bigint.One()
		for i := 0; i < words; i++ {
			word, err := g.rawUint32()
			if err != nil {
				return nil, err
			}
			if i == words-1 && topBits < 32 {
				word &= uint32(1)<<topBits - 1
			}
			acc = bigint.Add(acc, bigint.Mul(bigint.NewFromUint64(uint64(word)), place))
			place = bigint.Mul(place, two32)
		}
		if acc.Cmp(rangeN) < 0 {
			return acc, nil
		}
	}
}
