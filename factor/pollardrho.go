// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factor

import (
	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/stats"
)

// pollardRho searches for a non-trivial factor of n using Pollard's ρ
// algorithm with Brent's cycle-finding improvement: y races ahead of x in
// power-of-two strides, and the gcd test is batched across up to 128
// steps at a time (via a running product, reduced mod n) instead of
// computed on every step. c is the offset of the iterating polynomial
// f(x) = x² + c (mod n); the caller retries with c+1 when a run fails
// to find a factor rather than treating that as a hard error — a bad c
// colliding with itself is expected, not exceptional.
func pollardRho(n *bigint.Int, c uint64, oc *stats.OperationCount) (*bigint.Int, bool) {
	one := bigint.One()
	if n.Cmp(bigint.NewFromUint64(4)) < 0 {
		return nil, false
	}

	f := func(v *bigint.Int) *bigint.Int {
		return bigint.Mod(bigint.Add(bigint.Mul(v, v), bigint.NewFromUint64(c)), n)
	}

	x := bigint.NewFromUint64(2)
	y := x.Clone()
	g := one.Clone()
	r := uint64(1)

	for g.Equal(one) {
		x = y.Clone()
		for i := uint64(0); i < r; i++ {
			y = f(y)
		}
		k := uint64(0)
		for k < r && g.Equal(one) {
			step := minUint64(128, r-k)
			product := one.Clone()
			for i := uint64(0); i < step; i++ {
				y = f(y)
				if oc != nil {
					oc.PollardRhoRounds++
				}
				product = bigint.Mod(bigint.Mul(product, absDiff(x, y)), n)
			}
			g = GCD(product, n, oc)
			k += step
		}
		r *= 2
		if r > 1<<20 {
			return nil, false
		}
	}

	if g.Equal(n) {
		// The batched gcd collapsed onto n itself: walk one step at a
		// time from x to isolate exactly where the cycle closed.
		ys := x.Clone()
		for {
			ys = f(ys)
			g = GCD(absDiff(x, ys), n, oc)
			if g.Cmp(one) > 0 {
				break
			}
			if ys.Equal(x) {
				return nil, false
			}
		}
	}

	if g.Equal(n) || g.Equal(one) {
		return nil, false
	}
	return g, true
}

func absDiff(a, b *bigint.Int) *bigint.Int {
	if a.Cmp(b) >= 0 {
		return bigint.Sub(a, b)
	}
	return bigint.Sub(b, a)
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. oc, if non-nil, counts the call toward the GCDs counter.
func GCD(a, b *bigint.Int, oc *stats.OperationCount) *bigint.Int {
	if oc != nil {
		oc.GCDs++
	}
	a, b = a.Clone(), b.Clone()
	for !b.IsZero() {
		a, b = b, bigint.Mod(a, b)
	}
	return a
}
