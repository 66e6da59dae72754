// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primitivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primpoly/primpoly/factor"
	"github.com/primpoly/primpoly/polymodf"
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/stats"
)

// bruteForceOrder multiplies x by itself, one step at a time, until it
// returns to 1 — the slow, unambiguous definition of "order of x mod
// f." It returns 0 when x has no order (x divides f, so its powers
// never reach 1), detected by passing pⁿ−1 steps, the largest order a
// unit can have. It exists only so crosscheck tests can confirm the
// cascade's verdict agrees with brute force on a feasible budget
// (pⁿ <= 2^20); it is never used to decide primitivity in the real
// driver loop.
func bruteForceOrder(f *polymodp.Poly) uint64 {
	rt := f.ReductionTable()
	n := f.Degree()
	p := f.P()
	one := make([]uint64, n)
	one[0] = 1
	limit := uint64(1)
	for i := 0; i < n; i++ {
		limit *= p
	}

	// The residue class "x" itself, as a length-n coefficient vector;
	// only called with n >= 2 in this file's test cases.
	cur := make([]uint64, n)
	cur[1] = 1
	order := uint64(1)
	for order < limit {
		isOne := true
		for i := range cur {
			if cur[i] != one[i] {
				isOne = false
				break
			}
		}
		if isOne {
			return order
		}
		cur = polymodf.TimesX(rt, cur, p)
		order++
	}
	return 0
}

// TestCascadeAgreesWithBruteForceOrder exercises the crosscheck
// property: over a feasible budget, the fast cascade's verdict must
// agree with a brute-force computation of x's order.
func TestCascadeAgreesWithBruteForceOrder(t *testing.T) {
	t.Parallel()
	cases := []struct {
		p uint64
		n int
	}{
		{2, 2},
		{2, 3},
		{2, 4},
		{3, 2},
		{3, 3},
	}

	for _, c := range cases {
		pn := uint64(1)
		for i := 0; i < c.n; i++ {
			pn *= c.p
		}
		require.LessOrEqual(t, pn, uint64(1<<20), "keep the brute-force budget feasible")

		f := polymodp.InitialTrialPoly(c.n, c.p)
		for {
			var oc stats.OperationCount
			tester := New(c.p, c.n, factor.DefaultGenerator(), &oc)
			v, err := tester.Test(f)
			require.NoError(t, err)

			wantOrder := pn - 1
			gotOrder := bruteForceOrder(f)
			isPrimitiveByBruteForce := gotOrder == wantOrder

			assert.Equal(t, isPrimitiveByBruteForce, v.Outcome == Primitive,
				"p=%d n=%d coeffs=%v: cascade=%v bruteForceOrder=%d want=%d",
				c.p, c.n, f.Coeffs(), v.Outcome, gotOrder, wantOrder)

			if !f.Next() {
				break
			}
		}
	}
}
