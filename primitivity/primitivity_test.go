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
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/stats"
)

func findPolyWithCoeffs(n int, p uint64, want []uint64) *polymodp.Poly {
	f := polymodp.InitialTrialPoly(n, p)
	for {
		c := f.Coeffs()
		match := true
		for i := range want {
			if c[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return f
		}
		if !f.Next() {
			return nil
		}
	}
}

func TestXToTheFourPlusXPlusOneIsPrimitive(t *testing.T) {
	t.Parallel()
	// x^4 + x + 1 over GF(2), a known primitive polynomial.
	f := findPolyWithCoeffs(4, 2, []uint64{1, 1, 0, 0})
	require.NotNil(t, f)

	var oc stats.OperationCount
	tester := New(2, 4, factor.DefaultGenerator(), &oc)
	v, err := tester.Test(f)
	require.NoError(t, err)
	assert.Equal(t, Primitive, v.Outcome)
}

func TestXToTheFourPlusXCubedPlusXSquaredPlusXPlusOneIsNotPrimitive(t *testing.T) {
	t.Parallel()
	// x^4+x^3+x^2+x+1 over GF(2): irreducible but x has order 5, not 15,
	// so it is not primitive. Over GF(2), r = 15, and x^15 = 1 is a
	// constant, so the order-r test passes; x^(15/3) = x^5 = 1 is caught
	// by the order-m test.
	f := findPolyWithCoeffs(4, 2, []uint64{1, 1, 1, 1})
	require.NotNil(t, f)

	var oc stats.OperationCount
	tester := New(2, 4, factor.DefaultGenerator(), &oc)
	v, err := tester.Test(f)
	require.NoError(t, err)
	assert.Equal(t, Rejected, v.Outcome)
	assert.Equal(t, StageOrderM, v.Stage)
}

func TestSkipRuleAgreesWithUnoptimisedCascade(t *testing.T) {
	t.Parallel()
	n, p := 4, uint64(2)
	f := polymodp.InitialTrialPoly(n, p)
	for {
		var ocA, ocB stats.OperationCount
		testerA := New(p, n, factor.DefaultGenerator(), &ocA, WithSkipRule(false))
		testerB := New(p, n, factor.DefaultGenerator(), &ocB, WithSkipRule(true))

		vA, err := testerA.Test(f)
		require.NoError(t, err)
		vB, err := testerB.Test(f)
		require.NoError(t, err)

		assert.Equal(t, vA.Outcome, vB.Outcome, "skip rule must not change the decision for %v", f.Coeffs())

		if !f.Next() {
			break
		}
	}
}
