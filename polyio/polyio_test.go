// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package polyio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primpoly/primpoly/factor"
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/primitivity"
)

func TestParseXToTheFourPlusXPlusOneIsPrimitive(t *testing.T) {
	t.Parallel()
	coeffs, p, err := Parse("x^4 + x + 1, 2")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), p)
	assert.Equal(t, []uint64{1, 1, 0, 0, 1}, coeffs)

	f := polymodp.InitialTrialPoly(4, 2)
	for {
		if sameCoeffs(t, f.Coeffs(), coeffs) {
			break
		}
		require.True(t, f.Next())
	}

	gen := factor.DefaultGenerator()
	v, err := primitivity.New(p, 4, gen, nil).Test(f)
	require.NoError(t, err)
	assert.Equal(t, primitivity.Primitive, v.Outcome)
}

func TestParseXToTheFourPlusXCubedPlusXSquaredPlusXPlusOneIsNotPrimitive(t *testing.T) {
	t.Parallel()
	coeffs, p, err := Parse("x^4 + x^3 + x^2 + x + 1, 2")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1, 1, 1, 1}, coeffs)

	f := polymodp.InitialTrialPoly(4, 2)
	for {
		if sameCoeffs(t, f.Coeffs(), coeffs) {
			break
		}
		require.True(t, f.Next())
	}

	gen := factor.DefaultGenerator()
	v, err := primitivity.New(p, 4, gen, nil).Test(f)
	require.NoError(t, err)
	assert.Equal(t, primitivity.Rejected, v.Outcome)
}

func sameCoeffs(t *testing.T, a, b []uint64) bool {
	t.Helper()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseDefaultsModulusToTwo(t *testing.T) {
	t.Parallel()
	coeffs, p, err := Parse("x + 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), p)
	assert.Equal(t, []uint64{1, 1}, coeffs)
}

func TestFormatRoundTripsThroughParse(t *testing.T) {
	t.Parallel()
	coeffs := []uint64{1, 1, 0, 0, 1}
	s := Format(coeffs, 2)
	gotCoeffs, gotP, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, coeffs, gotCoeffs)
	assert.Equal(t, uint64(2), gotP)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	t.Parallel()
	_, _, err := Parse("")
	assert.Error(t, err)
}
