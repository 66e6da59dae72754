// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primpoly/primpoly/factor"
	"github.com/primpoly/primpoly/primitivity"
)

func TestFindOnePAndFourOverGF2(t *testing.T) {
	t.Parallel()
	f, oc, err := FindOne(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1, 0, 0, 1}, f.Coeffs())
	assert.Greater(t, oc.PolysTested, int64(0))
}

func TestFindAllPAndFourOverGF2(t *testing.T) {
	t.Parallel()
	fs, _, err := FindAll(2, 4)
	require.NoError(t, err)
	// phi(2^4-1)/4 = phi(15)/4 = 8/4 = 2.
	assert.Len(t, fs, 2)
	for _, f := range fs {
		gen := factor.DefaultGenerator()
		tester := primitivity.New(2, 4, gen, nil)
		v, err := tester.Test(f)
		require.NoError(t, err)
		assert.Equal(t, primitivity.Primitive, v.Outcome)
	}
}

func TestFindAllPAndSixOverGF2(t *testing.T) {
	t.Parallel()
	fs, _, err := FindAll(2, 6)
	require.NoError(t, err)
	// phi(2^6-1)/6 = phi(63)/6 = 36/6 = 6.
	assert.Len(t, fs, 6)
}

func TestFindAllPAndThreeOverGF3(t *testing.T) {
	t.Parallel()
	fs, _, err := FindAll(3, 3)
	require.NoError(t, err)
	// phi(3^3-1)/3 = phi(26)/3 = 12/3 = 4.
	assert.Len(t, fs, 4)
}

func TestFindOnePAndNineteenOverGF13(t *testing.T) {
	if testing.Short() {
		t.Skip("factoring 13^19-1 from scratch is expensive; skipped under -short")
	}
	t.Parallel()
	f, _, err := FindOne(13, 19)
	require.NoError(t, err)

	gen := factor.DefaultGenerator()
	tester := primitivity.New(13, 19, gen, nil)
	v, err := tester.Test(f)
	require.NoError(t, err)
	assert.Equal(t, primitivity.Primitive, v.Outcome)
}
