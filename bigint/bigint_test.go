// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
	"github.com/primpoly/primpoly/internal"
)

func TestParseStringRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		// Build a random decimal string of up to 60 digits, drawn from
		// [0, 10^200) in spirit: exercise lengths well beyond a native
		// uint64 or two base-B digits.
		n := 1 + rng.Intn(60)
		digits := make([]byte, n)
		digits[0] = byte('1' + rng.Intn(9))
		for j := 1; j < n; j++ {
			digits[j] = byte('0' + rng.Intn(10))
		}
		s := string(digits)

		x, err := bigint.ParseString(s)
		require.NoError(t, err)
		assert.Equal(t, s, x.String())
	}
}

func TestParseStringZero(t *testing.T) {
	t.Parallel()
	x, err := bigint.ParseString("0")
	require.NoError(t, err)
	assert.Equal(t, "0", x.String())
	assert.True(t, x.IsZero())
}

func TestParseStringRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "12x4", "-5", "1 2"} {
		_, err := bigint.ParseString(s)
		assert.ErrorIs(t, err, common.ErrRange, "input %q", s)
	}
}

func TestAddSubMulAgainstNativeArithmetic(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a := uint64(rng.Int63n(1 << 40))
		b := uint64(rng.Int63n(1 << 40))
		x, y := bigint.NewFromUint64(a), bigint.NewFromUint64(b)

		sum := new(bigint.Int).Add(x, y)
		assert.Equal(t, a+b, sum.Uint64())

		prod := new(bigint.Int).Mul(x, y)
		assert.Equal(t, a*b, prod.Uint64())

		if a >= b {
			diff := new(bigint.Int).Sub(x, y)
			assert.Equal(t, a-b, diff.Uint64())
		} else {
			diff := new(bigint.Int).Sub(y, x)
			assert.Equal(t, b-a, diff.Uint64())
		}
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	t.Parallel()
	x := bigint.NewFromUint64(3)
	y := bigint.NewFromUint64(5)
	has, err := internal.ExpectPanic(common.ErrUnderflow, func() {
		new(bigint.Int).Sub(x, y)
	})
	assert.True(t, has)
	assert.NoError(t, err)
}

func TestDivModZeroDivisorPanics(t *testing.T) {
	t.Parallel()
	x := bigint.NewFromUint64(10)
	has, err := internal.ExpectPanic(common.ErrZeroDivide, func() {
		new(bigint.Int).DivMod(x, bigint.Zero())
	})
	assert.True(t, has)
	assert.NoError(t, err)
}

// TestModDistributesOverMulAndAdd checks that for random a, b, m with
// m > 0, (a*b) mod m == ((a mod m) * (b mod m)) mod m, and likewise
// for a+b.
func TestModDistributesOverMulAndAdd(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		a := bigint.NewFromUint64(uint64(rng.Int63n(1 << 30)))
		b := bigint.NewFromUint64(uint64(rng.Int63n(1 << 30)))
		m := bigint.NewFromUint64(uint64(1 + rng.Int63n(1<<20)))

		lhs := bigint.Mod(bigint.Mul(a, b), m)
		rhs := bigint.Mod(bigint.Mul(bigint.Mod(a, m), bigint.Mod(b, m)), m)
		assert.Equal(t, lhs.String(), rhs.String())

		lhsAdd := bigint.Mod(bigint.Add(a, b), m)
		rhsAdd := bigint.Mod(bigint.Add(bigint.Mod(a, m), bigint.Mod(b, m)), m)
		assert.Equal(t, lhsAdd.String(), rhsAdd.String())
	}
}

func TestSqrtFloor(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 300; i++ {
		n := uint64(rng.Int63n(1 << 40))
		x := bigint.NewFromUint64(n)
		root := bigint.Sqrt(x)
		r := root.Uint64()
		assert.LessOrEqual(t, r*r, n)
		assert.Greater(t, (r+1)*(r+1), n)
	}
}

func TestBitLenAndBit(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		n    uint64
		want int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {255, 8}, {256, 9}, {1 << 20, 21},
	} {
		x := bigint.NewFromUint64(tc.n)
		assert.Equal(t, tc.want, x.BitLen(), "n=%d", tc.n)
	}
	x := bigint.NewFromUint64(0b1011)
	assert.Equal(t, uint(1), x.Bit(0))
	assert.Equal(t, uint(1), x.Bit(1))
	assert.Equal(t, uint(0), x.Bit(2))
	assert.Equal(t, uint(1), x.Bit(3))
	assert.Equal(t, uint(0), x.Bit(4))
}

func TestShiftBase(t *testing.T) {
	t.Parallel()
	x := bigint.NewFromUint64(7)
	shifted := x.ShiftLeftBase(2)
	back := shifted.ShiftRightBase(2)
	assert.Equal(t, "7", back.String())
	assert.Equal(t, "7000000000000000000", shifted.String())
}

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		n := uint64(rng.Int63())
		x := bigint.NewFromUint64(n)
		back := bigint.SetBytes(x.Bytes())
		assert.Equal(t, x.String(), back.String())
	}
}

func TestCmpTotalOrder(t *testing.T) {
	t.Parallel()
	a := bigint.NewFromUint64(100)
	b := bigint.NewFromUint64(100)
	c := bigint.NewFromUint64(101)
	assert.Equal(t, 0, a.Cmp(b))
	assert.True(t, a.Equal(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 1, c.Cmp(a))
}
