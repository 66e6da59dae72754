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

// DefaultMillerRabinRounds is the recommended default number of
// independent random bases for isProbablyPrime.
const DefaultMillerRabinRounds = 25

// IsProbablyPrime runs rounds independent Miller-Rabin witnesses against
// n. A number that passes every round is treated as prime: a composite
// verdict is a legitimate, non-exceptional result, not an error.
func IsProbablyPrime(n *bigint.Int, rounds int, gen *Generator, oc *stats.OperationCount) (bool, error) {
	two := bigint.NewFromUint64(2)
	three := bigint.NewFromUint64(3)
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.IsEven() {
		return false, nil
	}

	// n - 1 = 2^s * d, d odd.
	nMinus1 := bigint.Sub(n, bigint.One())
	d := nMinus1.Clone()
	s := 0
	for d.IsEven() {
		d, _ = bigint.DivMod(d, two)
		s++
	}

	nMinus2 := bigint.Sub(n, two)
	for i := 0; i < rounds; i++ {
		if oc != nil {
			oc.PrimalityTests++
		}
		x, err := witnessBase(n, nMinus2, gen)
		if err != nil {
			return false, err
		}
		if !millerRabinRound(n, nMinus1, d, s, x) {
			return false, nil
		}
	}
	return true, nil
}

// witnessBase draws a uniform base in [2, n-2].
func witnessBase(n, nMinus2 *bigint.Int, gen *Generator) (*bigint.Int, error) {
	span := bigint.Sub(nMinus2, bigint.One()) // n-3 values: draw from [0, n-3), then +2
	if span.IsZero() {
		return bigint.NewFromUint64(2), nil
	}
	r, err := gen.BigInt(span)
	if err != nil {
		return nil, err
	}
	return bigint.Add(r, bigint.NewFromUint64(2)), nil
}

func millerRabinRound(n, nMinus1, d *bigint.Int, s int, x *bigint.Int) bool {
	y := bigint.ModExp(x, d, n)
	if y.Equal(bigint.One()) || y.Equal(nMinus1) {
		return true
	}
	for i := 0; i < s-1; i++ {
		y = bigint.Mod(bigint.Mul(y, y), n)
		if y.Equal(nMinus1) {
			return true
		}
	}
	return false
}
