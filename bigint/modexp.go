// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

// ModExp returns x^y mod m by square-and-multiply, scanning the bits of y
// from least to most significant. y and m may themselves exceed uint64,
// which is exactly the case the Miller-Rabin witness test in package
// factor runs into once the numbers it tests grow past 2⁶⁴.
func ModExp(x, y, m *Int) *Int {
	if m.Cmp(One()) == 0 {
		return Zero()
	}
	result := Mod(One(), m)
	base := Mod(x, m)
	bits := y.bitsLSBFirst()
	for _, bit := range bits {
		if bit == 1 {
			result = Mod(Mul(result, base), m)
		}
		base = Mod(Mul(base, base), m)
	}
	return result
}
