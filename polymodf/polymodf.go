// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package polymodf implements arithmetic in ℤ/pℤ[x]/⟨f(x)⟩: elements
// are represented as length-N coefficient vectors (degree < N, basis
// x^0..x^{N-1}) and every operation consults a precomputed
// polymodp.ReductionTable instead of doing polynomial long division.
package polymodf

import (
	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/stats"
)

// TimesX returns x*g(x) mod f(x), using rt's top row (x^N mod f) to
// fold back whatever degree-N term the shift produces.
func TimesX(rt *polymodp.ReductionTable, g []uint64, p uint64) []uint64 {
	n := rt.N
	topRow := rt.Row(n)
	overflow := g[n-1]
	result := make([]uint64, n)
	for i := 1; i < n; i++ {
		result[i] = g[i-1]
	}
	if overflow != 0 {
		for i := 0; i < n; i++ {
			result[i] = (result[i] + overflow*topRow[i]) % p
		}
	}
	return result
}

// Square returns g(x)^2 mod f(x): the full auto-convolution of g with
// itself, reduced term by term via rt. oc, if non-nil, has its
// Squarings counter incremented. Only calls to Square are counted:
// XToPower squares through Product and takes no counter, so the
// primitivity cascade's order tests leave Squarings unchanged.
func Square(rt *polymodp.ReductionTable, g []uint64, p uint64, oc *stats.OperationCount) []uint64 {
	if oc != nil {
		oc.Squarings++
	}
	return Product(rt, g, g, p)
}

// Product returns g(x)*h(x) mod f(x): convolve g and h into a
// degree-(2N-2) polynomial, then fold every term of degree >= N back
// down using rt's rows.
func Product(rt *polymodp.ReductionTable, g, h []uint64, p uint64) []uint64 {
	n := rt.N
	conv := make([]uint64, 2*n-1)
	for i := 0; i < n; i++ {
		if g[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if h[j] == 0 {
				continue
			}
			conv[i+j] = (conv[i+j] + g[i]*h[j]) % p
		}
	}

	result := make([]uint64, n)
	copy(result, conv[:n])
	for k := 2*n - 2; k >= n; k-- {
		c := conv[k]
		if c == 0 {
			continue
		}
		row := rt.Row(k)
		for i := 0; i < n; i++ {
			result[i] = (result[i] + c*row[i]) % p
		}
	}
	return result
}

// XToPower returns x^m mod f(x) for an arbitrary-precision exponent m
// (pⁿ−1 routinely exceeds 2⁶⁴), via square-and-multiply-by-x over the
// bits of m, most significant first.
func XToPower(rt *polymodp.ReductionTable, m *bigint.Int, p uint64) []uint64 {
	n := rt.N
	result := make([]uint64, n)
	result[0] = 1 // x^0 = 1

	bitLen := m.BitLen()
	if bitLen == 0 {
		return result
	}
	for i := bitLen - 1; i >= 0; i-- {
		result = Product(rt, result, result, p)
		if m.Bit(i) == 1 {
			result = TimesX(rt, result, p)
		}
	}
	return result
}

// QMinusIMatrix builds the N×N matrix of the Frobenius-like map Q
// (the matrix whose i-th row is x^(i*p) mod f, for the Berlekamp
// irreducibility test), minus the identity, as a contiguous row-major
// buffer: Gaussian elimination over this matrix's nullity (NullitySize)
// tells the primitivity cascade's third stage how many irreducible
// factors f has.
func QMinusIMatrix(rt *polymodp.ReductionTable, p uint64) [][]uint64 {
	n := rt.N
	mat := make([][]uint64, n)
	for i := 0; i < n; i++ {
		xi := make([]uint64, n)
		xi[i] = 1
		row := xToNativePower(rt, xi, p, p)
		row[i] = (row[i] + p - 1) % p // subtract 1 down the diagonal
		mat[i] = row
	}
	return mat
}

// xToNativePower returns g(x)^e mod f(x) for a native uint64 exponent,
// via square-and-multiply on Product — used only to build the rows of
// Q (e == p, always small relative to pⁿ−1).
func xToNativePower(rt *polymodp.ReductionTable, g []uint64, e, p uint64) []uint64 {
	n := rt.N
	result := make([]uint64, n)
	result[0] = 1
	base := make([]uint64, n)
	copy(base, g)
	for e > 0 {
		if e&1 == 1 {
			result = Product(rt, result, base, p)
		}
		base = Product(rt, base, base, p)
		e >>= 1
	}
	return result
}

// NullitySize returns the dimension of the null space of mat over
// ℤ/pℤ via Gaussian elimination — the number of linearly independent
// solutions to (Q-I)v = 0, which equals the number of distinct
// irreducible factors of f (Berlekamp's theorem). mat is consumed
// (rows are mutated in place).
func NullitySize(mat [][]uint64, p uint64) int {
	n := len(mat)
	if n == 0 {
		return 0
	}
	rank := 0
	for col := 0; col < n && rank < n; col++ {
		pivot := -1
		for row := rank; row < n; row++ {
			if mat[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			continue
		}
		mat[rank], mat[pivot] = mat[pivot], mat[rank]

		inv := modInverse(mat[rank][col], p)
		for j := col; j < n; j++ {
			mat[rank][j] = mat[rank][j] * inv % p
		}
		for row := 0; row < n; row++ {
			if row == rank || mat[row][col] == 0 {
				continue
			}
			factor := mat[row][col]
			for j := col; j < n; j++ {
				mat[row][j] = (mat[row][j] + p - factor*mat[rank][j]%p) % p
			}
		}
		rank++
	}
	return n - rank
}

// modInverse returns a⁻¹ mod p for prime p, via Fermat's little
// theorem — p is small here (the base GF(p)), so square-and-multiply
// to the p-2 power is cheap and avoids importing modp's extended-GCD
// path for a single scalar inverse used only inside Gaussian
// elimination.
func modInverse(a, p uint64) uint64 {
	result := uint64(1)
	base := a % p
	e := p - 2
	for e > 0 {
		if e&1 == 1 {
			result = result * base % p
		}
		base = base * base % p
		e >>= 1
	}
	return result
}
