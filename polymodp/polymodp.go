// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package polymodp implements dense monic polynomials over ℤ/pℤ: the
// trial-polynomial odometer the driver enumerates, evaluation, the
// cheap linear-factor screen, and the x-power reduction table that
// polymodf's arithmetic in ℤ/pℤ[x]/⟨f(x)⟩ is built on.
package polymodp

// Poly is a monic polynomial of degree N over ℤ/Pℤ: coeffs has length
// N+1, coeffs[i] is the coefficient of x^i, and coeffs[N] == 1 always
// (the leading term is fixed; only a0..a_{N-1} vary across the trial
// space the odometer walks).
type Poly struct {
	p      uint64
	coeffs []uint64
}

// Degree returns N.
func (f *Poly) Degree() int { return len(f.coeffs) - 1 }

// P returns the modulus.
func (f *Poly) P() uint64 { return f.p }

// Coeffs returns the length-(N+1) coefficient vector, index i holding
// the coefficient of x^i. The returned slice is a copy.
func (f *Poly) Coeffs() []uint64 {
	out := make([]uint64, len(f.coeffs))
	copy(out, f.coeffs)
	return out
}

// Clone returns an independent copy of f: callers holding onto a
// polynomial across further Next() calls on the original (e.g. a
// find-all loop collecting every primitive candidate it sees) need
// their own coefficient slice, not an alias into the odometer's.
func (f *Poly) Clone() *Poly {
	coeffs := make([]uint64, len(f.coeffs))
	copy(coeffs, f.coeffs)
	return &Poly{p: f.p, coeffs: coeffs}
}

// InitialTrialPoly returns x^N - 1, the first candidate the odometer
// walks in the trial-polynomial enumeration.
func InitialTrialPoly(n int, p uint64) *Poly {
	coeffs := make([]uint64, n+1)
	coeffs[0] = (p - 1) % p // -1 mod p
	coeffs[n] = 1
	return &Poly{p: p, coeffs: coeffs}
}

// Next advances f to the next candidate in the base-P odometer over
// a0..a_{N-1} (the leading coefficient never changes): a0 increments,
// carrying into a1 when it wraps past p-1, and so on up the vector.
// Next returns false once the odometer carries out of a_{N-1} — the
// trial space is exhausted.
func (f *Poly) Next() bool {
	n := f.Degree()
	for i := 0; i < n; i++ {
		f.coeffs[i]++
		if f.coeffs[i] < f.p {
			return true
		}
		f.coeffs[i] = 0
	}
	return false
}

// EvalAt evaluates f(a) mod p via Horner's method.
func (f *Poly) EvalAt(a uint64) uint64 {
	a %= f.p
	result := uint64(0)
	for i := f.Degree(); i >= 0; i-- {
		result = (result*a + f.coeffs[i]) % f.p
	}
	return result
}

// HasLinearFactor reports whether f has a root in ℤ/pℤ, i.e. a linear
// factor (x - a) for some a in [0, p) — the cheap second-stage screen
// of the primitivity cascade.
func (f *Poly) HasLinearFactor() bool {
	for a := uint64(0); a < f.p; a++ {
		if f.EvalAt(a) == 0 {
			return true
		}
	}
	return false
}

// ReductionTable holds, for each power x^k with N <= k <= 2N-2, the
// coefficient vector (length N, basis x^0..x^{N-1}) of x^k reduced
// modulo f(x). This is the table polymodf's TimesX/Square/Product
// operations consult instead of doing polynomial long division on
// every multiply.
type ReductionTable struct {
	N    int
	P    uint64
	rows [][]uint64 // rows[k-N] for k = N .. 2N-2
}

// Row returns the reduction of x^k mod f(x), for N <= k <= 2N-2.
func (rt *ReductionTable) Row(k int) []uint64 {
	out := make([]uint64, rt.N)
	copy(out, rt.rows[k-rt.N])
	return out
}

// ReductionTable builds the x-power reduction table for f, row by row:
// row N is read directly off f's own coefficients (x^N ≡ -(a_{N-1}
// x^{N-1} + ... + a0) mod f, since f is monic), and every subsequent
// row is that row's predecessor shifted up one degree and folded back
// down using row N wherever the shift produced an x^N term.
func (f *Poly) ReductionTable() *ReductionTable {
	n := f.Degree()
	p := f.p
	rt := &ReductionTable{N: n, P: p}
	if n == 0 {
		return rt
	}

	topRow := make([]uint64, n)
	for i := 0; i < n; i++ {
		topRow[i] = (p - f.coeffs[i]) % p
	}
	rt.rows = append(rt.rows, topRow)

	for k := n + 1; k <= 2*n-2; k++ {
		prev := rt.rows[len(rt.rows)-1]
		rt.rows = append(rt.rows, shiftAndReduce(prev, topRow, p))
	}
	return rt
}

// shiftAndReduce computes the coefficient vector of x * g(x) mod f(x),
// given g's reduced coefficient vector (length N) and f's top row
// (x^N mod f, also length N).
func shiftAndReduce(g, topRow []uint64, p uint64) []uint64 {
	n := len(g)
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
