// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package modp implements scalar ℤ/pℤ arithmetic: reduction, modular
// exponentiation, modular inverse, and the primitive-root test that
// the primitivity cascade's first stage relies on. Grounded on the
// "functionoid" value-type pattern: Mod(p) is a small value carrying
// the modulus, exposing call-like methods rather than threading p
// through every call site.
package modp

import (
	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/common"
	"github.com/primpoly/primpoly/factor"
)

// Mod is a prime (or, for Reduce alone, any positive) modulus p, used
// as a value-type receiver: Mod(p).PowerMod(a, e) rather than a free
// function taking p as an extra argument everywhere.
type Mod uint64

// Reduce returns n mod p as a value in [0, p), handling negative n the
// way Euclidean reduction does (never returning a negative residue).
func (p Mod) Reduce(n int64) uint64 {
	m := int64(p)
	r := n % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}

// PowerMod computes a^e mod p by square-and-multiply.
func (p Mod) PowerMod(a, e uint64) uint64 {
	result := uint64(1) % uint64(p)
	base := a % uint64(p)
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, base, uint64(p))
		}
		base = mulMod(base, base, uint64(p))
		e >>= 1
	}
	return result
}

// mulMod computes a*b mod m without overflowing uint64, by falling
// back to 128-bit-safe accumulation when the product could exceed the
// native word: this module's moduli are small primes (p < 2^32 is the
// realistic range for a polynomial base), so the plain product fits in
// practice, but we guard the general case with repeated doubling.
func mulMod(a, b, m uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if hi, lo := bitsMul64(a, b); hi == 0 {
		return lo % m
	}
	// Product overflows 64 bits: reduce via binary doubling instead.
	result := uint64(0)
	a %= m
	for b > 0 {
		if b&1 == 1 {
			result = (result + a) % m
		}
		a = (a + a) % m
		b >>= 1
	}
	return result
}

func bitsMul64(a, b uint64) (hi, lo uint64) {
	const mask = 0xFFFFFFFF
	aLo, aHi := a&mask, a>>32
	bLo, bHi := b&mask, b>>32

	lo = aLo * bLo
	mid1 := aHi * bLo
	mid2 := aLo * bHi
	hi = aHi * bHi

	carry := (lo >> 32) + (mid1 & mask) + (mid2 & mask)
	lo = (lo & mask) | (carry << 32)
	hi += (mid1 >> 32) + (mid2 >> 32) + (carry >> 32)
	return hi, lo
}

// InverseMod returns a⁻¹ mod p via the extended Euclidean algorithm.
// Returns common.ErrNotInvertible if gcd(a, p) != 1.
func (p Mod) InverseMod(a uint64) (uint64, error) {
	a %= uint64(p)
	if a == 0 {
		return 0, errors.Wrap(common.ErrNotInvertible, "modp: 0 has no inverse")
	}
	g, x, _ := extendedGCD(int64(a), int64(p))
	if g != 1 {
		return 0, errors.Wrap(common.ErrNotInvertible, "modp: a and p are not coprime")
	}
	return p.Reduce(x), nil
}

// extendedGCD returns (gcd(a, b), x, y) such that a*x + b*y = gcd(a, b).
func extendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// IsPrimitiveRoot reports whether a generates the full multiplicative
// group (ℤ/pℤ)*. pMinus1 must be the caller-supplied prime
// factorization of p−1 — this method never re-factors it, matching the
// cache-sharing contract of the primitivity cascade (factor p−1 once
// per run and reuse the factorization everywhere it's needed).
//
// The test is the standard one: a is a primitive root of p iff for
// every prime q dividing p−1, a^((p-1)/q) != 1 (mod p).
func (p Mod) IsPrimitiveRoot(a uint64, pMinus1 factor.Factorization) bool {
	a %= uint64(p)
	if a == 0 {
		return false
	}
	order := uint64(p) - 1
	for _, pf := range pMinus1.Factors() {
		q := pf.Prime.Uint64()
		exp := order / q
		if p.PowerMod(a, exp) == 1 {
			return false
		}
	}
	return true
}

// ConstCoeffIsPrimitiveRoot applies IsPrimitiveRoot to a polynomial's
// constant term a0, scaled by (-1)^n: f(x) is a candidate primitive
// polynomial over GF(p) of degree n only if (-1)^n * a0 is a
// primitive root of p.
func ConstCoeffIsPrimitiveRoot(a0 uint64, n int, p Mod, pMinus1 factor.Factorization) bool {
	v := a0 % uint64(p)
	if n%2 == 1 && v != 0 {
		v = uint64(p) - v
	}
	return p.IsPrimitiveRoot(v, pMinus1)
}
