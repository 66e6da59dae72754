// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package factor implements prime factorization as a cascade that
// tries, in order, an advisory factor table, trial division by small
// primes, Miller-Rabin primality testing, and Pollard's ρ algorithm,
// over a custom little-endian BigInt rather than a native integer
// type.
package factor

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
	"github.com/primpoly/primpoly/factortable"
	"github.com/primpoly/primpoly/stats"
)

// PrimeFactor is one prime-power term of a Factorization.
type PrimeFactor struct {
	Prime *bigint.Int
	Mult  int
}

// Factorization is N written as a product of prime powers, held in
// strictly increasing prime order.
type Factorization struct {
	factors []PrimeFactor
}

// Factors returns the prime-power terms in increasing prime order.
func (f Factorization) Factors() []PrimeFactor {
	out := make([]PrimeFactor, len(f.factors))
	copy(out, f.factors)
	return out
}

// DistinctPrimes returns just the prime bases, increasing.
func (f Factorization) DistinctPrimes() []*bigint.Int {
	out := make([]*bigint.Int, len(f.factors))
	for i, pf := range f.factors {
		out[i] = pf.Prime
	}
	return out
}

// Product reconstructs the factored number from its prime powers.
func (f Factorization) Product() *bigint.Int {
	p := bigint.One()
	for _, pf := range f.factors {
		p = bigint.Mul(p, bigint.Exp(pf.Prime, uint64(pf.Mult)))
	}
	return p
}

// insert merges a prime power into the factorization, keeping the
// prime-sorted invariant and combining multiplicities for a prime
// already present.
func (f *Factorization) insert(prime *bigint.Int, mult int) {
	if mult <= 0 {
		return
	}
	for i := range f.factors {
		if f.factors[i].Prime.Equal(prime) {
			f.factors[i].Mult += mult
			return
		}
	}
	f.factors = append(f.factors, PrimeFactor{Prime: prime.Clone(), Mult: mult})
	sort.Slice(f.factors, func(i, j int) bool {
		return f.factors[i].Prime.Cmp(f.factors[j].Prime) < 0
	})
}

// Hint tells Factor which factor-table record to consult first: the
// factorization of p^n - 1, as produced while searching primitive
// polynomials of degree n over GF(p).
type Hint struct {
	P uint64
	N int
}

// Factor decomposes n into prime powers, consulting table (if non-nil)
// when hint is given, then completing whatever the table leaves
// unresolved via trial division, Miller-Rabin, and Pollard's ρ. gen
// supplies the randomness Miller-Rabin and Pollard-ρ need; oc, if
// non-nil, accumulates operation counts for the run.
func Factor(n *bigint.Int, hint *Hint, table *factortable.Table, gen *Generator, oc *stats.OperationCount) (Factorization, error) {
	if n == nil || n.IsZero() {
		return Factorization{}, errors.Wrap(common.ErrRange, "factor: n must be positive")
	}

	var result Factorization
	remaining := n.Clone()

	if hint != nil && table != nil {
		if entry, ok := table.Lookup(hint.P, hint.N); ok {
			for _, tf := range entry.Factors {
				result.insert(tf.Prime, tf.Mult)
			}
			if entry.Residual != nil {
				remaining = entry.Residual.Clone()
			} else {
				remaining = bigint.One()
			}
		}
	}

	if remaining.Cmp(bigint.One()) <= 0 {
		return result, nil
	}
	if err := factorInto(remaining, gen, oc, &result); err != nil {
		return Factorization{}, err
	}
	return result, nil
}

// factorInto trial-divides n by the small-prime sieve, then resolves
// whatever remains with the Miller-Rabin/Pollard-ρ cascade, merging
// every prime power found into result.
func factorInto(n *bigint.Int, gen *Generator, oc *stats.OperationCount, result *Factorization) error {
	remaining := n.Clone()
	for _, p := range smallPrimes() {
		if remaining.Cmp(bigint.One()) == 0 {
			break
		}
		divisor := bigint.NewFromUint64(p)
		if divisor.Cmp(remaining) > 0 {
			break
		}
		mult := 0
		for {
			q, r := bigint.DivMod(remaining, divisor)
			if oc != nil {
				oc.TrialDivisions++
			}
			if !r.IsZero() {
				break
			}
			remaining = q
			mult++
		}
		if mult > 0 {
			result.insert(divisor, mult)
		}
	}

	return resolveComposite(remaining, gen, oc, result)
}

// resolveComposite handles whatever trial division left behind: n may
// already be 1, prime, or composite with only large factors.
func resolveComposite(n *bigint.Int, gen *Generator, oc *stats.OperationCount, result *Factorization) error {
	if n.Cmp(bigint.One()) == 0 {
		return nil
	}

	isPrime, err := IsProbablyPrime(n, DefaultMillerRabinRounds, gen, oc)
	if err != nil {
		return errors.Wrap(err, "factor: primality test failed")
	}
	if isPrime {
		result.insert(n, 1)
		return nil
	}

	g, err := findPollardFactor(n, oc)
	if err != nil {
		return err
	}

	co, _ := bigint.DivMod(n, g)
	if err := resolveComposite(g, gen, oc, result); err != nil {
		return err
	}
	return resolveComposite(co, gen, oc, result)
}

// findPollardFactor retries Pollard's ρ with successive offsets c =
// 2, 3, 4, ...: a run that fails to split n (because the chosen
// f(x) = x² + c happens to collide with itself) is not an error, just
// a reason to try the next c.
func findPollardFactor(n *bigint.Int, oc *stats.OperationCount) (*bigint.Int, error) {
	for c := uint64(2); c < 100; c++ {
		if g, ok := pollardRho(n, c, oc); ok {
			return g, nil
		}
	}
	return nil, errors.Wrap(common.ErrFactor, "factor: Pollard's rho exhausted its retry budget")
}

// DefaultGenerator returns the process-wide JKISS generator singleton.
func DefaultGenerator() *Generator {
	return defaultGenerator
}
