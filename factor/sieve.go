// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factor

import "sync"

// smallPrimesUpTo generates the primes in [2, limit] with a Sieve of
// Eratosthenes, using uint64 since this module's factorization targets
// (pⁿ−1) can exceed the uint32 range.
func smallPrimesUpTo(limit int) []uint64 {
	if limit < 2 {
		return nil
	}
	isComposite := make([]bool, limit+1)
	var primes []uint64
	for p := 2; p <= limit; p++ {
		if isComposite[p] {
			continue
		}
		primes = append(primes, uint64(p))
		if p > limit/p {
			continue
		}
		for i := p * p; i <= limit; i += p {
			isComposite[i] = true
		}
	}
	return primes
}

// trialDivisionBound caps how far factorInto's trial division sieves small primes
// before handing the remainder to Miller-Rabin/Pollard-ρ. Numbers arising
// from pⁿ−1 for realistic p, n ranges (p < 100, n <= 10) never need a
// much larger bound; a candidate polynomial's factorization work is
// dominated by the cheap cascade long before this matters.
const trialDivisionBound = 1_000_000

var (
	smallPrimesOnce  sync.Once
	smallPrimesCache []uint64
)

func smallPrimes() []uint64 {
	smallPrimesOnce.Do(func() {
		smallPrimesCache = smallPrimesUpTo(trialDivisionBound)
	})
	return smallPrimesCache
}
