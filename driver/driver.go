// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package driver orchestrates the trial-polynomial enumeration: walk
// the odometer of monic degree-n polynomials over GF(p), run the
// primitivity cascade against each, and stop once find-one has its
// answer or find-all has found every polynomial the Euler-totient
// count predicts.
package driver

import (
	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
	"github.com/primpoly/primpoly/factor"
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/primitivity"
	"github.com/primpoly/primpoly/stats"
)

// FindOne walks the trial-polynomial odometer for degree n over GF(p)
// and returns the first primitive polynomial found. Exhausting the
// odometer without finding one is common.ErrInternal: a fatal internal
// error that never happens on valid (p, n) input, since a primitive
// polynomial of every degree exists over every prime field.
func FindOne(p uint64, n int) (*polymodp.Poly, stats.OperationCount, error) {
	var oc stats.OperationCount
	gen := factor.DefaultGenerator()
	tester := primitivity.New(p, n, gen, &oc)

	f := polymodp.InitialTrialPoly(n, p)
	for {
		v, err := tester.Test(f)
		if err != nil {
			return nil, oc, errors.Wrap(err, "driver: FindOne")
		}
		common.Logger.Debugf("p=%d n=%d coeffs=%v verdict=%v stage=%v", p, n, f.Coeffs(), v.Outcome, v.Stage)
		if v.Outcome == primitivity.Primitive {
			common.Logger.Infof("p=%d n=%d: found primitive polynomial %v after %d candidates", p, n, f.Coeffs(), oc.PolysTested)
			return f, oc, nil
		}
		if !f.Next() {
			return nil, oc, errors.Wrap(common.ErrInternal, "driver: odometer exhausted in find-one mode without a primitive")
		}
	}
}

// FindAll walks the full odometer and collects every primitive
// polynomial of degree n over GF(p), stopping once it has found
// φ(pⁿ−1)/n of them — the a priori expected count (φ = Euler's
// totient). Exhausting the odometer before that count is reached is
// common.ErrInternal, for the same reason as FindOne.
func FindAll(p uint64, n int) ([]*polymodp.Poly, stats.OperationCount, error) {
	var oc stats.OperationCount
	gen := factor.DefaultGenerator()
	tester := primitivity.New(p, n, gen, &oc)

	expected, err := expectedPrimitiveCount(p, n, gen, &oc)
	if err != nil {
		return nil, oc, errors.Wrap(err, "driver: FindAll")
	}

	var found []*polymodp.Poly
	f := polymodp.InitialTrialPoly(n, p)
	for {
		v, err := tester.Test(f)
		if err != nil {
			return nil, oc, errors.Wrap(err, "driver: FindAll")
		}
		common.Logger.Debugf("p=%d n=%d coeffs=%v verdict=%v stage=%v", p, n, f.Coeffs(), v.Outcome, v.Stage)
		if v.Outcome == primitivity.Primitive {
			found = append(found, f.Clone())
			if bigint.NewFromUint64(uint64(len(found))).Cmp(expected) == 0 {
				common.Logger.Infof("p=%d n=%d: found all %v primitive polynomials after %d candidates", p, n, expected, oc.PolysTested)
				return found, oc, nil
			}
		}
		if !f.Next() {
			return nil, oc, errors.Wrap(common.ErrInternal, "driver: odometer exhausted in find-all mode before the expected count was reached")
		}
	}
}

// expectedPrimitiveCount computes φ(pⁿ−1)/n, the a priori number of
// primitive degree-n polynomials over GF(p). φ(pⁿ−1) routinely exceeds
// the uint64 range for the larger (p, n) pairs this module supports, so
// the whole computation stays in *bigint.Int rather than truncating.
func expectedPrimitiveCount(p uint64, n int, gen *factor.Generator, oc *stats.OperationCount) (*bigint.Int, error) {
	pn := bigint.Exp(bigint.NewFromUint64(p), uint64(n))
	pnMinus1 := bigint.Sub(pn, bigint.One())
	fz, err := factor.Factor(pnMinus1, nil, nil, gen, oc)
	if err != nil {
		return nil, errors.Wrap(err, "driver: failed to factor p^n-1 for the totient")
	}
	phi := eulerPhi(pnMinus1, fz)
	count, rem := bigint.DivMod(phi, bigint.NewFromUint64(uint64(n)))
	if !rem.IsZero() {
		return nil, errors.Wrap(common.ErrInternal, "driver: phi(p^n-1) is not divisible by n")
	}
	return count, nil
}

// eulerPhi computes φ(m) from m's prime factorization via the standard
// product formula φ(m) = Π qᵢ^(eᵢ-1) * (qᵢ-1).
func eulerPhi(m *bigint.Int, fz factor.Factorization) *bigint.Int {
	phi := bigint.One()
	for _, pf := range fz.Factors() {
		qMinus1 := bigint.Sub(pf.Prime, bigint.One())
		qPow := bigint.Exp(pf.Prime, uint64(pf.Mult-1))
		phi = bigint.Mul(phi, bigint.Mul(qPow, qMinus1))
	}
	return phi
}
