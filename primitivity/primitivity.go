// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primitivity implements the six-stage decision procedure that
// tells whether a monic polynomial f(x) of degree n over ℤ/pℤ is
// primitive: whether the residue class x generates the full
// multiplicative group of GF(pⁿ). Each stage is a cheap-to-expensive
// necessary condition, evaluated in order with short-circuiting, so the
// mean case never reaches the two order tests.
package primitivity

import (
	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
	"github.com/primpoly/primpoly/factor"
	"github.com/primpoly/primpoly/modp"
	"github.com/primpoly/primpoly/polymodf"
	"github.com/primpoly/primpoly/polymodp"
	"github.com/primpoly/primpoly/stats"
)

// Stage identifies which of the six cascade conditions produced a
// Verdict — the terminal stage for a Rejected verdict, or the final
// stage (OrderM) for a Primitive one.
type Stage int

const (
	StageConstTermRoot Stage = iota
	StageNoLinearFactor
	StageIrreducibleToPower
	StageOrderR
	StageOrderRConsistency
	StageOrderM
)

func (s Stage) String() string {
	switch s {
	case StageConstTermRoot:
		return "const-term-primitive-root"
	case StageNoLinearFactor:
		return "no-linear-factor"
	case StageIrreducibleToPower:
		return "irreducible-to-a-power"
	case StageOrderR:
		return "order-r"
	case StageOrderRConsistency:
		return "order-r-consistency"
	case StageOrderM:
		return "order-m"
	default:
		return "unknown"
	}
}

// Outcome is the tester's terminal decision.
type Outcome int

const (
	Untested Outcome = iota
	Rejected
	Primitive
)

// Verdict is the tester's answer for one polynomial: which outcome, and
// which stage produced it.
type Verdict struct {
	Outcome Outcome
	Stage   Stage
}

// Option configures a Tester.
type Option func(*Tester)

// WithSkipRule enables the "skip qᵢ if qᵢ | (p−1)" optimisation in the
// order-m loop (stage 6). Off by default: it is documented in the
// literature as an optional performance flag, not a change to the
// decision, so the unoptimised cascade is what a Tester runs unless a
// caller opts in.
func WithSkipRule(enabled bool) Option {
	return func(t *Tester) { t.skipRule = enabled }
}

// Tester evaluates the primitivity cascade for a fixed (p, n): it owns
// the factorizations of p−1 and of r = (pⁿ−1)/(p−1), computed once and
// cached for the tester's lifetime, since a single driver run tests
// many candidate polynomials at the same (p, n).
type Tester struct {
	p   uint64
	n   int
	gen *factor.Generator
	oc  *stats.OperationCount

	skipRule bool

	pMinus1    factor.Factorization
	pMinus1Set bool
	r          *bigint.Int
	rFactors   factor.Factorization
	rSet       bool
}

// New returns a Tester for degree-n polynomials over GF(p).
func New(p uint64, n int, gen *factor.Generator, oc *stats.OperationCount, opts ...Option) *Tester {
	t := &Tester{p: p, n: n, gen: gen, oc: oc}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tester) pMinus1Factorization() (factor.Factorization, error) {
	if t.pMinus1Set {
		return t.pMinus1, nil
	}
	if t.p < 2 {
		return factor.Factorization{}, nil
	}
	fz, err := factor.Factor(bigint.NewFromUint64(t.p-1), nil, nil, t.gen, t.oc)
	if err != nil {
		return factor.Factorization{}, errors.Wrap(err, "primitivity: failed to factor p-1")
	}
	t.pMinus1, t.pMinus1Set = fz, true
	return fz, nil
}

// rAndFactorization returns r = (pⁿ−1)/(p−1) and its factorization,
// computed and cached on first use.
func (t *Tester) rAndFactorization() (*bigint.Int, factor.Factorization, error) {
	if t.rSet {
		return t.r, t.rFactors, nil
	}
	pn := bigint.Exp(bigint.NewFromUint64(t.p), uint64(t.n))
	pnMinus1 := bigint.Sub(pn, bigint.One())
	pMinus1 := bigint.NewFromUint64(t.p - 1)
	r, rem := bigint.DivMod(pnMinus1, pMinus1)
	if !rem.IsZero() {
		return nil, factor.Factorization{}, errors.Wrap(common.ErrInternal, "primitivity: (p^n-1) is not divisible by (p-1)")
	}
	hint := &factor.Hint{P: t.p, N: t.n}
	rFactors, err := factor.Factor(r, hint, nil, t.gen, t.oc)
	if err != nil {
		return nil, factor.Factorization{}, errors.Wrap(err, "primitivity: failed to factor r")
	}
	t.r, t.rFactors, t.rSet = r, rFactors, true
	return r, rFactors, nil
}

// Test runs the six-stage cascade against f and returns the terminal
// verdict.
func (t *Tester) Test(f *polymodp.Poly) (Verdict, error) {
	if t.oc != nil {
		t.oc.PolysTested++
	}

	coeffs := f.Coeffs()
	a0 := coeffs[0]

	pMinus1, err := t.pMinus1Factorization()
	if err != nil {
		return Verdict{}, err
	}
	if !modp.ConstCoeffIsPrimitiveRoot(a0, t.n, modp.Mod(t.p), pMinus1) {
		return Verdict{Outcome: Rejected, Stage: StageConstTermRoot}, nil
	}

	if f.HasLinearFactor() {
		return Verdict{Outcome: Rejected, Stage: StageNoLinearFactor}, nil
	}
	if t.oc != nil {
		t.oc.PolysFreeOfLinearFactor++
	}

	rt := f.ReductionTable()
	qMinusI := polymodf.QMinusIMatrix(rt, t.p)
	if polymodf.NullitySize(qMinusI, t.p) != 1 {
		return Verdict{Outcome: Rejected, Stage: StageIrreducibleToPower}, nil
	}
	if t.oc != nil {
		t.oc.IrreducibleToAPower++
	}

	r, rFactors, err := t.rAndFactorization()
	if err != nil {
		return Verdict{}, err
	}

	xr := polymodf.XToPower(rt, r, t.p)
	a, isConst := asConstant(xr)
	if !isConst {
		return Verdict{Outcome: Rejected, Stage: StageOrderR}, nil
	}
	if t.oc != nil {
		t.oc.OrderRPassed++
	}

	expected := expectedConstTerm(a0, t.n, t.p)
	if a != expected {
		return Verdict{Outcome: Rejected, Stage: StageOrderRConsistency}, nil
	}

	for _, pf := range rFactors.Factors() {
		q := pf.Prime
		if t.skipRule {
			_, skipRem := bigint.DivMod(bigint.NewFromUint64(t.p-1), q)
			if skipRem.IsZero() {
				continue
			}
		}
		m, rem := bigint.DivMod(r, q)
		if !rem.IsZero() {
			return Verdict{}, errors.Wrap(common.ErrInternal, "primitivity: r is not divisible by its own factor")
		}
		xm := polymodf.XToPower(rt, m, t.p)
		if _, isConst := asConstant(xm); isConst {
			return Verdict{Outcome: Rejected, Stage: StageOrderM}, nil
		}
	}
	if t.oc != nil {
		t.oc.OrderMPassed++
	}

	return Verdict{Outcome: Primitive, Stage: StageOrderM}, nil
}

// asConstant reports whether g (a reduced polynomial, length N
// coefficient vector) has degree 0, and if so returns its value.
func asConstant(g []uint64) (uint64, bool) {
	for i := 1; i < len(g); i++ {
		if g[i] != 0 {
			return 0, false
		}
	}
	return g[0], true
}

// expectedConstTerm computes (-1)^n * a0 mod p, the value the order-r
// test's constant must match (stage 5).
func expectedConstTerm(a0 uint64, n int, p uint64) uint64 {
	v := a0 % p
	if n%2 == 1 && v != 0 {
		v = p - v
	}
	return v
}
