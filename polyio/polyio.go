// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package polyio implements a textual polynomial grammar: "x^4 + x + 1,
// 2" parses to coefficients [1,1,0,0,1] and modulus 2. It is a thin
// adapter at the edge of the module, kept in-repo so end-to-end
// scenarios are expressible as ordinary Go tests without a separate CLI
// binary — it is not part of the primitivity decision procedure itself.
package polyio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/common"
)

// defaultModulus is used when the input omits the ", p" suffix.
const defaultModulus = 2

// Parse reads a polynomial in the form "x^4 + x + 1, 2" (or "x^4 + x + 1"
// to take the default modulus 2) and returns its dense coefficient
// vector (index i holds the coefficient of x^i, length degree+1) and
// modulus. Terms may appear in any order and either sign of leading
// "+"/"-" is accepted; duplicate powers are summed mod p.
func Parse(s string) (coeffs []uint64, p uint64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, 0, errors.Wrap(common.ErrRange, "polyio: empty input")
	}

	p = defaultModulus
	polyPart := s
	if idx := strings.LastIndex(s, ","); idx >= 0 {
		polyPart = strings.TrimSpace(s[:idx])
		modPart := strings.TrimSpace(s[idx+1:])
		v, err := strconv.ParseUint(modPart, 10, 64)
		if err != nil {
			return nil, 0, errors.Wrap(common.ErrRange, "polyio: malformed modulus")
		}
		p = v
	}
	if p < 2 {
		return nil, 0, errors.Wrap(common.ErrRange, "polyio: modulus must be >= 2")
	}

	terms, err := splitTerms(polyPart)
	if err != nil {
		return nil, 0, err
	}

	degree := 0
	parsed := make(map[int]int64)
	for _, term := range terms {
		power, coeff, err := parseTerm(term)
		if err != nil {
			return nil, 0, err
		}
		parsed[power] += coeff
		if power > degree {
			degree = power
		}
	}

	coeffs = make([]uint64, degree+1)
	for power, coeff := range parsed {
		coeffs[power] = uint64(((coeff % int64(p)) + int64(p)) % int64(p))
	}
	return coeffs, p, nil
}

// splitTerms breaks "x^4 + x - 1" into ["x^4", "x", "- 1"], splitting
// on + and -: a '-' stays attached to the term that follows it, a '+'
// is dropped.
func splitTerms(s string) ([]string, error) {
	var terms []string
	var cur strings.Builder
	for i, r := range s {
		if (r == '+' || r == '-') && cur.Len() > 0 {
			terms = append(terms, strings.TrimSpace(cur.String()))
			cur.Reset()
		}
		if r == '+' {
			continue
		}
		if i == 0 && r == '-' {
			cur.WriteRune(r)
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		terms = append(terms, strings.TrimSpace(cur.String()))
	}
	if len(terms) == 0 {
		return nil, errors.Wrap(common.ErrRange, "polyio: no terms found")
	}
	return terms, nil
}

// parseTerm parses one signed term ("x^4", "-x^2", "3x", "1") into its
// power of x and coefficient.
func parseTerm(term string) (power int, coeff int64, err error) {
	term = strings.TrimSpace(term)
	sign := int64(1)
	if strings.HasPrefix(term, "-") {
		sign = -1
		term = term[1:]
	}
	term = strings.TrimSpace(term)

	xIdx := strings.IndexAny(term, "xX")
	if xIdx < 0 {
		v, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			return 0, 0, errors.Wrapf(common.ErrRange, "polyio: malformed term %q", term)
		}
		return 0, sign * v, nil
	}

	coeffPart := strings.TrimSpace(term[:xIdx])
	coeff = 1
	if coeffPart != "" {
		v, err := strconv.ParseInt(coeffPart, 10, 64)
		if err != nil {
			return 0, 0, errors.Wrapf(common.ErrRange, "polyio: malformed coefficient in term %q", term)
		}
		coeff = v
	}

	rest := strings.TrimSpace(term[xIdx+1:])
	power = 1
	if rest != "" {
		if !strings.HasPrefix(rest, "^") {
			return 0, 0, errors.Wrapf(common.ErrRange, "polyio: malformed exponent in term %q", term)
		}
		v, err := strconv.Atoi(strings.TrimSpace(rest[1:]))
		if err != nil {
			return 0, 0, errors.Wrapf(common.ErrRange, "polyio: malformed exponent in term %q", term)
		}
		power = v
	}
	return power, sign * coeff, nil
}

// Format renders coeffs (index i = coefficient of x^i) and modulus p
// back into the "x^4 + x + 1, 2" textual form, highest degree first,
// omitting zero terms.
func Format(coeffs []uint64, p uint64) string {
	var parts []string
	for i := len(coeffs) - 1; i >= 0; i-- {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		parts = append(parts, formatTerm(c, i))
	}
	if len(parts) == 0 {
		parts = []string{"0"}
	}
	return fmt.Sprintf("%s, %d", strings.Join(parts, " + "), p)
}

func formatTerm(c uint64, power int) string {
	switch power {
	case 0:
		return strconv.FormatUint(c, 10)
	case 1:
		if c == 1 {
			return "x"
		}
		return fmt.Sprintf("%dx", c)
	default:
		if c == 1 {
			return fmt.Sprintf("x^%d", power)
		}
		return fmt.Sprintf("%dx^%d", c, power)
	}
}
