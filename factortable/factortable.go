// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package factortable implements an advisory factor-table file: a text
// listing of known factorizations of pⁿ−1 for selected (p, n). The
// factorizer in package factor consults it first (when a (p, n) hint is
// available) and completes whatever the table doesn't cover
// algorithmically — the table is never load-bearing for correctness.
package factortable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/primpoly/primpoly/bigint"
	"github.com/primpoly/primpoly/common"
)

// Factor is one prime-power term of a table entry.
type Factor struct {
	Prime *bigint.Int
	Mult  int
}

// Entry is one factor-table record for a (P, N) pair: N = pⁿ−1's known
// prime factors, plus an optional residual that the table's author was
// unable to factor further. Residual == nil means the entry is complete.
type Entry struct {
	P        uint64
	N        int
	Factors  []Factor
	Residual *bigint.Int
}

// Table is a loaded collection of Entry records, keyed by (P, N).
type Table struct {
	entries map[key]Entry
}

type key struct {
	p uint64
	n int
}

// Lookup returns the entry for (p, n), if the table has one.
func (t *Table) Lookup(p uint64, n int) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[key{p, n}]
	return e, ok
}

// Load parses the factor-table text format: one record per non-blank,
// non-comment ('#') line:
//
//	p n status factor^mult factor^mult ...
//
// status is either "full" (the factor list accounts for all of pⁿ−1) or
// "partial:<residual>" (the factor list accounts for pⁿ−1 / residual,
// and residual is left for the Factorizer to complete).
// Load parses every record in r, collecting malformed lines into a
// single combined error rather than bailing out on the first one: a
// hand-edited table file is more useful to its author when every bad
// line is reported at once, not just the earliest.
func Load(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[key]Entry)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	var result *multierror.Error
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "factortable: line %d", lineNo))
			continue
		}
		t.entries[key{entry.P, entry.N}] = entry
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "factortable: read failure"))
	}
	if result != nil {
		return nil, result.ErrorOrNil()
	}
	return t, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, errors.Wrap(common.ErrFactor, "malformed record: need at least p, n, status")
	}
	p, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Entry{}, errors.Wrap(common.ErrFactor, "malformed p")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, errors.Wrap(common.ErrFactor, "malformed n")
	}
	entry := Entry{P: p, N: n}
	status := fields[2]
	rest := fields[3:]
	if strings.HasPrefix(status, "partial:") {
		residualStr := strings.TrimPrefix(status, "partial:")
		residual, err := bigint.ParseString(residualStr)
		if err != nil {
			return Entry{}, errors.Wrap(common.ErrFactor, "malformed residual")
		}
		entry.Residual = residual
	} else if status != "full" {
		return Entry{}, errors.Wrap(common.ErrFactor, fmt.Sprintf("unknown status %q", status))
	}
	for _, tok := range rest {
		parts := strings.SplitN(tok, "^", 2)
		prime, err := bigint.ParseString(parts[0])
		if err != nil {
			return Entry{}, errors.Wrap(common.ErrFactor, "malformed factor")
		}
		mult := 1
		if len(parts) == 2 {
			mult, err = strconv.Atoi(parts[1])
			if err != nil {
				return Entry{}, errors.Wrap(common.ErrFactor, "malformed multiplicity")
			}
		}
		entry.Factors = append(entry.Factors, Factor{Prime: prime, Mult: mult})
	}
	return entry, nil
}

// Default returns a small, hand-built, directly hand-verifiable table
// of pⁿ−1 factorizations for the smallest, most frequently exercised
// (p, n) pairs. It is deliberately tiny: the factorizer's trial-
// division/Miller-Rabin/Pollard-ρ cascade is what makes the table
// merely advisory.
func Default() *Table {
	t := &Table{entries: make(map[key]Entry)}
	add := func(p uint64, n int, factors ...Factor) {
		t.entries[key{p, n}] = Entry{P: p, N: n, Factors: factors}
	}
	f := func(prime uint64, mult int) Factor {
		return Factor{Prime: bigint.NewFromUint64(prime), Mult: mult}
	}

	// 2^n - 1 for small n.
	add(2, 2, f(3, 1))
	add(2, 3, f(7, 1))
	add(2, 4, f(3, 1), f(5, 1))
	add(2, 5, f(31, 1))
	add(2, 6, f(3, 2), f(7, 1))
	add(2, 7, f(127, 1))
	add(2, 8, f(3, 1), f(5, 1), f(17, 1))
	add(2, 9, f(7, 1), f(73, 1))
	add(2, 10, f(3, 1), f(11, 1), f(31, 1))

	// 3^n - 1 for small n.
	add(3, 2, f(2, 3))
	add(3, 3, f(2, 1), f(13, 1))
	add(3, 4, f(2, 4), f(5, 1))
	add(3, 5, f(2, 1), f(11, 2))

	return t
}
