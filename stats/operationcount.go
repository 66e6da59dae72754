// Copyright © 2021 Io FinNet Group, Inc.
// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package stats holds the OperationCount telemetry record: a plain
// counter struct, updated by the factor and primitivity packages and
// read-only from outside, rendered as a stable-field-name text table
// for diagnostics.
package stats

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
)

// OperationCount is a record of the counters the core accumulates while
// factoring and primitivity-testing. Field names are part of the stable
// textual rendering contract — do not rename without updating Render's
// column header list to match.
type OperationCount struct {
	TrialDivisions          int64
	GCDs                    int64
	PrimalityTests          int64
	PollardRhoRounds        int64
	Squarings               int64
	PolysTested             int64
	PolysFreeOfLinearFactor int64
	IrreducibleToAPower     int64
	OrderRPassed            int64
	OrderMPassed            int64
}

// Snapshot returns an independent copy, safe to hand to a caller that
// must not be able to mutate the tester's live counters.
func (oc *OperationCount) Snapshot() OperationCount {
	if oc == nil {
		return OperationCount{}
	}
	return *oc
}

// Render formats the counters as a fixed-column text table with stable
// field names, suitable for plain-text diagnostic output.
func (oc *OperationCount) Render() string {
	snap := oc.Snapshot()
	rows := [][]string{
		{"TrialDivisions", itoa(snap.TrialDivisions)},
		{"GCDs", itoa(snap.GCDs)},
		{"PrimalityTests", itoa(snap.PrimalityTests)},
		{"PollardRhoRounds", itoa(snap.PollardRhoRounds)},
		{"Squarings", itoa(snap.Squarings)},
		{"PolysTested", itoa(snap.PolysTested)},
		{"PolysFreeOfLinearFactor", itoa(snap.PolysFreeOfLinearFactor)},
		{"IrreducibleToAPower", itoa(snap.IrreducibleToAPower)},
		{"OrderRPassed", itoa(snap.OrderRPassed)},
		{"OrderMPassed", itoa(snap.OrderMPassed)},
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Counter", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
	return buf.String()
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
