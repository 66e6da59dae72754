// Copyright © 2021 Io FinNet Group, Inc.
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package factortable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesFullAndPartialRecords(t *testing.T) {
	t.Parallel()
	input := `# comment line, ignored
2 4 full 3^1 5^1

3 5 partial:121 2^1
`
	tbl, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	e, ok := tbl.Lookup(2, 4)
	require.True(t, ok)
	assert.Nil(t, e.Residual)
	require.Len(t, e.Factors, 2)
	assert.Equal(t, uint64(3), e.Factors[0].Prime.Uint64())
	assert.Equal(t, uint64(5), e.Factors[1].Prime.Uint64())

	e2, ok := tbl.Lookup(3, 5)
	require.True(t, ok)
	require.NotNil(t, e2.Residual)
	assert.Equal(t, uint64(121), e2.Residual.Uint64())
}

func TestLoadDefaultsMultiplicityToOne(t *testing.T) {
	t.Parallel()
	tbl, err := Load(strings.NewReader("2 2 full 3\n"))
	require.NoError(t, err)
	e, ok := tbl.Lookup(2, 2)
	require.True(t, ok)
	require.Len(t, e.Factors, 1)
	assert.Equal(t, 1, e.Factors[0].Mult)
}

func TestLoadAggregatesMalformedLinesInOneError(t *testing.T) {
	t.Parallel()
	input := "2\nnotanumber 4 full 3\n2 4 bogus-status 3\n"
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
}

func TestLookupOnNilTableIsFalse(t *testing.T) {
	t.Parallel()
	var tbl *Table
	_, ok := tbl.Lookup(2, 2)
	assert.False(t, ok)
}

func TestDefaultEntriesReconstructToPnMinus1(t *testing.T) {
	t.Parallel()
	tbl := Default()
	cases := []struct {
		p    uint64
		n    int
		want uint64
	}{
		{2, 2, 3},
		{2, 4, 15},
		{2, 8, 255},
		{3, 2, 8},
		{3, 4, 80},
	}
	for _, c := range cases {
		e, ok := tbl.Lookup(c.p, c.n)
		require.True(t, ok, "p=%d n=%d", c.p, c.n)
		product := uint64(1)
		for _, fac := range e.Factors {
			for i := 0; i < fac.Mult; i++ {
				product *= fac.Prime.Uint64()
			}
		}
		assert.Equal(t, c.want, product, "p=%d n=%d", c.p, c.n)
	}
}
