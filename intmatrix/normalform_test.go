package intmatrix

// Copyright (c) 2025 Colin McRae

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/FPGroup/util"
)

func TestSmithNormalFormKnownAnswers(t *testing.T) {
	for _, tc := range []struct {
		numRows, numCols int
		entries          []int64
		diagonal         []int64
		invariantFactors []int64
		freeRank         int
	}{
		{3, 3, []int64{2, 4, 4, -6, 6, 12, 10, -4, -16}, []int64{2, 6, 12}, []int64{2, 6, 12}, 0},
		{2, 2, []int64{2, 0, 0, 3}, []int64{1, 6}, []int64{6}, 0},
		{1, 2, []int64{0, 0}, []int64{0}, nil, 2},
		{1, 1, []int64{5}, []int64{5}, []int64{5}, 0},
		{2, 3, []int64{2, 0, 0, 0, 4, 0}, []int64{2, 4}, []int64{2, 4}, 1},
		{3, 2, []int64{1, 1, 1, -1, 0, 0}, []int64{1, 2}, []int64{2}, 0},
	} {
		m, err := NewFromInt64(tc.numRows, tc.numCols, tc.entries)
		require.NoError(t, err)
		snf, err := SmithNormalForm(m)
		require.NoError(t, err)
		require.NoError(t, snf.Check())
		require.Equal(t, tc.diagonal, snf.Diagonal)
		require.Equal(t, tc.invariantFactors, snf.InvariantFactors)
		require.Equal(t, tc.freeRank, snf.FreeRank)
		require.Equal(t, tc.entries, m.Entries(), "input must not be modified")
	}
}

func TestSmithNormalFormRandom(t *testing.T) {
	rand.Seed(21)
	numZeroRank := 0
	numWithTorsion := 0
	for iter := 0; iter < 300; iter++ {
		numRows, numCols := rand.Intn(6), rand.Intn(6)+1
		m := New(numRows, numCols)
		for i := 0; i < numRows; i++ {
			for j := 0; j < numCols; j++ {
				if rand.Intn(3) > 0 {
					m.Set(i, j, rand.Int63n(13)-6)
				}
			}
		}
		snf, err := SmithNormalForm(m)
		require.NoError(t, err)
		require.NoError(t, snf.Check())

		// The rank agrees with the row echelon form
		echelon := m.Clone()
		rank, err := RowEchelonForm(echelon)
		require.NoError(t, err)
		require.Equal(t, rank, snf.Rank)
		if rank == 0 {
			numZeroRank++
		}
		if len(snf.InvariantFactors) > 0 {
			numWithTorsion++
		}
	}
	t.Logf("%d zero-rank matrices, %d with torsion", numZeroRank, numWithTorsion)
}

func TestRowEchelonForm(t *testing.T) {
	m, err := NewFromInt64(3, 3, []int64{0, 2, 4, 3, 6, 9, 6, 14, 22})
	require.NoError(t, err)
	rank, err := RowEchelonForm(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, int64(0), m.Get(1, 0))
	require.Equal(t, int64(0), m.Get(2, 0))
	require.Equal(t, int64(0), m.Get(2, 1))
	require.Equal(t, int64(0), m.Get(2, 2))
	require.Greater(t, m.Get(0, 0), int64(0))

	empty := New(0, 4)
	rank, err = RowEchelonForm(empty)
	require.NoError(t, err)
	require.Equal(t, 0, rank)
}

func TestMatrixOverflow(t *testing.T) {
	m, err := NewFromInt64(2, 2, []int64{math.MaxInt64, 0, 1, 1})
	require.NoError(t, err)
	err = m.AddRowMultiple(0, 1, 1)
	require.True(t, errors.Is(err, util.ErrNumericOverflow))

	m, err = NewFromInt64(1, 1, []int64{math.MinInt64})
	require.NoError(t, err)
	_, err = SmithNormalForm(m)
	require.True(t, errors.Is(err, util.ErrNumericOverflow))
}

func TestMultiplyRowVector(t *testing.T) {
	m, err := NewFromInt64(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	product, err := m.MultiplyRowVector([]int64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []int64{-3, -3, -3}, product)

	identity := NewIdentity(3)
	mi, err := m.Multiply(identity)
	require.NoError(t, err)
	require.True(t, mi.Equals(m))
}
