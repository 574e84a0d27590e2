// SPDX-License-Identifier: MIT

package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spqr/coo"
)

func TestPermutationMatrix_UnitEntryPerRowAndColumn(t *testing.T) {
	perm := []int{2, 0, 3, 1}

	p, err := coo.PermutationMatrix(perm)
	require.NoError(t, err)
	r, c := p.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, 4, p.NNZ())

	// Exactly one unit entry per row and per column, at (perm[k], k).
	rowCount := make([]int, 4)
	colCount := make([]int, 4)
	p.Do(func(i, j int, v float64) {
		require.Equal(t, 1.0, v)
		require.Equal(t, perm[j], i)
		rowCount[i]++
		colCount[j]++
	})
	for k := 0; k < 4; k++ {
		require.Equal(t, 1, rowCount[k])
		require.Equal(t, 1, colCount[k])
	}
}

func TestPermutationMatrix_IdentityVector(t *testing.T) {
	p, err := coo.PermutationMatrix([]int{0, 1, 2})
	require.NoError(t, err)

	id, err := coo.Identity(3)
	require.NoError(t, err)

	diff, err := coo.Sub(p, id)
	require.NoError(t, err)
	require.Equal(t, 0, diff.NNZ())
}

func TestPermutationMatrix_Validation(t *testing.T) {
	_, err := coo.PermutationMatrix(nil)
	require.ErrorIs(t, err, coo.ErrBadShape)

	_, err = coo.PermutationMatrix([]int{0, 3})
	require.ErrorIs(t, err, coo.ErrBadPermutation)

	_, err = coo.PermutationMatrix([]int{-1, 0})
	require.ErrorIs(t, err, coo.ErrBadPermutation)
}

func TestPermutationMatrix_PermutesColumns(t *testing.T) {
	// A is 2×3; A·P must reorder A's columns: column k of A·P is column
	// perm[k] of A.
	a := fromDenseT(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	perm := []int{2, 0, 1}

	p, err := coo.PermutationMatrix(perm)
	require.NoError(t, err)
	ap, err := coo.Mul(a, p)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for k := 0; k < 3; k++ {
			got, atErr := ap.At(i, k)
			require.NoError(t, atErr)
			want, atErr := a.At(i, perm[k])
			require.NoError(t, atErr)
			require.Equal(t, want, got)
		}
	}
}
