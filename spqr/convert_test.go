// SPDX-License-Identifier: MIT

// White-box tests for the coordinate⇄CSC converters, driven through the
// test bridge in export_privates_for_test.go (test files cannot touch cgo
// directly).
package spqr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spqr/coo"
)

// cellMap accumulates a coordinate matrix into per-cell sums for
// order-independent comparison.
func cellMap(m *coo.Matrix) map[[2]int]float64 {
	out := make(map[[2]int]float64, m.NNZ())
	m.Do(func(i, j int, v float64) {
		out[[2]int{i, j}] += v
	})

	return out
}

func TestRoundTrip_PreservesEntriesExactly(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	a, err := coo.Random(15, 9, 0.2, 7)
	require.NoError(t, err)
	require.Greater(t, a.NNZ(), 0)

	got, err := ctx.roundTripForTest(a)
	require.NoError(t, err)

	r, c := got.Dims()
	require.Equal(t, 15, r)
	require.Equal(t, 9, c)

	// Same (row, col, value) content; values bit-exact — the converters
	// copy, they do not compute.
	require.Equal(t, cellMap(a), cellMap(got))
}

func TestRoundTrip_EmptyMatrix(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	a, err := coo.New(4, 6)
	require.NoError(t, err)

	got, err := ctx.roundTripForTest(a)
	require.NoError(t, err)
	r, c := got.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 6, c)
	require.Equal(t, 0, got.NNZ())
}

func TestRoundTrip_MergesDuplicatesAdditively(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	a, err := coo.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Append(0, 1, 1.25))
	require.NoError(t, a.Append(0, 1, 0.75))

	got, err := ctx.roundTripForTest(a)
	require.NoError(t, err)
	v, err := got.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestRoundTrip_ClosedContext(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	a, err := coo.New(2, 2)
	require.NoError(t, err)
	_, err = ctx.roundTripForTest(a)
	require.ErrorIs(t, err, ErrContextClosed)
}

func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptionsForTest()
	require.Equal(t, DefaultOrdering, o.ordering)
	require.Equal(t, DefaultTolerance, o.tol)
	require.Equal(t, econAsRows, o.econ)

	o = gatherOptionsForTest(WithOrdering(OrderingAMD), WithTolerance(1e-12), WithEcon(3))
	require.Equal(t, OrderingAMD, o.ordering)
	require.Equal(t, 1e-12, o.tol)
	require.Equal(t, 3, o.econ)
}
