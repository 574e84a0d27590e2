// SPDX-License-Identifier: MIT

package spqr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spqr/coo"
	"github.com/katalvlaran/spqr/spqr"
)

func TestLeastSquares_SquareSystemRecoversX(t *testing.T) {
	ctx, err := spqr.NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	// Well-conditioned 3×3 system with a known solution.
	a, err := coo.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, a.Append(0, 0, 4))
	require.NoError(t, a.Append(0, 1, 1))
	require.NoError(t, a.Append(1, 1, 3))
	require.NoError(t, a.Append(2, 0, 1))
	require.NoError(t, a.Append(2, 2, 5))

	want := []float64{1, -2, 3}
	b, err := coo.MulVec(a, want)
	require.NoError(t, err)

	got, err := ctx.LeastSquares(a, b)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-10)
	}
}

func TestLeastSquares_OverdeterminedMatchesDenseQR(t *testing.T) {
	ctx, err := spqr.NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	const m, n = 9, 4
	a, err := coo.Random(m, n, 0.5, 321)
	require.NoError(t, err)
	// Anchor the diagonal so A has full column rank.
	for j := 0; j < n; j++ {
		require.NoError(t, a.Append(j, j, 2.0))
	}

	b := make([]float64, m)
	for i := range b {
		b[i] = float64(i + 1)
	}

	got, err := ctx.LeastSquares(a, b)
	require.NoError(t, err)
	require.Len(t, got, n)

	// Independent check against gonum's dense QR solver.
	var qr mat.QR
	qr.Factorize(a.ToDense())
	var want mat.VecDense
	require.NoError(t, qr.SolveVecTo(&want, false, mat.NewVecDense(m, b)))
	for i := 0; i < n; i++ {
		require.InDelta(t, want.AtVec(i), got[i], 1e-8)
	}
}

func TestLeastSquares_Validation(t *testing.T) {
	ctx, err := spqr.NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.LeastSquares(nil, []float64{1})
	require.ErrorIs(t, err, spqr.ErrNilMatrix)

	a, err := coo.Identity(3)
	require.NoError(t, err)
	_, err = ctx.LeastSquares(a, []float64{1, 2})
	require.ErrorIs(t, err, spqr.ErrDimensionMismatch)

	closed, err := spqr.NewContext()
	require.NoError(t, err)
	require.NoError(t, closed.Close())
	_, err = closed.LeastSquares(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, spqr.ErrContextClosed)
}
