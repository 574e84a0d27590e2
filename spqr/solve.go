// SPDX-License-Identifier: MIT

// Package spqr: dense right-hand-side least squares.
package spqr

/*
#include <cholmod.h>
#include <SuiteSparseQR_C.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/spqr/coo"
)

// LeastSquares returns the min-2-norm solution x of min‖a·x − b‖₂ via
// SuiteSparseQR_C_backslash_default. len(b) must equal a's row count;
// the returned slice has length a.Cols(). Rank-deficient a is fine — the
// native solver picks the minimum-norm solution.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrContextClosed,
// ErrInvalidTriplet, ErrNative.
func (c *Context) LeastSquares(a *coo.Matrix, b []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("LeastSquares: %w", ErrNilMatrix)
	}
	rows, cols := a.Dims()
	if len(b) != rows {
		return nil, fmt.Errorf("LeastSquares: rhs length %d, want %d: %w",
			len(b), rows, ErrDimensionMismatch)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return nil, fmt.Errorf("LeastSquares: %w", ErrContextClosed)
	}

	s, err := c.toSparse(a)
	if err != nil {
		return nil, fmt.Errorf("LeastSquares: %w", err)
	}
	defer C.cholmod_l_free_sparse(&s, c.cc)

	bd := C.cholmod_l_allocate_dense(
		C.size_t(rows), 1, C.size_t(rows), C.CHOLMOD_REAL, c.cc)
	if bd == nil {
		return nil, fmt.Errorf("LeastSquares: cholmod_l_allocate_dense: %w", ErrNative)
	}
	defer C.cholmod_l_free_dense(&bd, c.cc)

	bs := unsafe.Slice((*C.double)(bd.x), rows)
	for i, v := range b {
		bs[i] = C.double(v)
	}

	xd := C.SuiteSparseQR_C_backslash_default(s, bd, c.cc)
	if xd == nil {
		return nil, fmt.Errorf("LeastSquares: SuiteSparseQR_C_backslash_default: %w", ErrNative)
	}
	defer C.cholmod_l_free_dense(&xd, c.cc)

	out := make([]float64, cols)
	xs := unsafe.Slice((*C.double)(xd.x), cols)
	for i := range out {
		out[i] = float64(xs[i])
	}

	return out, nil
}
