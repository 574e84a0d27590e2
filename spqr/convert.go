// SPDX-License-Identifier: MIT

// Package spqr: conversions between coo.Matrix and CHOLMOD handles.
//
// Both directions go through a CHOLMOD triplet as the intermediate
// representation. The triplet is owned by the conversion for the duration
// of one call and is released exactly once on every exit path (deferred
// free), success or failure. Index arrays use the 64-bit long-index API
// (cholmod_l_*, SuiteSparse_long) throughout.
package spqr

/*
#include <stdlib.h>
#include <cholmod.h>
#include <SuiteSparseQR_C.h>

typedef SuiteSparse_long spqr_long;
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/spqr/coo"
)

// toSparse converts a into a CHOLMOD compressed sparse-column handle.
// The caller owns the returned handle and must release it via
// cholmod_l_free_sparse. Caller must hold c.mu with c.cc non-nil.
//
// Errors: ErrNative on allocation/conversion failure, ErrInvalidTriplet
// when CHOLMOD rejects the populated triplet.
func (c *Context) toSparse(a *coo.Matrix) (*C.cholmod_sparse, error) {
	rows, cols := a.Dims()
	nnz := a.NNZ()

	t := C.cholmod_l_allocate_triplet(
		C.size_t(rows), C.size_t(cols), C.size_t(nnz),
		0,              // stype: unsymmetric
		C.CHOLMOD_REAL, // real-valued entries
		c.cc,
	)
	if t == nil {
		return nil, fmt.Errorf("toSparse: cholmod_l_allocate_triplet: %w", ErrNative)
	}
	// Exactly-once release on every exit path, including validation failure.
	defer C.cholmod_l_free_triplet(&t, c.cc)

	if nnz > 0 {
		ri := unsafe.Slice((*C.spqr_long)(t.i), nnz)
		ci := unsafe.Slice((*C.spqr_long)(t.j), nnz)
		xs := unsafe.Slice((*C.double)(t.x), nnz)
		k := 0
		a.Do(func(i, j int, v float64) {
			ri[k] = C.spqr_long(i)
			ci[k] = C.spqr_long(j)
			xs[k] = C.double(v)
			k++
		})
	}
	// nnz is the populated count, distinct from the nzmax capacity above.
	t.nnz = C.size_t(nnz)

	if c.cc.print >= 4 {
		name := C.CString("A")
		C.cholmod_l_print_triplet(t, name, c.cc)
		C.free(unsafe.Pointer(name))
	}
	if C.cholmod_l_check_triplet(t, c.cc) != 1 {
		return nil, fmt.Errorf("toSparse: %w", ErrInvalidTriplet)
	}

	s := C.cholmod_l_triplet_to_sparse(t, C.size_t(nnz), c.cc)
	if s == nil {
		return nil, fmt.Errorf("toSparse: cholmod_l_triplet_to_sparse: %w", ErrNative)
	}

	return s, nil
}

// fromSparse converts a CHOLMOD compressed sparse-column handle back into
// coordinate form. The handle stays owned by the caller; the intermediate
// triplet is released exactly once. Caller must hold c.mu with c.cc non-nil.
//
// Errors: ErrNative when the native conversion fails.
func (c *Context) fromSparse(s *C.cholmod_sparse) (*coo.Matrix, error) {
	t := C.cholmod_l_sparse_to_triplet(s, c.cc)
	if t == nil {
		return nil, fmt.Errorf("fromSparse: cholmod_l_sparse_to_triplet: %w", ErrNative)
	}
	defer C.cholmod_l_free_triplet(&t, c.cc)

	rows, cols, nnz := int(t.nrow), int(t.ncol), int(t.nnz)
	out, err := coo.NewWithCapacity(rows, cols, nnz)
	if err != nil {
		return nil, fmt.Errorf("fromSparse: %w", err)
	}

	if nnz > 0 {
		ri := unsafe.Slice((*C.spqr_long)(t.i), nnz)
		ci := unsafe.Slice((*C.spqr_long)(t.j), nnz)
		xs := unsafe.Slice((*C.double)(t.x), nnz)
		for k := 0; k < nnz; k++ {
			if err = out.Append(int(ri[k]), int(ci[k]), float64(xs[k])); err != nil {
				return nil, fmt.Errorf("fromSparse: %w", err)
			}
		}
	}

	return out, nil
}

// roundTrip pushes a through triplet→CSC→triplet and back, exercising both
// converters without a factorization in between. The intermediate CSC
// handle is released here, exactly once. This is the white-box test
// surface (re-exported in export_privates_for_test.go — test files cannot
// touch cgo, so the body lives in this regular build file); production
// callers go through Factorize/LeastSquares.
func (c *Context) roundTrip(a *coo.Matrix) (*coo.Matrix, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return nil, ErrContextClosed
	}

	s, err := c.toSparse(a)
	if err != nil {
		return nil, err
	}
	defer C.cholmod_l_free_sparse(&s, c.cc)

	return c.fromSparse(s)
}
