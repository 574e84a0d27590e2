// SPDX-License-Identifier: MIT

// Package spqr: the factorization entry point.
package spqr

/*
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

// Factorization is the result of one Factorize call: fresh per call,
// never cached or reused.
//
// The contract callers rely on: Q·R = A·P(Perm) up to floating-point
// rounding, where P(Perm) is the permutation matrix with P[Perm[k], k] = 1
// and the identity when Perm is nil.
type Factorization struct {
	// Q is the orthogonal factor, m×econ in coordinate form.
	Q *coo.Matrix

	// R is the upper-trapezoidal factor, econ×n in coordinate form.
	R *coo.Matrix

	// Perm is the column permutation E of length n, a bijection on [0, n).
	// nil means the native call computed no permutation (identity).
	Perm []int

	// Rank is the native library's estimate of the numerical rank of A.
	Rank int
}

// PermMatrix returns P(Perm) as an n×n coordinate matrix: the identity when
// Perm is nil, otherwise the matrix with unit entries at (Perm[k], k).
func (f *Factorization) PermMatrix() (*coo.Matrix, error) {
	if f.Perm == nil {
		return coo.Identity(f.R.Cols())
	}

	return coo.PermutationMatrix(f.Perm)
}

// Factorize computes the sparse QR factorization of a via
// SuiteSparseQR_C_QR.
//
// Policy knobs (ordering strategy, pivot tolerance, econ size) default to
// the native library's own sentinels and may be overridden per call with
// WithOrdering / WithTolerance / WithEcon. No preconditions beyond the
// coordinate-matrix invariants: a need not be square, full rank or
// symmetric; nnz = 0 is legal and yields rank 0.
//
// Native handle discipline: the converted A and the returned Q/R handles
// are released exactly once each. The permutation buffer E is owned by the
// native library and is intentionally never released through the generic
// free path — freeing it trips the allocator (a documented quirk of the
// native contract, not a leak to fix here).
//
// Errors: ErrNilMatrix, ErrContextClosed, ErrInvalidTriplet, ErrNative.
func (c *Context) Factorize(a *coo.Matrix, opts ...Option) (*Factorization, error) {
	if a == nil {
		return nil, fmt.Errorf("Factorize: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	rows, cols := a.Dims()
	econ := o.econ
	if econ == econAsRows {
		econ = rows
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cc == nil {
		return nil, fmt.Errorf("Factorize: %w", ErrContextClosed)
	}

	s, err := c.toSparse(a)
	if err != nil {
		return nil, fmt.Errorf("Factorize: %w", err)
	}
	defer C.cholmod_l_free_sparse(&s, c.cc)

	var (
		q, r *C.cholmod_sparse
		e    *C.spqr_long
	)
	rank := C.SuiteSparseQR_C_QR(
		C.int(o.ordering), C.double(o.tol), C.spqr_long(econ), s,
		&q, &r, &e,
		c.cc,
	)
	// cholmod_l_free_sparse on a NULL handle is a native no-op, so the
	// releases are installed before the outputs are inspected: a failed
	// call that produced only one of the two handles still releases it
	// exactly once.
	defer C.cholmod_l_free_sparse(&q, c.cc)
	defer C.cholmod_l_free_sparse(&r, c.cc)
	if rank < 0 || q == nil || r == nil {
		return nil, fmt.Errorf("Factorize: SuiteSparseQR_C_QR: %w", ErrNative)
	}
	// econ = 0 on a rank-0 input collapses R to zero rows (and Q to zero
	// columns), a shape coordinate form cannot represent.
	if rank == 0 && econ == 0 {
		return nil, fmt.Errorf("Factorize: econ 0 with a rank-0 matrix: %w", ErrEmptyFactor)
	}

	qm, err := c.fromSparse(q)
	if err != nil {
		return nil, fmt.Errorf("Factorize: Q: %w", err)
	}
	rm, err := c.fromSparse(r)
	if err != nil {
		return nil, fmt.Errorf("Factorize: R: %w", err)
	}

	// NULL E means no permutation was computed; report it as absent rather
	// than materializing an identity vector.
	var perm []int
	if e != nil {
		es := unsafe.Slice(e, cols)
		perm = make([]int, cols)
		for k := range es {
			perm[k] = int(es[k])
		}
	}

	return &Factorization{Q: qm, R: rm, Perm: perm, Rank: int(rank)}, nil
}
