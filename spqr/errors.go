// SPDX-License-Identifier: MIT
// Package spqr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All entry points
// MUST return these sentinels (wrapped with call-site context where useful)
// and tests MUST check them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package spqr

import "errors"

// Two native failure classes exist (and only two): a structural check on a
// freshly populated triplet failing (ErrInvalidTriplet), and any native
// entry point signalling failure through its null/negative sentinel
// (ErrNative). Neither is retried — every operation is single-shot and
// deterministic for identical input, so a retry cannot change the outcome.

var (
	// ErrContextClosed is returned when an operation is invoked on a Context
	// after Close. Create a fresh Context instead.
	ErrContextClosed = errors.New("spqr: context is closed")

	// ErrNilMatrix indicates a nil *coo.Matrix argument.
	ErrNilMatrix = errors.New("spqr: nil matrix")

	// ErrInvalidTriplet signals that CHOLMOD rejected a freshly populated
	// triplet (cholmod_l_check_triplet failed). The current call is
	// abandoned; no partial results are returned.
	ErrInvalidTriplet = errors.New("spqr: native triplet validation failed")

	// ErrNative signals that a native entry point failed (allocation failure
	// or a null/negative result sentinel). Treated as fatal for the current
	// call; never retried.
	ErrNative = errors.New("spqr: native call failed")

	// ErrDimensionMismatch indicates an argument whose length is incompatible
	// with the matrix shape (e.g. a right-hand side of the wrong length).
	ErrDimensionMismatch = errors.New("spqr: dimension mismatch")

	// ErrEmptyFactor is returned by Factorize when the requested econ size
	// collapses a factor to zero rows/columns (econ = 0 on a rank-0 input),
	// a shape coordinate form cannot represent. Use a larger econ (or the
	// default) for inputs that may have rank 0.
	ErrEmptyFactor = errors.New("spqr: factor has an empty dimension")
)
