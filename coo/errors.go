// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coo
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package coo

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("coo: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, rows) / [0, cols). Append and At MUST return this, not panic.
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("coo: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("coo: nil matrix")

	// ErrBadDensity is returned by Random when density is outside [0, 1]
	// or not finite.
	ErrBadDensity = errors.New("coo: density must be finite in [0,1]")

	// ErrBadPermutation is returned by PermutationMatrix when an entry of the
	// permutation vector falls outside [0, n). Bijectivity itself is NOT
	// checked; out-of-range entries are the only rejected class.
	ErrBadPermutation = errors.New("coo: permutation entry out of range")
)
