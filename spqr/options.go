// SPDX-License-Identifier: MIT

// Package spqr: functional configuration for the factorization call.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants, mirroring the native sentinels),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; defaults are the native
//     library's own default sentinels, not independently tuned values.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option state is unexported; public APIs consume ...Option.
package spqr

import "math"

// Ordering selects the fill-reducing column ordering strategy used by
// SuiteSparseQR. The constant values mirror the native SPQR_ORDERING_*
// macros; Factorize passes them through verbatim.
type Ordering int

const (
	// OrderingFixed uses the columns in their natural order, no permutation
	// output (E is absent).
	OrderingFixed Ordering = 0

	// OrderingNatural is the natural ordering with an explicit identity E.
	OrderingNatural Ordering = 1

	// OrderingColamd applies COLAMD to A.
	OrderingColamd Ordering = 2

	// orderingGiven (SPQR_ORDERING_GIVEN) requires a caller-supplied
	// permutation, which this entry point does not expose; kept unexported
	// so it cannot be selected.
	orderingGiven Ordering = 3

	// OrderingCholmod lets CHOLMOD choose (AMD on AᵀA, then METIS if fill is
	// high and METIS is available).
	OrderingCholmod Ordering = 4

	// OrderingAMD applies AMD to AᵀA.
	OrderingAMD Ordering = 5

	// OrderingMetis applies METIS to AᵀA (requires a METIS-enabled build).
	OrderingMetis Ordering = 6

	// OrderingDefault is the native default policy (SPQR_ORDERING_DEFAULT):
	// SuiteSparseQR picks among COLAMD/AMD/METIS on its own.
	OrderingDefault Ordering = 7

	// OrderingBest tries all applicable orderings and keeps the best.
	OrderingBest Ordering = 8

	// OrderingBestAMD tries AMD-family orderings and keeps the best.
	OrderingBestAMD Ordering = 9
)

// Tolerance sentinels, mirroring the native macros. Columns with 2-norm
// below the tolerance are treated as zero during rank detection.
const (
	// DefaultTolerance (SPQR_DEFAULT_TOL) lets the native library derive the
	// pivot tolerance from A itself. This is the default policy.
	DefaultTolerance = -2.0

	// NoTolerance (SPQR_NO_TOL) disables tolerance-based rank detection
	// entirely (rank is min(m, n) structurally).
	NoTolerance = -1.0
)

// DefaultOrdering is the ordering used when no WithOrdering option is given.
const DefaultOrdering = OrderingDefault

// econAsRows is the internal sentinel meaning "econ = A's row count",
// the spec default when WithEcon is not supplied.
const econAsRows = -1

// Internal panic messages (no magic strings).
const (
	panicOrderingInvalid  = "spqr: WithOrdering: unknown or unsupported ordering"
	panicToleranceInvalid = "spqr: WithTolerance: tol must be ≥ 0, DefaultTolerance or NoTolerance"
	panicEconInvalid      = "spqr: WithEcon: econ must be ≥ 0"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	ordering Ordering // DefaultOrdering
	tol      float64  // DefaultTolerance
	econ     int      // econAsRows sentinel ⇒ use A's row count
}

// Valid reports whether ord may be passed to WithOrdering. The native
// GIVEN ordering is invalid here because this binding does not accept a
// caller-supplied permutation.
func (ord Ordering) Valid() bool {
	return ord >= OrderingFixed && ord <= OrderingBestAMD && ord != orderingGiven
}

// ValidTolerance reports whether tol may be passed to WithTolerance:
// any finite tol ≥ 0, or the sentinels DefaultTolerance / NoTolerance.
func ValidTolerance(tol float64) bool {
	if math.IsNaN(tol) {
		return false
	}

	return (tol >= 0 && !math.IsInf(tol, 1)) || tol == DefaultTolerance || tol == NoTolerance
}

// WithOrdering selects the fill-reducing ordering strategy.
// Panics when ord is not one of the exported Ordering constants
// (programmer error); callers holding untrusted input should check
// Ordering.Valid first.
func WithOrdering(ord Ordering) Option {
	if !ord.Valid() {
		panic(panicOrderingInvalid)
	}

	return func(o *options) { o.ordering = ord }
}

// WithTolerance sets the numerical pivot tolerance used for rank detection.
// Panics when ValidTolerance(tol) is false (programmer error); callers
// holding untrusted input should check ValidTolerance first.
func WithTolerance(tol float64) Option {
	if !ValidTolerance(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithEcon sets the econ-size hint: R is returned with
// max(min(m, econ), rank) rows. When absent, econ defaults to A's row
// count (the full-size R). Panics when econ is negative.
//
// econ = 0 is the fully economic size (R gets exactly rank rows), legal
// for any input of positive rank; on a rank-0 input it would collapse R
// to zero rows, so Factorize rejects that combination with
// ErrEmptyFactor.
func WithEcon(econ int) Option {
	if econ < 0 {
		panic(panicEconInvalid)
	}

	return func(o *options) { o.econ = econ }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins). The canonical internal entry point.
func gatherOptions(user ...Option) options {
	o := options{
		ordering: DefaultOrdering,
		tol:      DefaultTolerance,
		econ:     econAsRows,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
