// Package spqr binds SuiteSparseQR (the sparse multifrontal QR
// factorization from SuiteSparse, driven through the CHOLMOD common
// context) to coordinate-form matrices from
// github.com/katalvlaran/spqr/coo.
//
// The spqr package provides:
//
//   - Context: one explicitly owned cholmod_common per caller. Create it
//     with NewContext, release it with Close. No hidden process-wide
//     singleton; every operation is a Context method.
//   - Factorize: the QR entry point. For A (m×n, real) it returns
//     Q, R, the column permutation E and the estimated rank, with
//     Q·R = A·P(E) up to floating-point rounding (P(E) = identity when
//     E is absent).
//   - LeastSquares: min-2-norm solution of min‖Ax−b‖ via
//     SuiteSparseQR_C_backslash_default.
//
// All pivoting, fill-reducing ordering and rank detection happen inside
// the native library; this package only marshals coordinate matrices
// into CHOLMOD triplet/sparse handles and back, releasing every
// intermediate handle exactly once on every exit path.
//
// # Concurrency
//
// A Context serializes all native calls through an internal mutex, so a
// single Context may be shared across goroutines. Independent Contexts
// are fully independent.
//
// # Building
//
// Requires a 64-bit-index (SuiteSparse_long) build of CHOLMOD and
// SuiteSparseQR plus their headers, e.g. on Debian/Ubuntu:
//
//	apt install libsuitesparse-dev
//
// The cgo directives in this package assume headers under
// /usr/include/suitesparse and link -lspqr -lcholmod. A 32-bit-index
// build of SuiteSparse is a configuration mismatch and is not supported.
package spqr
