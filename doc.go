// Package spqr is a thin, explicit Go binding for SuiteSparseQR — the
// multifrontal sparse QR factorization used by MATLAB's qr() — together
// with a small coordinate-form sparse matrix layer.
//
// 🚀 What is spqr?
//
//	A two-package module that brings sparse QR to Go programs:
//		• coo/  — coordinate (triplet) sparse matrices: build, combine,
//		  convert to/from gonum dense, permutation helpers
//		• spqr/ — cgo bindings to CHOLMOD + SuiteSparseQR: one explicit
//		  Context, Factorize (Q, R, column permutation E, rank estimate)
//		  and a min-norm least-squares solver
//
// ✨ Why choose spqr?
//
//   - Explicit lifetimes – no hidden global native context; you create a
//     Context and you Close it
//   - Rock-solid handle discipline – every intermediate CHOLMOD handle is
//     released exactly once, on every exit path
//   - Production factorization – rank detection, fill-reducing ordering and
//     numerical pivoting come from SuiteSparseQR itself, not a toy kernel
//   - Sentinel errors everywhere – match with errors.Is, never panic on data
//
// The contract callers rely on: for A (m×n, real), Factorize returns
// Q, R, E, rank such that Q·R = A·P(E) up to floating-point rounding,
// where P(E) is the identity when E is absent.
//
// Requires a 64-bit-index (long) build of SuiteSparse; see spqr/doc.go
// for the cgo build flags.
//
//	go get github.com/katalvlaran/spqr
package spqr
