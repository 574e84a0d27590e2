// Package coo provides coordinate-form (triplet) sparse matrices.
//
// The coo package provides:
//
//   - Matrix, an append-only coordinate sparse matrix over a fixed
//     (rows × cols) shape, stored as parallel (row, col, value) slices.
//   - Structural helpers: Identity, Random, PermutationMatrix.
//   - Combining kernels: Mul, Add, Sub, Scale, Transpose, MulVec.
//   - Converters to and from gonum's mat.Dense for interop with dense
//     linear-algebra routines.
//
// Coordinate form is the natural exchange format for sparse factorization
// backends: it is what github.com/katalvlaran/spqr/spqr marshals into
// CHOLMOD triplets and back. Duplicate (row, col) pairs are permitted and
// carry additive semantics — every consumer (At, ToDense, the native
// conversion) accumulates them.
//
// All entries must be finite: Append rejects NaN and ±Inf.
package coo
