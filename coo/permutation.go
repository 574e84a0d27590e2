// SPDX-License-Identifier: MIT

// Package coo: permutation helpers.
package coo

// PermutationMatrix returns the n×n permutation matrix P for the column
// permutation vector perm (n = len(perm)): P has exactly one unit entry per
// column, at (perm[k], k).
//
// This is the P in the sparse-QR contract Q·R = A·P: column k of A·P is
// column perm[k] of A.
//
// Validation: every perm[k] must lie in [0, n) (ErrBadPermutation otherwise).
// Bijectivity is NOT checked — a vector with repeated targets yields a
// structurally inconsistent matrix, which is the caller's responsibility.
//
// Errors: ErrBadShape when perm is empty.
func PermutationMatrix(perm []int) (*Matrix, error) {
	n := len(perm)
	if n == 0 {
		return nil, ErrBadShape
	}

	m, err := NewWithCapacity(n, n, n)
	if err != nil {
		return nil, err
	}
	for k, target := range perm {
		if target < 0 || target >= n {
			return nil, ErrBadPermutation
		}
		_ = m.Append(target, k, 1.0)
	}

	return m, nil
}
