// SPDX-License-Identifier: MIT

// Package coo: the Matrix type and its constructors.
// This file holds the coordinate container itself plus structural
// constructors (New, Identity, Random). Combining kernels live in ops.go,
// dense interop in dense.go, permutation helpers in permutation.go.
package coo

import (
	"math"
	"math/rand"
)

// Matrix is an append-only coordinate (triplet) sparse matrix.
//
// The shape is fixed at construction; entries are stored as three parallel
// slices. Duplicate (row, col) pairs are legal and additive: At, ToDense and
// downstream consumers sum them. The zero value is not usable; construct
// via New (or the helpers in this package).
type Matrix struct {
	rows, cols int
	row, col   []int
	val        []float64
}

// New returns an empty rows×cols coordinate matrix.
// Returns ErrBadShape when rows<=0 or cols<=0.
// Complexity: O(1); no entry storage is pre-allocated.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{rows: rows, cols: cols}, nil
}

// NewWithCapacity behaves like New but pre-allocates storage for nnz entries.
// Useful when the entry count is known up front (e.g. unmarshalling from a
// native triplet handle).
func NewWithCapacity(rows, cols, nnz int) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if nnz > 0 {
		m.row = make([]int, 0, nnz)
		m.col = make([]int, 0, nnz)
		m.val = make([]float64, 0, nnz)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols). Complexity: O(1).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored entries (duplicates counted).
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.val) }

// Append stores the entry (i, j, v).
//
// Errors:
//   - ErrOutOfRange when i or j is outside the shape.
//   - ErrNaNInf when v is NaN or ±Inf (strict finite-value policy).
//
// Zero values are stored verbatim; callers that want structural sparsity
// should skip zeros themselves. Complexity: amortized O(1).
func (m *Matrix) Append(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.row = append(m.row, i)
	m.col = append(m.col, j)
	m.val = append(m.val, v)

	return nil
}

// Entry returns the k-th stored triple in insertion order.
// k must satisfy 0 <= k < NNZ(); out-of-range k returns ErrOutOfRange.
func (m *Matrix) Entry(k int) (i, j int, v float64, err error) {
	if k < 0 || k >= len(m.val) {
		return 0, 0, 0, ErrOutOfRange
	}

	return m.row[k], m.col[k], m.val[k], nil
}

// Do calls fn for every stored entry in insertion order.
// The iteration order is deterministic (insertion order), which keeps
// marshalling into native buffers reproducible.
// Complexity: O(nnz).
func (m *Matrix) Do(fn func(i, j int, v float64)) {
	for k := range m.val {
		fn(m.row[k], m.col[k], m.val[k])
	}
}

// At returns the accumulated value at (i, j): the sum of all stored
// duplicates for that position, or 0 when none exist.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(nnz) — coordinate form has no positional index.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	var sum float64
	for k := range m.val {
		if m.row[k] == i && m.col[k] == j {
			sum += m.val[k]
		}
	}

	return sum, nil
}

// Clone returns a deep copy of m, independent of the original.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows: m.rows,
		cols: m.cols,
		row:  append([]int(nil), m.row...),
		col:  append([]int(nil), m.col...),
		val:  append([]float64(nil), m.val...),
	}

	return out
}

// Identity returns the n×n identity matrix in coordinate form
// (n unit entries on the diagonal).
// Returns ErrBadShape when n<=0.
func Identity(n int) (*Matrix, error) {
	m, err := NewWithCapacity(n, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		// Append cannot fail here: indices and values are valid by construction.
		_ = m.Append(i, i, 1.0)
	}

	return m, nil
}

// Random returns a rows×cols matrix with approximately density·rows·cols
// entries at distinct random positions, values uniform in (0, 1).
//
// Determinism: fully determined by seed; entry positions are sampled without
// replacement so the stored triples carry no duplicates.
//
// Errors: ErrBadShape on non-positive dims, ErrBadDensity when density is
// NaN or outside [0, 1].
func Random(rows, cols int, density float64, seed int64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, ErrBadDensity
	}

	target := int(math.Round(density * float64(rows) * float64(cols)))
	m, err := NewWithCapacity(rows, cols, target)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]struct{}, target)
	for len(seen) < target {
		p := rng.Intn(rows * cols)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		// Append cannot fail: position decomposes within shape, value finite.
		_ = m.Append(p/cols, p%cols, rng.Float64())
	}

	return m, nil
}
