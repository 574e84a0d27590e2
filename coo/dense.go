// SPDX-License-Identifier: MIT

// Package coo: gonum interop.
// Converters between coordinate form and gonum's mat.Dense, so callers can
// hand factors to dense routines (residual checks, solves, plotting) without
// writing marshalling loops.
package coo

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense returns the dense equivalent of m as a fresh *mat.Dense.
// Duplicate entries accumulate, matching coordinate-form semantics.
// Complexity: O(rows·cols + nnz).
func (m *Matrix) ToDense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for k := range m.val {
		d.Set(m.row[k], m.col[k], d.At(m.row[k], m.col[k])+m.val[k])
	}

	return d
}

// FromDense returns the coordinate form of d, keeping entries with
// |v| > eps. Use eps = 0 to keep every exact nonzero.
//
// Errors:
//   - ErrNilMatrix when d is nil.
//   - ErrNaNInf when eps is NaN or negative, or d carries non-finite values.
//
// Complexity: O(rows·cols).
func FromDense(d *mat.Dense, eps float64) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if math.IsNaN(eps) || eps < 0 {
		return nil, ErrNaNInf
	}

	rows, cols := d.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if math.Abs(v) > eps {
				_ = m.Append(i, j, v)
			}
		}
	}

	return m, nil
}
