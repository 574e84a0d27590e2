// SPDX-License-Identifier: MIT

// Package coo: combining kernels over coordinate matrices.
//
// All kernels accumulate through a dense scratch buffer and then harvest the
// nonzero cells back into coordinate form. That keeps duplicate handling
// uniform (duplicates are additive everywhere) and bounds the cost at
// O(rows·cols) memory — acceptable for the moderate shapes this package is
// built for, and the same trade the reference CSR kernels make.
//
// Every kernel validates through the central validators and returns sentinel
// errors; none of them mutate their operands.
package coo

import "math"

// harvest converts a dense accumulation buffer back into coordinate form,
// keeping only exact nonzeros. Row-major scan keeps output order stable.
func harvest(rows, cols int, buf []float64) *Matrix {
	nnz := 0
	for _, v := range buf {
		if v != 0 {
			nnz++
		}
	}
	out, _ := NewWithCapacity(rows, cols, nnz) // shape validated by callers
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := buf[i*cols+j]; v != 0 {
				_ = out.Append(i, j, v)
			}
		}
	}

	return out
}

// Mul returns a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(nnz(a)·avg-row-nnz(b)) time, O(rows(a)·cols(b)) space.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, err
	}

	// Bucket b's entries by row so each a-entry scans only matching partners.
	byRow := make([][]int, b.rows)
	for k := range b.val {
		byRow[b.row[k]] = append(byRow[b.row[k]], k)
	}

	buf := make([]float64, a.rows*b.cols)
	for k := range a.val {
		av, ai := a.val[k], a.row[k]
		for _, kb := range byRow[a.col[k]] {
			buf[ai*b.cols+b.col[kb]] += av * b.val[kb]
		}
	}

	return harvest(a.rows, b.cols, buf), nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Matrix) (*Matrix, error) {
	return addScaled(a, b, 1)
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Matrix) (*Matrix, error) {
	return addScaled(a, b, -1)
}

// addScaled accumulates a + sign·b through a dense buffer.
func addScaled(a, b *Matrix, sign float64) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, err
	}

	buf := make([]float64, a.rows*a.cols)
	for k := range a.val {
		buf[a.row[k]*a.cols+a.col[k]] += a.val[k]
	}
	for k := range b.val {
		buf[b.row[k]*b.cols+b.col[k]] += sign * b.val[k]
	}

	return harvest(a.rows, a.cols, buf), nil
}

// Scale returns alpha·a as a fresh matrix. Scaling by zero yields an empty
// matrix of the same shape (structural zeros are not stored).
// Errors: ErrNilMatrix, ErrNaNInf when alpha is not finite.
func Scale(alpha float64, a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, ErrNaNInf
	}

	out, _ := NewWithCapacity(a.rows, a.cols, a.NNZ())
	for k := range a.val {
		if v := alpha * a.val[k]; v != 0 {
			_ = out.Append(a.row[k], a.col[k], v)
		}
	}

	return out, nil
}

// Transpose returns aᵀ. Entry order follows a's insertion order.
// Errors: ErrNilMatrix.
func Transpose(a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}

	out, _ := NewWithCapacity(a.cols, a.rows, a.NNZ())
	for k := range a.val {
		_ = out.Append(a.col[k], a.row[k], a.val[k])
	}

	return out, nil
}

// MulVec returns a·x as a fresh dense vector of length a.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != a.Cols()).
// Complexity: O(nnz).
func MulVec(a *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(x, a.cols); err != nil {
		return nil, err
	}

	out := make([]float64, a.rows)
	for k := range a.val {
		out[a.row[k]] += a.val[k] * x[a.col[k]]
	}

	return out, nil
}

// AbsSum returns the sum of absolute values of the matrix a represents,
// i.e. Σ|Σ duplicates| per cell. For duplicate-free matrices this equals
// Σ|v| over stored entries; with duplicates the per-cell accumulation is
// honored first, matching the additive semantics everywhere else.
// Errors: ErrNilMatrix.
func AbsSum(a *Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, err
	}

	buf := make([]float64, a.rows*a.cols)
	for k := range a.val {
		buf[a.row[k]*a.cols+a.col[k]] += a.val[k]
	}
	var sum float64
	for _, v := range buf {
		sum += math.Abs(v)
	}

	return sum, nil
}
