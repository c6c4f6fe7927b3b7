// SPDX-License-Identifier: MIT
// Package matrix - Cholesky factorization and SPD solves.
//
// Purpose:
//   - Factor a symmetric positive-definite A as L·Lᵀ (L lower triangular).
//   - Solve A·X = B for many right-hand sides by forward/back substitution.
//
// Notes:
//   - Only the lower triangle of A is read; symmetry is the caller's contract.
//   - A pivot at or below n·ε·max(diag(A)) is reported as ErrNotPositiveDefinite.
//     WithEpsilon raises that floor when the caller wants a stricter check.

package matrix

import (
	"math"
)

const (
	opCholesky      = "Cholesky"
	opSolveCholesky = "SolveCholesky"
	opSolveSPD      = "SolveSPD"
)

// machineEpsilon is the float64 unit roundoff 2^-52.
const machineEpsilon = 2.220446049250313e-16

// denseOf returns m itself when it is already *Dense, otherwise a *Dense copy.
// The result must be treated as read-only by callers that did not allocate it.
// Complexity: O(1) fast path, O(r*c) otherwise.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
// MAIN DESCRIPTION:
//   - Column-oriented Cholesky–Banachiewicz on a flat row-major copy.
//
// Implementation:
//   - Stage 1: validate non-nil square input; reject NaN/±Inf on the lower triangle.
//   - Stage 2: derive the pivot floor from n, machine epsilon and the largest diagonal entry.
//   - Stage 3: for j = 0..n-1 compute L[j,j] = sqrt(A[j,j] − Σ L[j,k]²) and the
//     sub-diagonal column L[i,j] = (A[i,j] − Σ L[i,k]·L[j,k]) / L[j,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//   - ErrNaNInf (Stage 1).
//   - ErrNotPositiveDefinite when a pivot falls to or below the floor (Stage 3).
//
// Determinism:
//   - Fixed j→i→k loop order.
//
// Complexity:
//   - Time O(n³/3), Space O(n²) for L.
func Cholesky(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)

	src, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := src.r

	// Stage 1b: finiteness of the lower triangle and the largest diagonal.
	var i, j, k int
	var v, maxDiag float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			v = src.data[i*n+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opCholesky, ErrNaNInf)
			}
		}
		if d := math.Abs(src.data[i*n+i]); d > maxDiag {
			maxDiag = d
		}
	}

	// Stage 2: pivot floor.
	floor := float64(n) * machineEpsilon * maxDiag
	if o.epsSet && o.eps > floor {
		floor = o.eps
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	// Stage 3: column sweep.
	var sum, ljj float64
	var rowI, rowJ int
	for j = 0; j < n; j++ {
		rowJ = j * n
		sum = src.data[rowJ+j]
		for k = 0; k < j; k++ {
			sum -= L.data[rowJ+k] * L.data[rowJ+k]
		}
		if !(sum > floor) { // also catches NaN
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		ljj = math.Sqrt(sum)
		L.data[rowJ+j] = ljj

		for i = j + 1; i < n; i++ {
			rowI = i * n
			sum = src.data[rowI+j]
			for k = 0; k < j; k++ {
				sum -= L.data[rowI+k] * L.data[rowJ+k]
			}
			L.data[rowI+j] = sum / ljj
		}
	}

	return L, nil
}

// SolveCholesky solves (L·Lᵀ)·X = B given the lower factor L from Cholesky.
//
// Implementation:
//   - Stage 1: validate L square, B non-nil with B.Rows == L.Rows.
//   - Stage 2: per column of B, forward substitution L·y = b then back substitution Lᵀ·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNotPositiveDefinite on a zero diagonal in L.
//
// Complexity:
//   - Time O(n²·k) for B with k columns, Space O(n·k).
func SolveCholesky(L, B Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(L); err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	if err := ValidateNotNil(B); err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	if B.Rows() != L.Rows() {
		return nil, matrixErrorf(opSolveCholesky, ErrDimensionMismatch)
	}

	l, err := denseOf(L)
	if err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	b, err := denseOf(B)
	if err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	n, k := l.r, b.c
	for i := 0; i < n; i++ {
		if l.data[i*n+i] == 0 {
			return nil, matrixErrorf(opSolveCholesky, ErrNotPositiveDefinite)
		}
	}

	X, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}

	y := make([]float64, n)
	var i, j, col int
	var sum float64
	for col = 0; col < k; col++ {
		// Forward: L·y = b[:,col].
		for i = 0; i < n; i++ {
			sum = b.data[i*k+col]
			for j = 0; j < i; j++ {
				sum -= l.data[i*n+j] * y[j]
			}
			y[i] = sum / l.data[i*n+i]
		}
		// Backward: Lᵀ·x = y, with Lᵀ[i,j] = L[j,i].
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for j = i + 1; j < n; j++ {
				sum -= l.data[j*n+i] * X.data[j*k+col]
			}
			X.data[i*k+col] = sum / l.data[i*n+i]
		}
	}

	return X, nil
}

// SolveSPD solves A·X = B for symmetric positive-definite A via Cholesky.
// Options are forwarded to Cholesky.
// Errors: see Cholesky and SolveCholesky.
// Complexity: O(n³/3 + n²·k).
func SolveSPD(a, b Matrix, opts ...Option) (*Dense, error) {
	L, err := Cholesky(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveSPD, err)
	}
	X, err := SolveCholesky(L, b)
	if err != nil {
		return nil, matrixErrorf(opSolveSPD, err)
	}

	return X, nil
}
