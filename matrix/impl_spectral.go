// SPDX-License-Identifier: MIT
// Package matrix - spectral radius estimation.
//
// Purpose:
//   - Estimate ρ(A) = max |λ_i(A)| for a general (non-symmetric) square matrix.
//   - SpectralRadius: iterative, O(n²) per step, no dense decomposition.
//   - SpectralRadiusEigen: exact reference through gonum's eigen solver, O(n³).
//
// Algorithm (SpectralRadius):
//   Plain power iteration oscillates when the dominant eigenvalues come as a
//   complex-conjugate pair or as ±λ, and crawls when several eigenvalues share
//   almost the same modulus, which is the common case for random real matrices
//   (their spectrum fills a disk). Each restart therefore builds an Arnoldi
//   basis of the Krylov space span{q, A·q, ..., A^(k-1)·q} and takes the
//   largest modulus among the eigenvalues of the k×k Hessenberg projection
//   (Ritz values). The next start vector is A^k·q, recovered from the Arnoldi
//   relation without extra products. The dominant eigenvalues are then
//   separated inside the projection instead of by the iteration.
//
//   A matrix whose non-zero pattern has no cycle is nilpotent whatever its
//   values, so ρ = 0 is returned exactly for it.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	opSpectral      = "SpectralRadius"
	opSpectralEigen = "SpectralRadiusEigen"
)

// spectralTiny keeps the relative convergence test meaningful near ρ = 0.
const spectralTiny = 1e-300

// krylovBreakdown is the relative size of the Arnoldi residual below which the
// current Krylov space is treated as A-invariant.
const krylovBreakdown = 1e-12

// spectralKrylovDim is the Arnoldi basis size per restart. Matrices of this
// order or smaller are solved directly.
const spectralKrylovDim = 32

// SpectralRadius estimates the largest eigenvalue magnitude of a square matrix.
// MAIN DESCRIPTION:
//   - Restarted Arnoldi: Ritz values of a 32-dimensional Krylov space per restart.
//
// Implementation:
//   - Stage 1: validate square non-nil input with finite entries; an acyclic
//     non-zero pattern (including all-zero) ⇒ 0.
//   - Stage 2: n ≤ 32 ⇒ exact eigenvalues (gonum), no iteration.
//   - Stage 3: draw a Gaussian start vector from the option generator and normalize it.
//   - Stage 4: per restart: Arnoldi with re-orthogonalization builds V (n×(k+1)) and
//     the Hessenberg H̄ ((k+1)×k); the estimate is max |eig(H[:k,:k])|. A residual at
//     roundoff level means the Krylov space is invariant and its eigenvalues are exact.
//   - Stage 5: stop when |est − prev| ≤ tol·est; otherwise restart from
//     A^k·q = V·(H̄···H̄·e₁), normalized.
//
// Behavior highlights:
//   - MaxIterations caps restarts; each restart costs k matrix-vector products.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (Stage 1).
//   - ErrEigenFailed when a projection cannot be diagonalized.
//   - ErrNotConverged after MaxIterations restarts; the last estimate is still returned.
//
// Determinism:
//   - Same matrix + same seed ⇒ bit-identical estimate.
//
// Complexity:
//   - Time O(r·(k·n² + k²·n + k³)) for r restarts, Space O(k·n).
func SpectralRadius(a Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opSpectral, err)
	}
	o := gatherOptions(opts...)

	d, err := denseOf(a)
	if err != nil {
		return 0, matrixErrorf(opSpectral, err)
	}
	if err = ValidateFiniteVec(d.data); err != nil {
		return 0, matrixErrorf(opSpectral, err)
	}
	if acyclicPattern(d) {
		return 0, nil
	}

	n := d.r
	if n <= spectralKrylovDim {
		rho, eerr := eigenRadius(n, d.data)
		if eerr != nil {
			return 0, matrixErrorf(opSpectral, eerr)
		}

		return rho, nil
	}

	k := spectralKrylovDim
	// ‖A‖_F scales the floor below which an Arnoldi residual counts as zero.
	roundoff := float64(n) * machineEpsilon * Norm2(d.data)

	q := make([]float64, n)
	for i := range q {
		q[i] = o.rng.NormFloat64()
	}
	if !normalize(q) {
		for i := range q {
			q[i] = 1
		}
		normalize(q)
	}

	var (
		basis      = make([][]float64, k+1) // Arnoldi vectors V[0..k]
		hess       = make([]float64, (k+1)*k)
		c, cn      = make([]float64, k+1), make([]float64, k+1)
		w          []float64
		est, prev  float64
		hij, beta  float64
		scale, sum float64
		m          int
		invariant  bool
	)
	for i := range basis {
		basis[i] = make([]float64, n)
	}

	for iter := 0; iter < o.maxIter; iter++ {
		copy(basis[0], q)
		for i := range hess {
			hess[i] = 0
		}
		m, invariant = k, false

		for j := 0; j < k; j++ {
			if w, err = MatVec(d, basis[j]); err != nil {
				return 0, matrixErrorf(opSpectral, err)
			}
			scale = Norm2(w)
			// Two Gram-Schmidt passes keep V orthonormal to working precision.
			for pass := 0; pass < 2; pass++ {
				for i := 0; i <= j; i++ {
					hij = dot(basis[i], w)
					hess[i*k+j] += hij
					for l := range w {
						w[l] -= hij * basis[i][l]
					}
				}
			}
			beta = Norm2(w)
			if beta <= math.Max(krylovBreakdown*scale, roundoff) {
				m, invariant = j+1, true
				break
			}
			hess[(j+1)*k+j] = beta
			for l := range w {
				basis[j+1][l] = w[l] / beta
			}
		}

		if est, err = ritzRadius(hess, k, m); err != nil {
			return 0, matrixErrorf(opSpectral, err)
		}
		if invariant {
			return est, nil
		}
		if iter > 0 && math.Abs(est-prev) <= o.tol*math.Max(est, spectralTiny) {
			return est, nil
		}
		prev = est

		// A^(j+1)·q = V·(H̄·c_j) by the Arnoldi relation A·V_j = V_(j+1)·H̄_j.
		for i := range c {
			c[i] = 0
		}
		c[0] = 1
		for j := 0; j < k; j++ {
			for i := 0; i <= j+1; i++ {
				sum = 0
				for l := 0; l <= j; l++ {
					sum += hess[i*k+l] * c[l]
				}
				cn[i] = sum
			}
			for i := j + 2; i <= k; i++ {
				cn[i] = 0
			}
			if !normalize(cn) {
				return 0, nil // A^(j+1)·q vanished
			}
			c, cn = cn, c
		}
		for i := range q {
			q[i] = 0
		}
		for l := 0; l <= k; l++ {
			for i := range q {
				q[i] += c[l] * basis[l][i]
			}
		}
		if !normalize(q) {
			return 0, nil
		}
	}

	return est, matrixErrorf(opSpectral, ErrNotConverged)
}

// acyclicPattern reports whether the directed graph with an edge i→j for every
// a_ij ≠ 0 has no cycle (Kahn's topological sort). Such a matrix is permutable to
// strictly triangular form and is therefore nilpotent.
// Complexity: O(n²).
func acyclicPattern(d *Dense) bool {
	n := d.r
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d.data[i*n+j] != 0 {
				indeg[j]++
			}
		}
	}
	queue := make([]int, 0, n)
	for j, deg := range indeg {
		if deg == 0 {
			queue = append(queue, j)
		}
	}
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		for j := 0; j < n; j++ {
			if d.data[i*n+j] != 0 {
				if indeg[j]--; indeg[j] == 0 {
					queue = append(queue, j)
				}
			}
		}
	}

	return len(queue) == n
}

// ritzRadius returns the largest eigenvalue modulus of the leading m×m block of
// the row-major Hessenberg buffer h (row stride k).
func ritzRadius(h []float64, k, m int) (float64, error) {
	block := make([]float64, m*m)
	for i := 0; i < m; i++ {
		copy(block[i*m:(i+1)*m], h[i*k:i*k+m])
	}

	return eigenRadius(m, block)
}

// eigenRadius computes max |λ| of the row-major n×n matrix in data through gonum.
func eigenRadius(n int, data []float64) (float64, error) {
	// g shares data's backing slice; Factorize works on its own copy.
	g := mat.NewDense(n, n, data)
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return 0, ErrEigenFailed
	}

	var rho float64
	for _, lambda := range eig.Values(nil) {
		if m := cmplx.Abs(lambda); m > rho {
			rho = m
		}
	}

	return rho, nil
}

// normalize scales x to unit length in place and reports false when ‖x‖ = 0.
func normalize(x []float64) bool {
	nrm := Norm2(x)
	if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return false
	}
	for i := range x {
		x[i] /= nrm
	}

	return true
}

// SpectralRadiusEigen computes ρ(A) from a full eigendecomposition.
// Uses gonum's general (non-symmetric) eigen solver; intended for small
// matrices and as the reference value for the iterative estimator.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrEigenFailed.
// Complexity: O(n³) time, O(n²) space.
func SpectralRadiusEigen(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opSpectralEigen, err)
	}
	d, err := denseOf(a)
	if err != nil {
		return 0, matrixErrorf(opSpectralEigen, err)
	}

	rho, err := eigenRadius(d.r, d.data)
	if err != nil {
		return 0, matrixErrorf(opSpectralEigen, err)
	}

	return rho, nil
}
