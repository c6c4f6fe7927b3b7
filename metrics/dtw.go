// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"math"
)

const metricDTW = "DTW"

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +∞):
//
//	cost    = |a[i-1] − b[j-1]|
//	D[i][j] = cost + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//
// with p = SlopePenalty. Cells outside the Sakoe–Chiba band are +∞, so a band
// narrower than |n−m| yields distance +∞ (not an error) and a nil path.
//
// A nil opts means DefaultDTWOptions().
//
// Errors:
//   - ErrEmptyInput if either sequence is empty.
//   - ErrBadInput for Window < -1 or a negative/non-finite SlopePenalty.
//   - ErrPathNeedsMatrix for ReturnPath without FullMatrix.
//
// Complexity: time O(n·m); memory O(n·m) for FullMatrix, O(m) otherwise.
func DTW(a, b []float64, opts *DTWOptions) (distance float64, path []Coord, err error) {
	o := DefaultDTWOptions()
	if opts != nil {
		o = *opts
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, metricErrorf(metricDTW, ErrEmptyInput)
	}
	if o.Window < -1 {
		return 0, nil, metricErrorf(metricDTW, fmt.Errorf("window=%d: %w", o.Window, ErrBadInput))
	}
	if !(o.SlopePenalty >= 0) || math.IsInf(o.SlopePenalty, 0) {
		return 0, nil, metricErrorf(metricDTW, fmt.Errorf("slope penalty=%g: %w", o.SlopePenalty, ErrBadInput))
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, metricErrorf(metricDTW, ErrPathNeedsMatrix)
	}

	switch o.MemoryMode {
	case FullMatrix:
		dp := dtwFull(a, b, o)
		distance = dp[len(a)][len(b)]
		if o.ReturnPath && !math.IsInf(distance, 1) {
			path = backtrack(dp, len(a), len(b), o.SlopePenalty)
		}
	case TwoRows:
		distance = dtwTwoRows(a, b, o)
	case NoMemory:
		distance = dtwOneRow(a, b, o)
	default:
		return 0, nil, metricErrorf(metricDTW, fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput))
	}

	return distance, path, nil
}

// outside reports whether (i, j) falls outside the band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

func dtwFull(a, b []float64, o DTWOptions) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			dp[i][j] = cost + min3(dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty, dp[i-1][j-1])
		}
	}

	return dp
}

func dtwTwoRows(a, b []float64, o DTWOptions) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// dtwOneRow updates a single row in place; diag carries D[i-1][j-1].
func dtwOneRow(a, b []float64, o DTWOptions) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if outside(i, j, o.Window) {
				row[j] = inf
			} else {
				cost := math.Abs(a[i-1] - b[j-1])
				row[j] = cost + min3(up+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n, m) to (1, 1) along the cheapest predecessor,
// preferring the diagonal on ties, and returns the 0-based path in forward order.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	i, j := n, m
	path := make([]Coord, 0, n+m)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		i, j = cheapest(dp, i, j, penalty)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func cheapest(dp [][]float64, i, j int, penalty float64) (int, int) {
	diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
	switch {
	case diag <= up && diag <= left:
		return i - 1, j - 1
	case up <= left:
		return i - 1, j
	default:
		return i, j - 1
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
