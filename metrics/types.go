// SPDX-License-Identifier: MIT

package metrics

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)×(m+1) matrix. Supports path recovery.
//     Memory O(n·m).
//   - TwoRows: keep the previous and current rows. Distance only. Memory O(m).
//   - NoMemory: a single row plus one carried diagonal cell. Distance only.
//     Memory O(m).
type MemoryMode int

const (
	// FullMatrix stores all rows and supports ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps two rolling rows.
	TwoRows
	// NoMemory keeps one row updated in place.
	NoMemory
)

// DTWOptions configures Dynamic Time Warping.
//
// Fields:
//   - Window: Sakoe–Chiba band, |i−j| ≤ Window. -1 disables the band; values
//     below -1 are rejected with ErrBadInput.
//   - SlopePenalty: cost added to every non-diagonal step (≥ 0).
//   - ReturnPath: backtrack and return the optimal warping path
//     (requires FullMatrix).
//   - MemoryMode: DP storage strategy.
type DTWOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultDTWOptions returns an unconstrained, penalty-free, full-matrix
// configuration without path recovery.
func DefaultDTWOptions() DTWOptions {
	return DTWOptions{
		Window:     -1,
		MemoryMode: FullMatrix,
	}
}

// Coord is one cell of a warping path: a[I] aligned with b[J] (0-based).
type Coord struct {
	I, J int
}
