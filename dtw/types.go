// Package dtw defines options, modes and result types for Dynamic Time Warping.
package dtw

import (
	"fmt"

	"github.com/katalvlaran/trajdist/matrix"
	"github.com/paulmach/orb"
)

// PointDistance is the planar point-distance collaborator.
// It must be deterministic, total and non-negative, returning 0 for identical points.
type PointDistance func(a, b orb.Point) float64

// GreatCircleDistance is the spherical point-distance collaborator.
// The engine calls it as gc(a[0], a[1], b[0], b[1]), i.e. with orb's
// (lon, lat) order; a collaborator expecting (lat, lon) must be fed
// trajectories stored in that order.
type GreatCircleDistance func(lonA, latA, lonB, latB float64) float64

// MemoryMode controls how the recurrence stores its DP table.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) table in memory.
//     Allows distance + backpointers for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
//     Only SphericalDTW honors it.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// Options configures the DTW engines.
//
// Fields:
//   - Planar      — planar collaborator used by EuclideanDTW (nil → planar.Distance).
//   - GreatCircle — spherical collaborator used by SphericalDTW and
//     SphericalAlignment (nil → Haversine).
//   - MemoryMode  — FullMatrix or TwoRows. EuclideanDTW and SphericalAlignment
//     require FullMatrix.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.MemoryMode = dtw.TwoRows
//	meters, err := dtw.SphericalDTW(traceA, traceB, &opts)
type Options struct {
	Planar      PointDistance
	GreatCircle GreatCircleDistance
	MemoryMode  MemoryMode
}

// DefaultOptions returns Options wired to the orb collaborators and FullMatrix storage.
func DefaultOptions() Options {
	return Options{
		Planar:      Euclidean,
		GreatCircle: Haversine,
		MemoryMode:  FullMatrix,
	}
}

// resolveOptions fills nil fields with defaults and validates the memory mode.
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts == nil {
		return o, nil
	}
	if opts.Planar != nil {
		o.Planar = opts.Planar
	}
	if opts.GreatCircle != nil {
		o.GreatCircle = opts.GreatCircle
	}
	switch opts.MemoryMode {
	case FullMatrix, TwoRows:
		o.MemoryMode = opts.MemoryMode
	default:
		return o, fmt.Errorf("memory mode %d: %w", opts.MemoryMode, ErrBadInput)
	}

	return o, nil
}

// Coord is a 0-based index pair (I into t0, J into t1).
type Coord struct {
	I, J int
}

// Move tags which predecessor a cell was reached from.
type Move uint8

const (
	// MoveNone marks the path origin (0,0): no predecessor.
	MoveNone Move = iota
	// MoveLeft comes from (i, j-1).
	MoveLeft
	// MoveDiag comes from (i-1, j-1).
	MoveDiag
	// MoveUp comes from (i-1, j).
	MoveUp
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveLeft:
		return "left"
	case MoveDiag:
		return "diag"
	case MoveUp:
		return "up"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Backpointer is one cell of the backpointer matrix.
// Prev is meaningful only when Move != MoveNone.
type Backpointer struct {
	Move Move
	Prev Coord
}

// HasPrev reports whether the cell records a predecessor.
func (b Backpointer) HasPrev() bool { return b.Move != MoveNone }

// Alignment is the full output of a path-tracking DTW run.
//   - Distance     — C[n0][n1].
//   - Cost         — interior n0×n1 cost matrix; Cost(i,j) is the DTW
//     distance of the best warping that ends pairing t0[i] with t1[j].
//   - Backpointers — n0×n1 predecessor matrix for WarpingPath.
type Alignment struct {
	Distance     float64
	Cost         *matrix.Dense
	Backpointers *Backpointers
}

// Path reconstructs the optimal warping path of the alignment.
func (a *Alignment) Path() ([]Coord, error) {
	if a == nil {
		return nil, ErrEmptyBackpointers
	}

	return WarpingPath(a.Backpointers)
}
