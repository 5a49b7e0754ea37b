package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trajdist/matrix"
	"github.com/paulmach/orb"
	"github.com/samber/lo"
)

// DTW — Dynamic Time Warping over trajectories
//
// Algorithm Outline (Full-Matrix):
//  1. Let n0 = len(t0), n1 = len(t1). Allocate the (n0+1)x(n1+1) table C
//     as one flat row-major arena (offset = i*(n1+1) + j).
//  2. Initialize:
//     C[0][0] = 0
//     C[i][0] = +∞ for i=1..n0
//     C[0][j] = +∞ for j=1..n1
//  3. For i = 1..n0, j = 1..n1:
//     left = C[i][j-1], diag = C[i-1][j-1], up = C[i-1][j]
//     pick the first strict minimum in the order left, diag, up
//     C[i][j] = dist(t0[i-1], t1[j-1]) + min
//     W[i-1][j-1] = chosen predecessor (MoveNone at the origin)
//  4. distance = C[n0][n1].
//
// Both engines run the same accumulate loop; they differ only in the
// per-cell cost closure, whether backpointers are kept and the memory mode.
//
// Complexity:
//
//	Time   = O(n0·n1)
//	Memory = O(n0·n1) (FullMatrix) or O(n1) (TwoRows)

// cellCost returns the point distance for 0-based trajectory indices (i, j).
type cellCost func(i, j int) float64

// table is the raw outcome of one accumulate run.
type table struct {
	n0, n1   int
	distance float64
	cost     []float64     // padded (n0+1)*(n1+1) arena; nil in TwoRows mode
	bp       *Backpointers // nil unless tracking was requested
}

// initCost allocates the padded arena with the +∞ boundary and C[0][0] = 0.
func initCost(n0, n1 int) []float64 {
	w := n1 + 1
	c := make([]float64, (n0+1)*w)
	inf := math.Inf(1)
	for j := 1; j <= n1; j++ {
		c[j] = inf
	}
	for i := 1; i <= n0; i++ {
		c[i*w] = inf
	}

	return c
}

// pick selects the minimum predecessor cost. Ties resolve to the earliest
// candidate in the order left, diag, up.
func pick(left, diag, up float64) (Move, float64) {
	mv, best := MoveLeft, left
	if diag < best {
		mv, best = MoveDiag, diag
	}
	if up < best {
		mv, best = MoveUp, up
	}

	return mv, best
}

// accumulate fills the DTW recurrence for an n0×n1 problem.
// track keeps backpointers and requires mode == FullMatrix.
func accumulate(n0, n1 int, cost cellCost, track bool, mode MemoryMode) (*table, error) {
	if track && mode != FullMatrix {
		return nil, ErrPathNeedsMatrix
	}
	if mode == TwoRows {
		return accumulateRolling(n0, n1, cost)
	}

	var (
		bp  *Backpointers
		err error
	)
	if track {
		if bp, err = NewBackpointers(n0, n1); err != nil {
			return nil, err
		}
	}

	c := initCost(n0, n1)
	w := n1 + 1
	var (
		i, j, row, prev int
		d, best         float64
		mv              Move
	)
	for i = 1; i <= n0; i++ {
		row, prev = i*w, (i-1)*w
		for j = 1; j <= n1; j++ {
			d = cost(i-1, j-1)
			if !validDistance(d) {
				return nil, fmt.Errorf("cell (%d,%d): distance %v: %w", i-1, j-1, d, ErrInvalidDistance)
			}
			mv, best = pick(c[row+j-1], c[prev+j-1], c[prev+j])
			c[row+j] = d + best
			if bp != nil {
				if i == 1 && j == 1 {
					mv = MoveNone
				}
				bp.record(i-1, j-1, mv)
			}
		}
	}

	return &table{n0: n0, n1: n1, distance: c[n0*w+n1], cost: c, bp: bp}, nil
}

// accumulateRolling runs the recurrence keeping only two rows of the table.
func accumulateRolling(n0, n1 int, cost cellCost) (*table, error) {
	inf := math.Inf(1)
	prev := make([]float64, n1+1)
	curr := make([]float64, n1+1)
	for j := 1; j <= n1; j++ {
		prev[j] = inf
	}

	var d, best float64
	for i := 1; i <= n0; i++ {
		curr[0] = inf
		for j := 1; j <= n1; j++ {
			d = cost(i-1, j-1)
			if !validDistance(d) {
				return nil, fmt.Errorf("cell (%d,%d): distance %v: %w", i-1, j-1, d, ErrInvalidDistance)
			}
			_, best = pick(curr[j-1], prev[j-1], prev[j])
			curr[j] = d + best
		}
		prev, curr = curr, prev
	}

	return &table{n0: n0, n1: n1, distance: prev[n1]}, nil
}

// alignment turns a tracked table into the public Alignment, stripping the
// infinity boundary from the cost table.
func (t *table) alignment() (*Alignment, error) {
	padded, err := matrix.NewDenseFromRowMajor(t.n0+1, t.n1+1, t.cost)
	if err != nil {
		return nil, err
	}
	interior, err := padded.Induced(lo.RangeFrom(1, t.n0), lo.RangeFrom(1, t.n1))
	if err != nil {
		return nil, err
	}

	return &Alignment{Distance: t.distance, Cost: interior, Backpointers: t.bp}, nil
}

// validatePair checks both trajectories before any allocation.
func validatePair(t0, t1 []orb.Point) error {
	if err := validateTrajectory("t0", t0); err != nil {
		return err
	}

	return validateTrajectory("t1", t1)
}

// EuclideanDTW computes the DTW distance between t0 and t1 under planar
// point distance and returns the interior cost matrix and backpointers.
//
// opts may be nil (DefaultOptions). opts.MemoryMode must be FullMatrix.
//
// Errors: ErrEmptyInput, ErrInvalidPoint, ErrInvalidDistance, ErrBadInput,
// ErrPathNeedsMatrix.
//
// Example:
//
//	al, err := EuclideanDTW(t0, t1, nil)
//	path, err := al.Path()
func EuclideanDTW(t0, t1 []orb.Point, opts *Options) (*Alignment, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validatePair(t0, t1); err != nil {
		return nil, err
	}

	dist := o.Planar
	tab, err := accumulate(len(t0), len(t1), func(i, j int) float64 {
		return dist(t0[i], t1[j])
	}, true, o.MemoryMode)
	if err != nil {
		return nil, err
	}

	return tab.alignment()
}

// SphericalDTW computes the DTW distance between t0 and t1 under great-circle
// point distance. Points are (lon, lat) as in orb. Only the scalar is
// returned; opts.MemoryMode selects FullMatrix or TwoRows storage and never
// changes the result.
//
// Errors: ErrEmptyInput, ErrInvalidPoint, ErrInvalidDistance, ErrBadInput.
func SphericalDTW(t0, t1 []orb.Point, opts *Options) (float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validatePair(t0, t1); err != nil {
		return 0, err
	}

	tab, err := accumulate(len(t0), len(t1), sphericalCost(o.GreatCircle, t0, t1), false, o.MemoryMode)
	if err != nil {
		return 0, err
	}

	return tab.distance, nil
}

// SphericalAlignment is SphericalDTW with backpointer tracking: it returns
// the same distance plus the cost and backpointer matrices, so the
// spherical warping path can be reconstructed with WarpingPath.
// opts.MemoryMode must be FullMatrix.
func SphericalAlignment(t0, t1 []orb.Point, opts *Options) (*Alignment, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validatePair(t0, t1); err != nil {
		return nil, err
	}

	tab, err := accumulate(len(t0), len(t1), sphericalCost(o.GreatCircle, t0, t1), true, o.MemoryMode)
	if err != nil {
		return nil, err
	}

	return tab.alignment()
}

// sphericalCost forwards coordinates to gc in (p[0], p[1]) order.
func sphericalCost(gc GreatCircleDistance, t0, t1 []orb.Point) cellCost {
	return func(i, j int) float64 {
		return gc(t0[i][0], t0[i][1], t1[j][0], t1[j][1])
	}
}
