package dtw

import (
	"fmt"

	"github.com/samber/lo"
)

// WarpingPath reconstructs the optimal alignment path from a backpointer
// matrix produced by EuclideanDTW or SphericalAlignment.
//
// The walk starts at (n0-1, n1-1) and follows Prev until (0,0), then the
// collected sequence is reversed so it runs from (0,0) to (n0-1, n1-1).
//
// Every followed cell must carry a Move tag whose implied predecessor equals
// Prev and lies inside the matrix, so each step goes back by one index in
// at least one coordinate and a well-formed chain has at most n0+n1-1 cells.
// Anything else is ErrMalformedBackpointers.
//
// Errors: ErrEmptyBackpointers, ErrMalformedBackpointers.
//
// Complexity: O(n0+n1) time and space.
func WarpingPath(w *Backpointers) ([]Coord, error) {
	if w == nil || len(w.cells) == 0 || w.rows <= 0 || w.cols <= 0 {
		return nil, ErrEmptyBackpointers
	}

	limit := w.rows + w.cols - 1
	path := make([]Coord, 0, limit)
	origin := Coord{}
	cur := Coord{I: w.rows - 1, J: w.cols - 1}
	for cur != origin {
		if len(path) >= limit-1 {
			return nil, fmt.Errorf("no origin within %d steps: %w", limit, ErrMalformedBackpointers)
		}
		path = append(path, cur)

		bp := w.cells[cur.I*w.cols+cur.J]
		if !bp.HasPrev() {
			return nil, fmt.Errorf("cell %v has no predecessor: %w", cur, ErrMalformedBackpointers)
		}
		want, ok := predecessor(cur, bp.Move)
		if !ok || bp.Prev != want || !w.inBounds(bp.Prev) {
			return nil, fmt.Errorf("cell %v: %v move to %v: %w", cur, bp.Move, bp.Prev, ErrMalformedBackpointers)
		}
		cur = bp.Prev
	}
	path = append(path, origin)

	return lo.Reverse(path), nil
}

// predecessor returns the cell a move comes from; ok is false for MoveNone
// and unknown tags.
func predecessor(c Coord, mv Move) (Coord, bool) {
	switch mv {
	case MoveLeft:
		return Coord{I: c.I, J: c.J - 1}, true
	case MoveDiag:
		return Coord{I: c.I - 1, J: c.J - 1}, true
	case MoveUp:
		return Coord{I: c.I - 1, J: c.J}, true
	default:
		return Coord{}, false
	}
}
