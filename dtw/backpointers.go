package dtw

import "fmt"

// Backpointers is an n0×n1 matrix of Backpointer cells stored as a flat
// row-major arena (offset = i*cols + j). Indices are 0-based trajectory
// indices, not the padded cost-table indices.
type Backpointers struct {
	rows, cols int
	cells      []Backpointer
}

// NewBackpointers allocates a rows×cols matrix with every cell set to MoveNone.
// Returns ErrBadShape for non-positive dimensions.
func NewBackpointers(rows, cols int) (*Backpointers, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewBackpointers(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Backpointers{rows: rows, cols: cols, cells: make([]Backpointer, rows*cols)}, nil
}

// Rows returns n0.
func (w *Backpointers) Rows() int { return w.rows }

// Cols returns n1.
func (w *Backpointers) Cols() int { return w.cols }

// Shape returns (n0, n1).
func (w *Backpointers) Shape() (rows, cols int) { return w.rows, w.cols }

// At returns the cell at (i, j) or ErrOutOfRange.
func (w *Backpointers) At(i, j int) (Backpointer, error) {
	if !w.inBounds(Coord{I: i, J: j}) {
		return Backpointer{}, fmt.Errorf("Backpointers.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return w.cells[i*w.cols+j], nil
}

// Set stores bp at (i, j) or returns ErrOutOfRange.
// The content of bp is not validated here; WarpingPath checks the chain.
func (w *Backpointers) Set(i, j int, bp Backpointer) error {
	if !w.inBounds(Coord{I: i, J: j}) {
		return fmt.Errorf("Backpointers.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	w.cells[i*w.cols+j] = bp

	return nil
}

func (w *Backpointers) inBounds(c Coord) bool {
	return c.I >= 0 && c.I < w.rows && c.J >= 0 && c.J < w.cols
}

// record stores the predecessor chosen for cell (i, j) by the recurrence.
func (w *Backpointers) record(i, j int, mv Move) {
	prev, _ := predecessor(Coord{I: i, J: j}, mv)
	w.cells[i*w.cols+j] = Backpointer{Move: mv, Prev: prev}
}
