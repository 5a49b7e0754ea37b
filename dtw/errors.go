package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both trajectories are empty.
	ErrEmptyInput = errors.New("dtw: input trajectories must be non-empty")

	// ErrBadInput indicates invalid option values (e.g. unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that backpointer tracking requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires MemoryMode=FullMatrix")

	// ErrInvalidPoint indicates a trajectory point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("dtw: point coordinates must be finite")

	// ErrInvalidDistance indicates the point-distance collaborator returned
	// NaN, a negative value or +Inf.
	ErrInvalidDistance = errors.New("dtw: point distance must be finite and non-negative")

	// ErrBadShape indicates a backpointer matrix with non-positive dimensions.
	ErrBadShape = errors.New("dtw: backpointer matrix dimensions must be > 0")

	// ErrOutOfRange indicates a backpointer index outside the matrix.
	ErrOutOfRange = errors.New("dtw: backpointer index out of range")

	// ErrEmptyBackpointers indicates path reconstruction on a nil or empty matrix.
	ErrEmptyBackpointers = errors.New("dtw: backpointer matrix is empty")

	// ErrMalformedBackpointers indicates a backpointer chain that does not
	// reach (0,0) through valid warping steps.
	ErrMalformedBackpointers = errors.New("dtw: malformed backpointer matrix")
)
