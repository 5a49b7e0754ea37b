// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to carry
// dynamic-programming tables out of the dtw package.
//
// What & Why:
//
//	DTW fills an (n0+1)×(n1+1) cost table whose access pattern is fully
//	predictable, so the table lives in one flat buffer addressed as
//	i*cols + j. Dense wraps such a buffer behind a bounds-checked surface
//	(At/Set return errors, never panic) and offers cheap views and copying
//	sub-matrix extraction for stripping the synthetic boundary row/column.
//
// Numeric policy:
//
//	+Inf is a legal value (it marks unreachable DP states). NaN is rejected
//	by Set and by NewDenseFromRowMajor, because a NaN in a cost table breaks
//	every min() comparison downstream.
//
// Complexity:
//
//	NewDense: O(r*c); At/Set/View: O(1); Clone/Induced: O(r'*c').
package matrix
