// Package trajdist measures how far apart two trajectories are with exact
// Dynamic Time Warping, in the plane or on the sphere.
//
// 🚀 What is trajdist?
//
//	A small, dependency-light library built around one dynamic-programming
//	recurrence:
//		• Planar DTW with full cost matrix and backpointers
//		• Spherical (great-circle) DTW, scalar or with alignment
//		• Warping path reconstruction with malformed-input guards
//
// ✨ Why choose trajdist?
//
//   - Deterministic – fixed tie-break among equal predecessors
//   - Safe – sentinel errors, no panics on user input
//   - Cache-friendly – flat row-major arenas for every table
//   - Interoperable – points are github.com/paulmach/orb values
//
// Layout:
//
//	dtw/      — engines, backpointer matrix, path reconstructor
//	matrix/   — dense row-major float64 matrix used for cost tables
//	examples/ — runnable GPS-trace ranking demo
//
//	go get github.com/katalvlaran/trajdist
package trajdist
