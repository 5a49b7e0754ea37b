// Package dtw computes exact Dynamic Time Warping (DTW) distances between
// two ordered trajectories of 2-D points, with alignment path recovery.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the index
//	axis to minimize cumulative point distance. For trajectories it answers
//	"how far apart are these two routes" even when they were sampled at
//	different rates or speeds:
//	  • GPS trace comparison & clustering
//	  • route deviation detection
//	  • map-matching quality checks
//
// ✨ Key features:
//   - planar engine (EuclideanDTW): distance + interior cost matrix + backpointers
//   - spherical engine (SphericalDTW): great-circle distance, scalar only,
//     full-matrix or rolling two-row memory
//   - SphericalAlignment: spherical recurrence with backpointer tracking
//   - WarpingPath: path reconstruction from a backpointer matrix
//   - deterministic tie-break among equal predecessors: left, then diag, then up
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trajdist/dtw"
//
//	a := []orb.Point{{0, 0}, {1, 0}, {2, 0}}
//	b := []orb.Point{{0, 0}, {0, 1}, {0, 2}}
//
//	al, err := dtw.EuclideanDTW(a, b, nil) // nil → DefaultOptions()
//	path, err := al.Path()
//
//	meters, err := dtw.SphericalDTW(traceA, traceB, nil) // points are (lon, lat)
//
// Point-distance collaborators are injected through Options: Planar
// defaults to orb/planar.Distance, GreatCircle to Haversine (orb/geo).
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, SphericalDTW only)
//
// Every call is a pure function of its inputs: no shared state, safe for
// concurrent use on independent data.
package dtw
