package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/trajdist/dtw"
	"github.com/paulmach/orb"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEuclideanDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two planar rays leaving the origin at a right angle.
//	  t0 = (0,0) (1,0) (2,0)
//	  t1 = (0,0) (0,1) (0,2)
//
// The optimal warping pairs the points index by index: 0 + √2 + 2√2 = 3√2.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleEuclideanDTW() {
	t0 := []orb.Point{{0, 0}, {1, 0}, {2, 0}}
	t1 := []orb.Point{{0, 0}, {0, 1}, {0, 2}}

	al, err := dtw.EuclideanDTW(t0, t1, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	path, _ := al.Path()
	fmt.Printf("distance=%.4f\npath=%v\n", al.Distance, path)
	// Output:
	// distance=4.2426
	// path=[{0 0} {1 1} {2 2}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSphericalDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two GPS traces along the equator, (lon, lat) in degrees; the second one
//	has an extra fix halfway. Rolling memory is enough for the scalar.
//
// Complexity: O(N·M) time, O(M) memory
func ExampleSphericalDTW() {
	a := []orb.Point{{0, 0}, {1, 0}}
	b := []orb.Point{{0, 0}, {0.5, 0}, {1, 0}}

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows

	meters, err := dtw.SphericalDTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f km\n", meters/1000)
	// Output:
	// distance=55.7 km
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWarpingPath
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A densely sampled segment against its two endpoints: the inner points
//	collapse onto whichever endpoint is closer.
func ExampleWarpingPath() {
	dense := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	sparse := []orb.Point{{0, 0}, {3, 0}}

	al, err := dtw.EuclideanDTW(dense, sparse, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	path, err := dtw.WarpingPath(al.Backpointers)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", al.Distance, path)
	// Output:
	// distance=2
	// path=[{0 0} {1 0} {2 1} {3 1}]
}
