package dtw

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Euclidean is the default planar collaborator (orb/planar.Distance).
var Euclidean PointDistance = planar.Distance

// Haversine is the default great-circle collaborator: the haversine distance
// in meters on a sphere of radius orb.EarthRadius.
func Haversine(lonA, latA, lonB, latB float64) float64 {
	return geo.DistanceHaversine(orb.Point{lonA, latA}, orb.Point{lonB, latB})
}

// validateTrajectory rejects empty trajectories and non-finite coordinates.
// name tags the wrapped error ("t0"/"t1").
func validateTrajectory(name string, t []orb.Point) error {
	if len(t) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}
	for k, p := range t {
		if !finite(p[0]) || !finite(p[1]) {
			return fmt.Errorf("%s[%d]=%v: %w", name, k, p, ErrInvalidPoint)
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// validDistance reports whether d is an acceptable collaborator result.
func validDistance(d float64) bool {
	return finite(d) && d >= 0
}
