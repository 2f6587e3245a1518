// Package gjk implements the Gilbert-Johnson-Keerthi closest-points,
// ray-cast, and shape-cast queries.
//
// All three variants share the same simplex-reduction machinery from
// package simplex; they differ in how the Minkowski-difference point y is
// derived each iteration (plain support difference, or recomputed against a
// moving virtual origin for the ray/shape-cast forms).
package gjk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/simplex"
)

const (
	// MaxIterations bounds GJK's simplex-refinement loop.
	MaxIterations = 100
	// Tolerance is the relative convergence threshold used once absolute
	// tests (|v|^2 <= tau^2) aren't decisive.
	Tolerance = 1e-5
	// MaxValue is a sentinel "unbounded" distance for callers that don't
	// want to bound the search by a maximum squared distance.
	MaxValue = math.MaxFloat64
)

// closestOnSimplex dispatches to the simplex package's per-arity routine
// based on how many vertices s currently holds. Vertex 0 is always the
// oldest point retained and the last index is always the most recently
// pushed one, matching the "mustIncludeC"/"mustIncludeD" convention that the
// most recent vertex is never silently dropped by a degenerate fallback.
func closestOnSimplex(s *simplex.Simplex, tau float64) simplex.ClosestPointResult {
	switch s.Size {
	case 1:
		return simplex.ClosestPointResult{Point: s.Points[0].Y, Set: 0b1, Weights: [simplex.MaxSize]float64{0: 1}}
	case 2:
		return simplex.ClosestOnLine(s.Points[0].Y, s.Points[1].Y, tau*tau)
	case 3:
		return simplex.ClosestOnTriangle(s.Points[0].Y, s.Points[1].Y, s.Points[2].Y, true, tau*tau)
	case 4:
		return simplex.ClosestOnTetrahedron(s.Points[0].Y, s.Points[1].Y, s.Points[2].Y, s.Points[3].Y, true, tau)
	}
	return simplex.ClosestPointResult{}
}

// maxAbsComponentSq returns the largest squared component magnitude across
// the simplex's Y points, used by the Tolerance * max|y_i|^2 numerical
// convergence test.
func maxAbsComponentSq(s *simplex.Simplex) float64 {
	max := 0.0
	for i := 0; i < s.Size; i++ {
		y := s.Points[i].Y
		for _, c := range [3]float64{y.X(), y.Y(), y.Z()} {
			if c*c > max {
				max = c * c
			}
		}
	}
	return max
}

func vecLenSq(v mgl64.Vec3) float64 { return v.Dot(v) }
