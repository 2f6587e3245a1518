package gjk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/support"
)

// ShapeCastResult is the outcome of GJKCastShape.
type ShapeCastResult struct {
	Hit      bool
	Fraction float64
	PointA   mgl64.Vec3
	PointB   mgl64.Vec3
	Normal   mgl64.Vec3
}

// GJKCastShape sweeps shape B from origin along
// direction against stationary shape A, reporting the smallest fraction in
// [0, maxFraction] at which the two shapes first touch.
//
// This generalizes GJKCastRay's conservative advancement from a moving point
// to a moving shape: at each iteration supportB is re-evaluated as if
// translated by the current swept offset, and the same distance-projected
// advance is applied.
func GJKCastShape(supportA, supportB support.Function, direction mgl64.Vec3, maxFraction float64) ShapeCastResult {
	const tau = 1e-10

	lambda := 0.0
	offset := mgl64.Vec3{0, 0, 0}
	dir := direction.Mul(-1)

	for iter := 0; iter < MaxIterations; iter++ {
		sweptB := support.Transformed{Inner: supportB, Translation: offset}
		res := GJKClosestPoints(supportA, sweptB, dir, MaxValue)

		if res.Overlap() {
			return ShapeCastResult{
				Hit:      true,
				Fraction: lambda,
				PointA:   res.PointA,
				PointB:   res.PointB,
			}
		}

		distance := math.Sqrt(res.DistanceSq)
		v := res.PointB.Sub(res.PointA)

		if distance <= tau {
			normal := v
			if l := normal.Len(); l > 1e-12 {
				normal = normal.Mul(1 / l)
			}
			return ShapeCastResult{
				Hit:      true,
				Fraction: lambda,
				PointA:   res.PointA,
				PointB:   res.PointB,
				Normal:   normal,
			}
		}

		normal := v.Mul(1 / distance)
		denom := normal.Dot(direction)
		if denom >= -1e-12 {
			return ShapeCastResult{}
		}

		delta := distance / -denom
		lambda += delta
		if lambda > maxFraction {
			return ShapeCastResult{}
		}

		offset = direction.Mul(lambda)
		dir = v.Mul(-1)
	}

	return ShapeCastResult{}
}
