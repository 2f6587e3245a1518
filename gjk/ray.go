package gjk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/support"
)

// RayCastResult is the outcome of GJKCastRay.
type RayCastResult struct {
	Hit      bool
	Fraction float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
}

// GJKCastRay finds the smallest fraction along
// origin+fraction*direction (fraction in [0, maxFraction]) at which the
// moving point first touches shapeSupport, using conservative advancement
// built on top of GJKClosestPoints rather than a separate algorithm — each
// iteration re-measures the distance from the shape to the ray's current
// point and advances lambda by exactly that distance projected onto the ray
// direction, which can never overshoot the true hit fraction.
func GJKCastRay(shapeSupport support.Function, origin, direction mgl64.Vec3, maxFraction float64, treatConvexAsSolid bool) RayCastResult {
	const tau = 1e-10

	lambda := 0.0
	x := origin
	dir := direction.Mul(-1)

	for iter := 0; iter < MaxIterations; iter++ {
		point := support.Point{At: x}
		res := GJKClosestPoints(shapeSupport, point, dir, MaxValue)

		if res.Overlap() {
			if iter == 0 {
				// The ray's own origin is already inside the shape:
				// treatConvexAsSolid decides whether that counts as a hit
				// at fraction 0 or a silent miss.
				if !treatConvexAsSolid {
					return RayCastResult{}
				}
			}
			return RayCastResult{Hit: true, Fraction: lambda, Point: x}
		}

		distance := math.Sqrt(res.DistanceSq)
		v := x.Sub(res.PointA)

		if distance <= tau {
			normal := v
			if l := normal.Len(); l > 1e-12 {
				normal = normal.Mul(1 / l)
			}
			return RayCastResult{Hit: true, Fraction: lambda, Point: res.PointA, Normal: normal}
		}

		normal := v.Mul(1 / distance)
		denom := normal.Dot(direction)
		if denom >= -1e-12 {
			// The ray is moving parallel to or away from the shape: it will
			// never close the remaining distance.
			return RayCastResult{}
		}

		delta := distance / -denom
		lambda += delta
		if lambda > maxFraction {
			return RayCastResult{}
		}

		x = origin.Add(direction.Mul(lambda))
		dir = v.Mul(-1)
	}

	return RayCastResult{}
}

