// Package narrowphase implements convex-vs-convex narrowphase collision
// queries — ray casts, shape casts, shape-vs-shape overlap with penetration
// depth, and point containment — built on GJK and EPA.
package narrowphase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/collector"
	"github.com/rivenphys/narrowphase/gjk"
	"github.com/rivenphys/narrowphase/penetration"
	"github.com/rivenphys/narrowphase/support"
)

// CastRayVsShape finds where the ray (origin, direction) first enters shape
// s placed at pose.
func CastRayVsShape(origin, direction mgl64.Vec3, s Shape, pose Pose, settings CastRaySettings) (CastRayHit, bool) {
	sf := SupportFunction(s, pose)
	res := gjk.GJKCastRay(sf, origin, direction, settings.MaxFraction, settings.TreatConvexAsSolid)
	if !res.Hit {
		return CastRayHit{}, false
	}
	return CastRayHit{Fraction: res.Fraction, Point: res.Point, Normal: res.Normal}, true
}

// CastRayVsShapes runs CastRayVsShape against every shape in shapes/poses
// (which must be the same length) and reports the hit collector selects —
// pass &collector.All[CastRayHit]{} for every hit, &collector.Any[CastRayHit]{}
// to stop at the first, or &collector.Closest[CastRayHit]{} for the nearest.
func CastRayVsShapes(origin, direction mgl64.Vec3, shapes []Shape, poses []Pose, settings CastRaySettings, c collector.Collector[CastRayHit]) error {
	if len(shapes) != len(poses) {
		return &InvalidArgumentError{Argument: "poses", Reason: "must have the same length as shapes"}
	}
	for i, s := range shapes {
		if hit, ok := CastRayVsShape(origin, direction, s, poses[i], settings); ok {
			if !c.AddHit(hit) {
				return nil
			}
		}
	}
	return nil
}

// CastShapeVsShape sweeps shape b (placed at poseB) along direction against
// stationary shape a (placed at poseA).
func CastShapeVsShape(a Shape, poseA Pose, b Shape, poseB Pose, direction mgl64.Vec3, settings CastShapeSettings) (CastShapeHit, bool, error) {
	supportA := SupportFunction(a, poseA)
	supportB := SupportFunction(b, poseB)

	res, err := penetration.CastShape(supportA, supportB, direction, settings.MaxFraction)
	if err != nil {
		return CastShapeHit{}, false, err
	}
	if !res.Hit {
		return CastShapeHit{}, false, nil
	}
	return CastShapeHit{Fraction: res.Fraction, PointA: res.PointA, PointB: res.PointB, Normal: res.Normal}, true, nil
}

// CollideShapeVsShape tests shape a (at poseA) against shape b (at poseB),
// reporting either their separating distance or, when they overlap, the
// penetration depth, contact normal, and witness points.
//
// The contact normal, when present, points from a toward b.
func CollideShapeVsShape(a Shape, poseA Pose, b Shape, poseB Pose, settings CollideShapeSettings) (CollideShapeHit, error) {
	initialDir := settings.InitialDirection
	if !settings.HasInitialDirection {
		initialDir = poseB.Position.Sub(poseA.Position)
	}

	if handler, swapped, found := lookupOverride(a.Kind(), b.Kind()); found {
		var hit CollideShapeHit
		var err error
		if swapped {
			hit, err = handler(b, a, poseB, poseA, initialDir.Mul(-1))
			hit = invertHit(hit)
		} else {
			hit, err = handler(a, b, poseA, poseB, initialDir)
		}
		return hit, err
	}

	boundsA := WorldBounds(a, poseA).Expand(settings.MaxSeparationDistance)
	boundsB := WorldBounds(b, poseB)
	if !boundsA.Overlaps(boundsB) {
		return CollideShapeHit{SeparationSq: math.MaxFloat64}, nil
	}

	supportA := SupportFunctionMode(a, poseA, support.ExcludeConvexRadius)
	supportB := SupportFunctionMode(b, poseB, support.ExcludeConvexRadius)
	rA := a.ConvexRadius() + settings.MaxSeparationDistance
	rB := b.ConvexRadius()

	res, err := penetration.Depth(supportA, supportB, rA, rB, initialDir)
	if err != nil {
		return CollideShapeHit{}, err
	}
	if !res.Overlapping {
		return CollideShapeHit{
			SeparationSq: res.SeparationSq,
			PointA:       res.ClosestA,
			PointB:       res.ClosestB,
		}, nil
	}

	// res.PointA was advanced by the inflated rA (shape A's own radius plus
	// MaxSeparationDistance); undo the MaxSeparationDistance portion so the
	// reported point lands back on A's true (non-separated) surface.
	hit := CollideShapeHit{
		Overlapping: true,
		Depth:       res.Depth - settings.MaxSeparationDistance,
		Normal:      res.Normal,
		PointA:      res.PointA.Sub(res.Normal.Mul(settings.MaxSeparationDistance)),
		PointB:      res.PointB,
	}
	if settings.CollectFaces {
		hit.FaceA = SupportingFace(a, poseA, hit.Normal)
		hit.FaceB = SupportingFace(b, poseB, hit.Normal.Mul(-1))
	}
	return hit, nil
}

// CollidePointVsShape reports whether point lies inside shape s (at pose),
// and if so, how deep it is below the nearest surface (shape A vs. a
// degenerate zero-radius point shape B).
func CollidePointVsShape(point mgl64.Vec3, s Shape, pose Pose, settings CollidePointSettings) (CollidePointHit, error) {
	supportA := SupportFunctionMode(s, pose, support.ExcludeConvexRadius)
	supportB := support.Point{At: point}

	res, err := penetration.Depth(supportA, supportB, s.ConvexRadius(), 0, mgl64.Vec3{1, 0, 0})
	if err != nil {
		return CollidePointHit{}, err
	}
	if !res.Overlapping {
		return CollidePointHit{Inside: false}, nil
	}
	return CollidePointHit{Inside: true, Depth: res.Depth}, nil
}
