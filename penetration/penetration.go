// Package penetration orchestrates the GJK-then-EPA handoff: run GJK on the
// convex radius-excluded core shapes, resolve the common "already within
// combined radius" case from GJK alone, and only pay for polytope expansion
// when GJK can't rule out genuine core overlap.
package penetration

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/epa"
	"github.com/rivenphys/narrowphase/gjk"
	"github.com/rivenphys/narrowphase/simplex"
	"github.com/rivenphys/narrowphase/support"
)

// DepthResult is the outcome of Depth: either a separating distance (shapes
// don't touch, even once inflated by their convex radii) or a penetration
// depth with contact normal and witness points (shapes overlap).
type DepthResult struct {
	Overlapping bool

	// Set when Overlapping is false. When GJK stops early because the cores
	// are proven farther apart than rA+rB, SeparationSq is math.MaxFloat64
	// and ClosestA/ClosestB are left zero.
	SeparationSq float64
	ClosestA     mgl64.Vec3
	ClosestB     mgl64.Vec3

	// Set when Overlapping is true. Normal points from A toward B.
	Normal mgl64.Vec3
	Depth  float64
	PointA mgl64.Vec3
	PointB mgl64.Vec3
}

// Depth computes the relationship between supportA and supportB — support
// functions for each shape's bare core geometry, convex radius excluded —
// given their respective convex radii rA, rB. initialDir seeds GJK's first
// support direction (the previous frame's contact normal, or the vector
// between shape centers, are both reasonable choices; Depth falls back to
// +X when it is degenerate).
//
// GJK runs against the combined radius as an early-out bound: when the
// cores are farther apart than rA+rB, the shapes can't possibly touch once
// inflated and Depth reports separation without ever considering EPA. When
// they're closer than that but still apart, the GJK witness points are
// pushed out by each shape's own radius to land on the true (inflated)
// surfaces. Only when GJK can't resolve a core distance at all — the
// overlapping-tetrahedron or indeterminate-near-zero cases — does Depth
// re-run GJK with the radii folded into the supports and fall back to EPA
// on the result.
func Depth(supportA, supportB support.Function, rA, rB float64, initialDir mgl64.Vec3) (DepthResult, error) {
	combined := rA + rB
	maxDistSq := combined * combined

	gjkRes := gjk.GJKClosestPoints(supportA, supportB, initialDir, maxDistSq)

	switch gjkRes.Status {
	case gjk.StatusTooFar:
		return DepthResult{Overlapping: false, SeparationSq: math.MaxFloat64}, nil

	case gjk.StatusSeparated:
		if gjkRes.DistanceSq > maxDistSq {
			return DepthResult{Overlapping: false, SeparationSq: gjkRes.DistanceSq, ClosestA: gjkRes.PointA, ClosestB: gjkRes.PointB}, nil
		}
		dist := math.Sqrt(gjkRes.DistanceSq)
		axis := gjkRes.PointB.Sub(gjkRes.PointA)
		if dist > 1e-12 {
			axis = axis.Mul(1 / dist)
		}
		return DepthResult{
			Overlapping: true,
			Normal:      axis,
			Depth:       combined - dist,
			PointA:      gjkRes.PointA.Add(axis.Mul(rA)),
			PointB:      gjkRes.PointB.Sub(axis.Mul(rB)),
		}, nil

	default: // StatusOverlap, StatusIndeterminate: GJK alone can't resolve it.
		includedA := support.AddConvexRadius{Inner: supportA, Radius: rA}
		includedB := support.AddConvexRadius{Inner: supportB, Radius: rB}
		inflated := gjk.GJKClosestPoints(includedA, includedB, initialDir, gjk.MaxValue)
		if !inflated.Overlap() {
			return DepthResult{Overlapping: false, SeparationSq: inflated.DistanceSq, ClosestA: inflated.PointA, ClosestB: inflated.PointB}, nil
		}

		tetra := inflated.Simplex
		if tetra.Size < 4 {
			// StatusIndeterminate can strand GJK at any simplex size: the
			// shapes are touching so closely that the origin collapsed onto a
			// lower-dimension feature before a fourth support point was ever
			// needed. EPA still requires a seed tetrahedron, so pad the
			// simplex with support points along directions it hasn't explored
			// yet — the contact is already known to be within tolerance of
			// zero depth, so the padded tetrahedron only has to be good
			// enough for EPA to converge near that same answer.
			padToTetrahedron(includedA, includedB, &tetra)
		}

		epaRes, err := epa.Run(includedA, includedB, &tetra)
		if err != nil {
			return DepthResult{}, err
		}
		return DepthResult{
			Overlapping: true,
			Normal:      epaRes.Normal,
			Depth:       epaRes.Depth,
			PointA:      epaRes.PointA,
			PointB:      epaRes.PointB,
		}, nil
	}
}

// padToTetrahedron grows s to a full four-point simplex by pushing support
// points along each axis until no more new (non-duplicate) vertices remain
// to add or s is full, so a near-degenerate GJK result can still seed EPA.
func padToTetrahedron(supportA, supportB support.Function, s *simplex.Simplex) {
	candidates := [6]mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, dir := range candidates {
		if s.Size >= simplex.MaxSize {
			return
		}
		p := supportA.GetSupport(dir)
		q := supportB.GetSupport(dir.Mul(-1))
		y := p.Sub(q)
		if !duplicatesExisting(s, y) {
			s.Push(simplex.SimplexPoint{Y: y, P: p, Q: q})
		}
	}
}

func duplicatesExisting(s *simplex.Simplex, y mgl64.Vec3) bool {
	const eps = 1e-9
	for i := 0; i < s.Size; i++ {
		if y.Sub(s.Points[i].Y).Len() < eps {
			return true
		}
	}
	return false
}

// CastShape sweeps supportB from the origin along direction against
// stationary supportA, combining GJK's conservative-advancement cast with a
// Depth refinement for the case where the shapes already overlap at
// fraction zero (a cast that starts inside its target has no meaningful
// "time of impact" from GJK alone, so EPA supplies the contact
// normal/depth instead). supportA and supportB are expected to already
// include any convex radius the caller wants honoured by the cast itself.
func CastShape(supportA, supportB support.Function, direction mgl64.Vec3, maxFraction float64) (gjk.ShapeCastResult, error) {
	res := gjk.GJKCastShape(supportA, supportB, direction, maxFraction)
	if !res.Hit || res.Fraction > 0 {
		return res, nil
	}

	depth, err := Depth(supportA, supportB, 0, 0, direction)
	if err != nil {
		return gjk.ShapeCastResult{}, err
	}
	if !depth.Overlapping {
		return res, nil
	}
	return gjk.ShapeCastResult{
		Hit:      true,
		Fraction: 0,
		PointA:   depth.PointA,
		PointB:   depth.PointB,
		Normal:   depth.Normal,
	}, nil
}
