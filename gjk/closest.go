package gjk

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/simplex"
	"github.com/rivenphys/narrowphase/support"
)

// Status classifies what GJKClosestPoints was able to determine about two
// shapes' Minkowski difference.
type Status int

const (
	// StatusSeparated means PointA, PointB, and DistanceSq hold a genuine
	// separating witness: the shapes are apart by sqrt(DistanceSq).
	StatusSeparated Status = iota
	// StatusOverlap means the simplex grew to a tetrahedron that strictly
	// contains the origin: the shapes overlap by more than GJK alone can
	// quantify. The caller must run EPA; Simplex is left at the
	// overlapping tetrahedron so EPA can seed from it directly.
	StatusOverlap
	// StatusIndeterminate means the simplex's closest distance collapsed to
	// (numerically) zero without the simplex ever growing to a full
	// tetrahedron. This is the ambiguous "touching" case: GJK cannot tell
	// whether the shapes are exactly kissing or already overlapping, so the
	// caller must also fall back to EPA.
	StatusIndeterminate
	// StatusTooFar means the search was abandoned once it became clear the
	// true distance exceeds the caller's maxDistSq bound; DistanceSq is set
	// to MaxValue and PointA/PointB are not meaningful.
	StatusTooFar
)

// ClosestPointsResult is the outcome of GJKClosestPoints.
type ClosestPointsResult struct {
	Status Status

	// Meaningful only when Status == StatusSeparated.
	PointA     mgl64.Vec3
	PointB     mgl64.Vec3
	DistanceSq float64

	// Simplex is left at its terminal state (reduced to the vertices that
	// produced the result), so a caller that needs to seed EPA from the
	// overlapping tetrahedron can reuse it directly.
	Simplex simplex.Simplex
}

// Overlap reports whether the caller must fall back to EPA: either a
// confirmed full-tetrahedron overlap, or an indeterminate near-zero
// distance that GJK alone cannot resolve.
func (r ClosestPointsResult) Overlap() bool {
	return r.Status == StatusOverlap || r.Status == StatusIndeterminate
}

// GJKClosestPoints implements the core GJK loop: it drives a simplex in
// Minkowski-difference space toward the origin, one support point at a
// time, until it converges on the closest point, grows to a tetrahedron
// enclosing the origin, or the distance is provably beyond maxDistSq.
//
// supportA and supportB are support functions for shape A and shape B
// respectively, both expressed in the same space (callers wrap per-shape
// supports with support.Transformed to bring them into a common world or
// shape-A-local frame before calling this). Pass MaxValue for maxDistSq
// when the caller has no bound to enforce.
func GJKClosestPoints(supportA, supportB support.Function, initialDir mgl64.Vec3, maxDistSq float64) ClosestPointsResult {
	tau := 1e-10
	dir := initialDir
	if vecLenSq(dir) < 1e-20 {
		dir = mgl64.Vec3{1, 0, 0}
	}

	var s simplex.Simplex
	prevDistSq := MaxValue

	pushSupport := func(d mgl64.Vec3) simplex.SimplexPoint {
		p := supportA.GetSupport(d)
		q := supportB.GetSupport(d.Mul(-1))
		return simplex.SimplexPoint{Y: p.Sub(q), P: p, Q: q}
	}

	s.Push(pushSupport(dir))

	for iter := 0; iter < MaxIterations; iter++ {
		cp := closestOnSimplex(&s, tau)
		// cp's vertex indices refer to the simplex before Reduce compacts it,
		// so the witness points are reconstructed first.
		pointA, pointB := s.WitnessPoints(cp)
		s.Reduce(cp.Set)

		if s.Size == 4 {
			// The reduced simplex is the full tetrahedron: the origin lies
			// strictly inside it (ClosestOnTetrahedron only returns
			// Set==0b1111 when no face is outside), so A and B overlap.
			return ClosestPointsResult{Status: StatusOverlap, Simplex: s}
		}

		v := cp.Point
		distSq := vecLenSq(v)

		if distSq <= tau*tau {
			// Distance collapsed to ~0 without the simplex growing to a
			// tetrahedron: ambiguous, must escalate to EPA.
			return ClosestPointsResult{Status: StatusIndeterminate, DistanceSq: distSq, Simplex: s}
		}

		maxYSq := maxAbsComponentSq(&s)
		if distSq <= Tolerance*maxYSq {
			return ClosestPointsResult{Status: StatusSeparated, PointA: pointA, PointB: pointB, DistanceSq: distSq, Simplex: s}
		}

		newDir := v.Mul(-1)
		newPoint := pushSupport(newDir)

		// Early-out: if the new support point's value along the search
		// direction already proves the true distance exceeds maxDistSq,
		// stop rather than keep refining a result the caller doesn't need.
		vw := newDir.Dot(newPoint.Y)
		if vw < 0 && vw*vw > distSq*maxDistSq {
			return ClosestPointsResult{Status: StatusTooFar, DistanceSq: MaxValue, Simplex: s}
		}

		// Convergence by progress: the new support point doesn't get any
		// closer to the origin than the current closest point already is.
		if newPoint.Y.Sub(v).Dot(newDir) <= tau*newDir.Len() {
			return ClosestPointsResult{Status: StatusSeparated, PointA: pointA, PointB: pointB, DistanceSq: distSq, Simplex: s}
		}

		if prevDistSq-distSq <= Tolerance*prevDistSq {
			return ClosestPointsResult{Status: StatusSeparated, PointA: pointA, PointB: pointB, DistanceSq: distSq, Simplex: s}
		}
		prevDistSq = distSq

		s.Push(newPoint)
	}

	cp := closestOnSimplex(&s, tau)
	pointA, pointB := s.WitnessPoints(cp)
	s.Reduce(cp.Set)
	return ClosestPointsResult{Status: StatusSeparated, PointA: pointA, PointB: pointB, DistanceSq: vecLenSq(cp.Point), Simplex: s}
}
