// Package simplex implements the fixed-capacity simplex container and the
// closest-point-on-simplex routines shared by the GJK and EPA packages.
//
// A Simplex holds up to four SimplexPoints, each a pair of supports (one per
// shape) together with the Minkowski-difference point they produce. GJK
// grows and reduces a Simplex one vertex at a time; EPA seeds its initial
// polytope from the tetrahedron a Simplex reaches at convergence.
package simplex

import "github.com/go-gl/mathgl/mgl64"

// MaxSize is the largest simplex GJK ever needs: a tetrahedron in R3.
const MaxSize = 4

// SimplexPoint is the triple (Y, P, Q): P is a support on shape A in A's
// space, Q is a support on shape B in A's space, and Y is the associated
// Minkowski-difference point. For the ray-cast and shape-cast GJK
// variants Y is recomputed every iteration from the current virtual origin,
// so P and Q are retained as the raw supports and Y is not assumed equal to
// P-Q there.
type SimplexPoint struct {
	Y mgl64.Vec3
	P mgl64.Vec3
	Q mgl64.Vec3
}

// Simplex is an ordered sequence of up to MaxSize SimplexPoints.
type Simplex struct {
	Points [MaxSize]SimplexPoint
	Size   int
}

// Reset empties the simplex for reuse.
func (s *Simplex) Reset() {
	s.Size = 0
}

// Push appends a point, growing the simplex by one vertex. The caller is
// responsible for keeping Size <= MaxSize.
func (s *Simplex) Push(p SimplexPoint) {
	s.Points[s.Size] = p
	s.Size++
}

// Pop removes the most recently pushed vertex.
func (s *Simplex) Pop() {
	if s.Size > 0 {
		s.Size--
	}
}

// PointSet is the 4-bit mask identifying which input simplex vertices
// contribute to a closest-point result: bit i <-> input vertex i.
type PointSet uint8

// Bit tests whether vertex i is part of the set.
func (m PointSet) Bit(i int) bool {
	return m&(1<<uint(i)) != 0
}

// PopCount returns the number of set bits.
func (m PointSet) PopCount() int {
	n := 0
	for i := 0; i < MaxSize; i++ {
		if m.Bit(i) {
			n++
		}
	}
	return n
}

// ClosestPointResult is the (point, pointSet) pair, extended with the
// barycentric weight of each contributing vertex (Weights[i] is
// only meaningful when Set.Bit(i) is true) so callers can reconstruct
// witness points without recomputing the barycentric solve.
type ClosestPointResult struct {
	Point   mgl64.Vec3
	Set     PointSet
	Weights [MaxSize]float64
}

// Reduce keeps only the vertices identified by set, compacting the simplex
// in place; the survivors keep their relative order, from low bit to high
// bit of `set`, at indices 0..n-1. This is how GJK reduces the
// simplex once the closest-point solve has picked a sub-feature.
func (s *Simplex) Reduce(set PointSet) {
	var kept [MaxSize]SimplexPoint
	n := 0
	for i := 0; i < s.Size; i++ {
		if set.Bit(i) {
			kept[n] = s.Points[i]
			n++
		}
	}
	s.Points = kept
	s.Size = n
}

// WitnessPoints reconstructs pointA/pointB on the original shapes from the
// simplex's stored P/Q supports and a ClosestPointResult's per-vertex
// weights. Vertex index i of the result refers to s.Points[i] of the simplex
// the result was computed on, so a caller that reduces the simplex calls
// WitnessPoints before Reduce.
func (s *Simplex) WitnessPoints(r ClosestPointResult) (pointA, pointB mgl64.Vec3) {
	for i := 0; i < s.Size; i++ {
		if !r.Set.Bit(i) {
			continue
		}
		w := r.Weights[i]
		pointA = pointA.Add(s.Points[i].P.Mul(w))
		pointB = pointB.Add(s.Points[i].Q.Mul(w))
	}
	return pointA, pointB
}
